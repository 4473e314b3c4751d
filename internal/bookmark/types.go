package bookmark

type AddInput struct {
	Name string
	URL  string
}

// UpdateInput renames a bookmark; an empty URL keeps the current one.
type UpdateInput struct {
	ID   int64
	Name string
	URL  string
}
