package router

// Path names the rule that produced a reply.
type Path string

const (
	PathGreeting Path = "greeting"
	PathFarewell Path = "farewell"
	PathNews     Path = "news"
	PathMusic    Path = "music"
	PathDispatch Path = "dispatch"
)

type Input struct {
	SessionID string
	Text      string
}

// Output is the routed reply. Reply may be empty on PathDispatch when the
// classifier recognised nothing.
type Output struct {
	Reply string
	Path  Path
}
