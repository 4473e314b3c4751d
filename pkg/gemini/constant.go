package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-2.5-flash"

	// DefaultTimeout bounds a single generation call
	DefaultTimeout = 30 * time.Second

	RoleUser  = "user"
	RoleModel = "model"
)
