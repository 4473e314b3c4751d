package conversation

import (
	"time"

	"emotion-assistant/pkg/places"
)

// RespondInput is one chat message. An empty SessionID starts a new session.
// An empty Location uses the configured default.
type RespondInput struct {
	SessionID string
	Message   string
	Location  string
}

// Path names the branch that produced a reply.
type Path string

const (
	PathThanks     Path = "thanks"
	PathRecommend  Path = "recommend"
	PathClarify    Path = "clarify"
	PathRouter     Path = "router"
	PathSalutation Path = "salutation"
	PathUnknown    Path = "unknown"
	PathApology    Path = "apology"
)

type RespondOutput struct {
	SessionID  string
	Message    string
	Path       Path
	Food       string
	Restaurant *places.Place
	Location   string
	CreatedAt  time.Time
}
