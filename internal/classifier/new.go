package classifier

import (
	"context"

	"emotion-assistant/pkg/log"
)

// Classifier splits an utterance into ordered task directives.
type Classifier interface {
	Classify(ctx context.Context, sessionID, text string) ([]Directive, error)
}

// TaskClassifier classifies through a remote Backend with a bounded retry on
// degenerate output.
type TaskClassifier struct {
	backend     Backend
	transcripts *TranscriptStore
	maxAttempts int
	l           log.Logger
}

var _ Classifier = (*TaskClassifier)(nil)

// New creates a TaskClassifier. maxAttempts below 1 uses DefaultMaxAttempts.
func New(backend Backend, transcripts *TranscriptStore, maxAttempts int, l log.Logger) *TaskClassifier {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &TaskClassifier{
		backend:     backend,
		transcripts: transcripts,
		maxAttempts: maxAttempts,
		l:           l,
	}
}
