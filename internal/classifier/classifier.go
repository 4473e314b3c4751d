package classifier

import (
	"context"
	"fmt"

	"emotion-assistant/internal/model"
)

// Classify asks the backend for directives, retrying while the output is
// degenerate. After maxAttempts degenerate answers the whole text becomes a
// single general directive. The session transcript is only extended once a
// result is settled, so a cancelled call leaves it untouched.
func (c *TaskClassifier) Classify(ctx context.Context, sessionID, text string) ([]Directive, error) {
	transcript := c.transcripts.Get(sessionID)
	history := append(append([]model.ChatMessage{}, fewShot...), transcript.History()...)

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", LogPrefixClassify, err)
		}

		raw, err := c.backend.Generate(ctx, text, history, Preamble)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgBackendFailed, err)
		}

		directives, degenerate := ParseDirectives(raw)
		if !degenerate {
			c.l.Debugf(ctx, "%s: %q -> %s", LogPrefixClassify, text, FormatDirectives(directives))
			transcript.Append(Turn{Request: text, Directives: FormatDirectives(directives)})
			return directives, nil
		}

		c.l.Warnf(ctx, "%s: %s (attempt %d/%d)", LogPrefixClassify, ErrMsgDegenerate, attempt, c.maxAttempts)
	}

	c.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgAttemptsExhaust)
	fallback := []Directive{{Kind: KindGeneral, Argument: text}}
	transcript.Append(Turn{Request: text, Directives: FormatDirectives(fallback)})
	return fallback, nil
}
