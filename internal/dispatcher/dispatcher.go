package dispatcher

import (
	"context"
	"fmt"
	"strings"

	"emotion-assistant/internal/classifier"
)

// Dispatch handles directives in order and joins their replies with newlines.
// The first collaborator error aborts the whole dispatch. Open and close
// always report success.
func (d *implDispatcher) Dispatch(ctx context.Context, sessionID string, directives []classifier.Directive) (string, error) {
	fragments := make([]string, 0, len(directives))

	for _, directive := range directives {
		fragment, err := d.handle(ctx, sessionID, directive)
		if err != nil {
			return "", fmt.Errorf("%s: %s: %w", LogPrefixDispatch, directive.Kind, err)
		}
		fragments = append(fragments, fragment)
	}

	return strings.TrimSpace(strings.Join(fragments, "\n")), nil
}

func (d *implDispatcher) handle(ctx context.Context, sessionID string, directive classifier.Directive) (string, error) {
	switch directive.Kind {
	case classifier.KindGeneral:
		return d.chat.Chat(ctx, sessionID, directive.Argument)

	case classifier.KindRealtime:
		return d.search.Search(ctx, sessionID, directive.Argument)

	case classifier.KindOpen:
		d.apps.Open(ctx, directive.Argument)
		return fmt.Sprintf(FormatOpened, directive.Argument), nil

	case classifier.KindClose:
		d.apps.Close(ctx, directive.Argument)
		return fmt.Sprintf(FormatClosed, directive.Argument), nil

	default:
		d.l.Infof(ctx, "%s: unsupported kind %q", LogPrefixDispatch, directive.Kind)
		return ReplyNotUnderstood, nil
	}
}
