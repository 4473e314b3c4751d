package main

import (
	"context"

	"github.com/spf13/cobra"

	"emotion-assistant/internal/conversation"
	"emotion-assistant/internal/router"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat through the router",
	Long: `Reads utterances from stdin and answers them through the router:
greetings, news and music fast paths, then classification and dispatch.
Type "exit" to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := buildAssistant(ctx)
		if err != nil {
			return err
		}
		return repl(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), routeHandler(a.Router))
	},
}

// routeHandler answers through r, using the same fallback as the chat endpoint
// when nothing was understood.
func routeHandler(r conversation.Router) func(context.Context, string) (string, error) {
	return func(ctx context.Context, text string) (string, error) {
		out, err := r.Route(ctx, router.Input{SessionID: sessionID, Text: text})
		if err != nil {
			return "", err
		}
		if out.Reply == "" {
			return conversation.ReplyNotUnderstood, nil
		}
		return out.Reply, nil
	}
}
