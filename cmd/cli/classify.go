package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"emotion-assistant/internal/classifier"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Print the directives of each utterance",
	Long: `Reads utterances from stdin and prints what the classifier decided,
one "kind argument" pair per directive, without dispatching anything.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := buildAssistant(ctx)
		if err != nil {
			return err
		}
		return repl(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), classifyHandler(a.Classifier))
	},
}

func classifyHandler(c classifier.Classifier) func(context.Context, string) (string, error) {
	return func(ctx context.Context, text string) (string, error) {
		directives, err := c.Classify(ctx, sessionID, text)
		if err != nil {
			return "", err
		}
		return formatDirectives(directives), nil
	}
}

func formatDirectives(directives []classifier.Directive) string {
	if len(directives) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(directives))
	for _, d := range directives {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, ", ")
}
