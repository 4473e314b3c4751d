package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"emotion-assistant/internal/recommend"
)

var recentFoods []string

var recommendCmd = &cobra.Command{
	Use:   "recommend <text>",
	Short: "Recommend a food for how you feel",
	Long: `Runs the mood/food/reason resolver once on the given text.
Foods passed with --recent are excluded, most recent first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := buildAssistant(ctx)
		if err != nil {
			return err
		}
		out, err := runRecommend(ctx, a.Resolver, strings.Join(args, " "), recentFoods)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringSliceVar(&recentFoods, "recent", nil, "recently recommended foods to avoid")
}

func runRecommend(ctx context.Context, r recommend.Resolver, text string, recent []string) (string, error) {
	rec, err := r.Recommend(ctx, recommend.EmotionContext{Text: text, RecentFoods: recent})
	if err != nil {
		return "", err
	}
	return formatRecommendation(rec), nil
}

// formatRecommendation prints missing fields as "-".
func formatRecommendation(rec recommend.Recommendation) string {
	return fmt.Sprintf("기분: %s\n음식: %s\n이유: %s", orDash(rec.Mood), orDash(rec.Food), orDash(rec.Reason))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
