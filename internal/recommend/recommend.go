package recommend

import (
	"context"
	"fmt"
	"strings"

	"emotion-assistant/pkg/timezone"
)

// Recommend builds the prompt, calls the backend and parses the reply. A
// partial parse is returned as is; the caller decides what to do with it.
func (r *implResolver) Recommend(ctx context.Context, ec EmotionContext) (Recommendation, error) {
	raw, err := r.backend.Generate(ctx, r.buildPrompt(ec))
	if err != nil {
		return Recommendation{}, fmt.Errorf("%s: %w", LogPrefixRecommend, err)
	}

	rec := ParseRecommendation(raw)
	if !rec.Complete() {
		r.l.Warnf(ctx, "%s: partial recommendation mood=%q food=%q", LogPrefixRecommend, rec.Mood, rec.Food)
	}
	return rec, nil
}

func (r *implResolver) buildPrompt(ec EmotionContext) string {
	now := r.now().In(r.loc)

	history := make([]string, 0, len(ec.ChatHistory))
	for _, m := range ec.ChatHistory {
		history = append(history, fmt.Sprintf("%s: %s", m.Role, m.Content))
	}

	recent := ec.RecentFoods
	if len(recent) > r.recentWindow {
		recent = recent[:r.recentWindow]
	}

	return fmt.Sprintf(PromptTemplate,
		strings.Join(history, "\n"),
		ec.Text,
		timezone.KoreanDate(now),
		SlotOf(now),
		strings.Join(Moods, ", "),
		strings.Join(recent, ", "),
	)
}
