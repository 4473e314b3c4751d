package recommend

import "strings"

// ParseRecommendation scans the reply line by line for the three labels.
// Unlabelled lines are ignored and a repeated label keeps its last value.
func ParseRecommendation(text string) Recommendation {
	var rec Recommendation
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, LabelMood):
			rec.Mood = strings.TrimSpace(strings.TrimPrefix(line, LabelMood))
		case strings.HasPrefix(line, LabelFood):
			rec.Food = strings.TrimSpace(strings.TrimPrefix(line, LabelFood))
		case strings.HasPrefix(line, LabelReason):
			rec.Reason = strings.TrimSpace(strings.TrimPrefix(line, LabelReason))
		}
	}
	return rec
}
