package chatbot

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"emotion-assistant/internal/model"
	"emotion-assistant/pkg/llmprovider"
	"emotion-assistant/pkg/timezone"
)

// disallowed matches everything outside Hangul syllables, ASCII
// alphanumerics, whitespace and light punctuation.
var disallowed = regexp.MustCompile(`[^\x{AC00}-\x{D7A3}0-9a-zA-Z\s.,!?~():\-]`)

// CleanAnswer strips stray tokens and symbols from a model reply and drops
// blank lines.
func CleanAnswer(answer string) string {
	answer = strings.ReplaceAll(answer, endOfSequence, "")
	answer = disallowed.ReplaceAllString(answer, "")
	return RemoveBlankLines(answer)
}

// RemoveBlankLines joins the non-empty lines of s.
func RemoveBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// RealtimeInformation renders the current weekday, date and time.
func RealtimeInformation(now time.Time) string {
	return fmt.Sprintf(realtimeInfoTemplate,
		timezone.KoreanWeekday(now),
		now.Year(), int(now.Month()), now.Day(),
		now.Hour(), now.Minute(), now.Second(),
	)
}

func toProviderMessages(msgs []model.ChatMessage) []llmprovider.Message {
	out := make([]llmprovider.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, llmprovider.NewTextMessage(string(m.Role), m.Content))
	}
	return out
}
