// Package intent holds the keyword predicates used to pre-route an utterance.
// Every matcher lowercases its input and checks substring containment.
package intent

import "strings"

// Salutation is the result of DetectSalutation.
type Salutation int

const (
	SalutationNone Salutation = iota
	SalutationGreeting
	SalutationFarewell
)

func (s Salutation) String() string {
	switch s {
	case SalutationGreeting:
		return "greeting"
	case SalutationFarewell:
		return "farewell"
	default:
		return "none"
	}
}

// DetectSalutation checks farewell keywords before greeting keywords, so
// "그럼 안녕" is a farewell even though it contains "안녕".
func DetectSalutation(text string) Salutation {
	t := normalize(text)
	switch {
	case containsAny(t, farewellKeywords):
		return SalutationFarewell
	case containsAny(t, greetingKeywords):
		return SalutationGreeting
	default:
		return SalutationNone
	}
}

func IsThanks(text string) bool {
	return containsAny(normalize(text), thanksKeywords)
}

// IsRecommendRequest reports an explicit ask for a different recommendation.
func IsRecommendRequest(text string) bool {
	return containsAny(normalize(text), recommendKeywords)
}

func IsEmotionRelated(text string) bool {
	return containsAny(normalize(text), emotionKeywords)
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
