package recommend

import "emotion-assistant/internal/model"

// EmotionContext is everything the resolver needs for one request.
// RecentFoods is most-recent-first.
type EmotionContext struct {
	Text        string
	RecentFoods []string
	ChatHistory []model.ChatMessage
}

// Recommendation holds the parsed answer. An empty field means its label
// line was missing.
type Recommendation struct {
	Mood   string
	Food   string
	Reason string
}

// Complete reports whether all three fields were extracted. Callers must not
// use a recommendation that is not complete.
func (r Recommendation) Complete() bool {
	return r.Mood != "" && r.Food != "" && r.Reason != ""
}

// TimeSlot buckets the local hour for the prompt.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "아침"
	SlotAfternoon TimeSlot = "점심"
	SlotEvening   TimeSlot = "저녁"
)
