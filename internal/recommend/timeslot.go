package recommend

import "time"

// SlotOf maps before 11:00 to morning, before 17:00 to afternoon, else evening.
func SlotOf(t time.Time) TimeSlot {
	switch h := t.Hour(); {
	case h < 11:
		return SlotMorning
	case h < 17:
		return SlotAfternoon
	default:
		return SlotEvening
	}
}
