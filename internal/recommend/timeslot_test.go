package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlotOf(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2025, 1, 1, h, m, 0, 0, time.UTC) }

	assert.Equal(t, SlotMorning, SlotOf(at(0, 0)))
	assert.Equal(t, SlotMorning, SlotOf(at(10, 59)))
	assert.Equal(t, SlotAfternoon, SlotOf(at(11, 0)))
	assert.Equal(t, SlotAfternoon, SlotOf(at(16, 59)))
	assert.Equal(t, SlotEvening, SlotOf(at(17, 0)))
	assert.Equal(t, SlotEvening, SlotOf(at(23, 59)))
}
