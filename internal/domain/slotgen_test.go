package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/IRS-ConsultationService/pkg/types"
)

func testConfig(workStart, workEnd, lunchStart, lunchEnd string, duration int) *AvailabilityConfig {
	return &AvailabilityConfig{
		WorkStart:           types.TimeString(workStart),
		WorkEnd:             types.TimeString(workEnd),
		LunchStart:          types.TimeString(lunchStart),
		LunchEnd:            types.TimeString(lunchEnd),
		SlotDurationMinutes: duration,
	}
}

func slotRanges(slots []Slot) [][2]string {
	out := make([][2]string, len(slots))
	for i, s := range slots {
		out[i] = [2]string{s.Start.String(), s.End.String()}
	}
	return out
}

func TestGenerateSlots_LunchJump(t *testing.T) {
	cfg := testConfig("08:00", "12:00", "10:00", "10:30", 60)

	slots := GenerateSlots(cfg)

	// 11:30-12:30 is excluded because it would exceed work end
	require.Equal(t, [][2]string{
		{"08:00", "09:00"},
		{"09:00", "10:00"},
		{"10:30", "11:30"},
	}, slotRanges(slots))

	for _, s := range slots {
		assert.True(t, s.Available)
		assert.False(t, s.Booked)
		assert.False(t, s.Custom)
		assert.Nil(t, s.EventTitle)
	}
}

func TestGenerateSlots_FullWorkday(t *testing.T) {
	cfg := testConfig("09:00", "17:00", "12:00", "13:00", 30)

	slots := GenerateSlots(cfg)

	require.Len(t, slots, 14)
	assert.Equal(t, "09:00", slots[0].Start.String())
	assert.Equal(t, "11:30", slots[5].Start.String())
	assert.Equal(t, "13:00", slots[6].Start.String())
	assert.Equal(t, "16:30", slots[13].Start.String())
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	cfg := testConfig("09:00", "17:00", "12:00", "13:00", 45)

	first := GenerateSlots(cfg)
	second := GenerateSlots(cfg)

	require.Equal(t, first, second)
}

func TestGenerateSlots_NoSlotOverlapsLunch(t *testing.T) {
	cfg := testConfig("09:00", "18:00", "12:15", "13:05", 40)

	for _, s := range GenerateSlots(cfg) {
		overlapsLunch := s.Start.IsBefore(cfg.LunchEnd) && s.End.IsAfter(cfg.LunchStart)
		assert.False(t, overlapsLunch, "slot %s-%s overlaps lunch", s.Start, s.End)
	}
}

func TestGenerateSlots_ContiguousExceptLunchGap(t *testing.T) {
	cfg := testConfig("09:00", "17:00", "12:00", "13:00", 30)

	slots := GenerateSlots(cfg)
	for i := 1; i < len(slots); i++ {
		if slots[i].Start == cfg.LunchEnd {
			continue // the lunch gap
		}
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}

func TestGenerateSlots_EmptyLunchWindowBlocksNothing(t *testing.T) {
	cfg := testConfig("09:00", "12:00", "10:00", "10:00", 60)

	slots := GenerateSlots(cfg)

	require.Equal(t, [][2]string{
		{"09:00", "10:00"},
		{"10:00", "11:00"},
		{"11:00", "12:00"},
	}, slotRanges(slots))
}

func TestGenerateSlots_DurationLongerThanWindow(t *testing.T) {
	cfg := testConfig("09:00", "10:00", "09:15", "09:20", 120)

	assert.Empty(t, GenerateSlots(cfg))
}

func TestGenerateSlots_NonPositiveDuration(t *testing.T) {
	assert.Empty(t, GenerateSlots(testConfig("09:00", "17:00", "12:00", "13:00", 0)))
	assert.Empty(t, GenerateSlots(testConfig("09:00", "17:00", "12:00", "13:00", -30)))
}
