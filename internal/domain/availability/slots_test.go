package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_DefaultsMissingReasons(t *testing.T) {
	// One slot blocked without a reason, the rest free.
	d := Day{
		Slots: [5]bool{true, false, false, false, false},
	}
	d.Normalize()

	assert.Equal(t, ReasonDesignerUnavailable, d.Reasons[0])
	for i := 1; i < 5; i++ {
		assert.Equal(t, ReasonAvailable, d.Reasons[i])
	}
}

func TestNormalize_KeepsValidReasons(t *testing.T) {
	d := Day{
		Slots:   [5]bool{true, true, false, false, false},
		Reasons: [5]string{ReasonScheduledFitting, ReasonScheduledAppointment, "", "", ""},
	}
	d.Normalize()

	assert.Equal(t, ReasonScheduledFitting, d.Reasons[0])
	assert.Equal(t, ReasonScheduledAppointment, d.Reasons[1])
}

func TestNormalize_RejectsUnknownReasons(t *testing.T) {
	d := Day{
		Slots:   [5]bool{true, false, false, false, false},
		Reasons: [5]string{"on holiday", "", "", "", ""},
	}
	d.Normalize()

	assert.Equal(t, ReasonDesignerUnavailable, d.Reasons[0])
}

func TestNormalize_AvailableSlotOverridesSubmittedReason(t *testing.T) {
	// A free slot always reads "Available" even if the caller sent a
	// blocking reason with it.
	d := Day{
		Slots:   [5]bool{false, false, false, false, false},
		Reasons: [5]string{ReasonScheduledFitting, "", "", "", ""},
	}
	d.Normalize()

	assert.Equal(t, ReasonAvailable, d.Reasons[0])
}

func TestAllAvailable(t *testing.T) {
	free := Day{}
	assert.True(t, free.AllAvailable())

	taken := Day{Slots: [5]bool{false, false, true, false, false}}
	assert.False(t, taken.AllAvailable())
}

func TestDecide(t *testing.T) {
	free := Day{}
	blocked := Day{Slots: [5]bool{false, true, false, false, false}}

	tests := []struct {
		name   string
		day    Day
		exists bool
		want   Action
	}{
		{"all available without a row is a no-op", free, false, ActionNone},
		{"all available with a row deletes it", free, true, ActionDelete},
		{"blocked without a row creates it", blocked, false, ActionCreate},
		{"blocked with a row rewrites it", blocked, true, ActionUpdate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.day, tt.exists))
		})
	}
}

func TestValidReason(t *testing.T) {
	assert.True(t, ValidReason(ReasonDesignerUnavailable))
	assert.True(t, ValidReason(ReasonScheduledAppointment))
	assert.True(t, ValidReason(ReasonScheduledFitting))

	// "Available" is a display value, never a blocking reason.
	assert.False(t, ValidReason(ReasonAvailable))
	assert.False(t, ValidReason(""))
	assert.False(t, ValidReason("busy"))
}
