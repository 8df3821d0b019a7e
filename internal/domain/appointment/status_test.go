package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{
		StatusPending, StatusApproved, StatusRejected,
		StatusCancelled, StatusArchived, StatusDone,
	} {
		assert.True(t, ValidStatus(s), string(s))
	}

	assert.False(t, ValidStatus("confirmed"))
	assert.False(t, ValidStatus(""))
}

func TestCountsAsCancellation(t *testing.T) {
	assert.True(t, CountsAsCancellation(StatusApproved, StatusCancelled))

	// Backing out of a request that was never approved is free.
	assert.False(t, CountsAsCancellation(StatusPending, StatusCancelled))
	assert.False(t, CountsAsCancellation(StatusRejected, StatusCancelled))

	// Non-cancel transitions never count.
	assert.False(t, CountsAsCancellation(StatusApproved, StatusDone))
	assert.False(t, CountsAsCancellation(StatusCancelled, StatusCancelled))
}

func TestShouldArchive(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	assert.True(t, ShouldArchive(StatusPending, yesterday, today))

	// Same day is still live.
	assert.False(t, ShouldArchive(StatusPending, today, today))
	assert.False(t, ShouldArchive(StatusPending, tomorrow, today))

	// Only pending requests expire; decided ones keep their status.
	assert.False(t, ShouldArchive(StatusApproved, yesterday, today))
	assert.False(t, ShouldArchive(StatusRejected, yesterday, today))
	assert.False(t, ShouldArchive(StatusDone, yesterday, today))
}

func TestShouldArchive_IgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	sameDayMorning := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

	assert.False(t, ShouldArchive(StatusPending, sameDayMorning, today))
}

func TestValidType(t *testing.T) {
	assert.True(t, ValidType(TypeFitting))
	assert.True(t, ValidType(TypeInquiry))
	assert.False(t, ValidType("consultation"))
}

func TestFollowUpValidation(t *testing.T) {
	assert.True(t, ValidFollowUpStatus(FollowUpPending))
	assert.True(t, ValidFollowUpStatus(FollowUpSuccessful))
	assert.False(t, ValidFollowUpStatus("missed"))

	assert.True(t, ValidClientResponse(ResponseAgreed))
	assert.True(t, ValidClientResponse(ResponseNone))
	assert.False(t, ValidClientResponse("maybe"))
}
