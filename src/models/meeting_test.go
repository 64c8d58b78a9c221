package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeetingTypeLabel(t *testing.T) {
	assert.Equal(t, "Branch Member Assembly", MeetingTypeLabel(MeetingTypeBranch))
	assert.Equal(t, "Branch Committee Meeting", MeetingTypeLabel(MeetingTypeMember))
	assert.Equal(t, "Party Group Meeting", MeetingTypeLabel(MeetingTypeGroup))
	assert.Equal(t, "Party Lecture", MeetingTypeLabel(MeetingTypeLecture))

	assert.Equal(t, "uncategorized", MeetingTypeLabel("retreat"))
	assert.Equal(t, "uncategorized", MeetingTypeLabel(""))
}

func TestMeetingValidators(t *testing.T) {
	assert.True(t, IsValidMeetingType(MeetingTypeLecture))
	assert.False(t, IsValidMeetingType("workshop"))

	for _, status := range []string{MeetingStatusPlanned, MeetingStatusInProgress, MeetingStatusCompleted, MeetingStatusCancelled} {
		assert.True(t, IsValidMeetingStatus(status))
	}
	assert.False(t, IsValidMeetingStatus("postponed"))
	assert.False(t, IsValidMeetingStatus(""))
}
