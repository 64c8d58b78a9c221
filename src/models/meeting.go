package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Meeting type codes (三会一课).
const (
	MeetingTypeBranch  = "branch_meeting"
	MeetingTypeMember  = "member_meeting"
	MeetingTypeGroup   = "group_meeting"
	MeetingTypeLecture = "party_lecture"
)

// Meeting statuses. Anything else is rejected at write time.
const (
	MeetingStatusPlanned    = "planned"
	MeetingStatusInProgress = "in_progress"
	MeetingStatusCompleted  = "completed"
	MeetingStatusCancelled  = "cancelled"
)

var meetingTypeLabels = map[string]string{
	MeetingTypeBranch:  "Branch Member Assembly",
	MeetingTypeMember:  "Branch Committee Meeting",
	MeetingTypeGroup:   "Party Group Meeting",
	MeetingTypeLecture: "Party Lecture",
}

// MeetingTypeLabel maps a type code to its display label, "uncategorized" when unknown.
func MeetingTypeLabel(code string) string {
	if label, ok := meetingTypeLabels[code]; ok {
		return label
	}
	return "uncategorized"
}

// IsValidMeetingType reports whether code is one of the four known type codes.
func IsValidMeetingType(code string) bool {
	_, ok := meetingTypeLabels[code]
	return ok
}

// IsValidMeetingStatus reports whether status is one of the four known statuses.
func IsValidMeetingStatus(status string) bool {
	switch status {
	case MeetingStatusPlanned, MeetingStatusInProgress, MeetingStatusCompleted, MeetingStatusCancelled:
		return true
	}
	return false
}

// Meeting is one scheduled meeting of an organization.
type Meeting struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganizationID string             `bson:"organizationId" json:"organizationId"`
	TypeCode       string             `bson:"typeCode" json:"typeCode"`
	Title          string             `bson:"title" json:"title"`
	Content        string             `bson:"content,omitempty" json:"content,omitempty"`
	MeetingDate    string             `bson:"meetingDate" json:"meetingDate"` // YYYY-MM-DD
	StartTime      string             `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime        string             `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	Status         string             `bson:"status" json:"status"`
	OrganizerID    primitive.ObjectID `bson:"organizerId" json:"organizerId"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Participant is an expected-attendee link between a member and a meeting.
type Participant struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MeetingID primitive.ObjectID `bson:"meetingId" json:"meetingId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	InvitedAt time.Time          `bson:"invitedAt" json:"invitedAt"`
}

// SignIn is proof of actual attendance, timestamped.
type SignIn struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MeetingID  primitive.ObjectID `bson:"meetingId" json:"meetingId"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	SignInTime time.Time          `bson:"signInTime" json:"signInTime"`
}
