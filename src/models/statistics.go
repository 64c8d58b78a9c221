package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rate is an attendance percentage. The legacy API emits the JSON number 0 when the
// denominator is zero and a 2-decimal string otherwise ("70.00", and "0.00" when
// participants exist but nobody signed in); existing frontends depend on that, so a
// rate carries definedness and marshalling reproduces the shape exactly.
type Rate struct {
	Value   float64
	Defined bool
}

// NewRate returns a defined rate.
func NewRate(value float64) Rate {
	return Rate{Value: value, Defined: true}
}

func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("0"), nil
	}
	return []byte(fmt.Sprintf("%q", r.String())), nil
}

// String renders the rate with 2 decimal places.
func (r Rate) String() string {
	return fmt.Sprintf("%.2f", r.Value)
}

// MarshalBSONValue stores the rate as a plain double; snapshots are never read back
// by the aggregation.
func (r Rate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(r.Value)
}

func (r *Rate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var value float64
	if err := bson.UnmarshalValue(t, data, &value); err != nil {
		return err
	}
	*r = NewRate(value)
	return nil
}

// StatusCounts are the four fixed status buckets. Meetings with an unknown status are
// counted in totalMeetings but not in any bucket.
type StatusCounts struct {
	Planned    int `json:"planned" bson:"planned"`
	InProgress int `json:"in_progress" bson:"in_progress"`
	Completed  int `json:"completed" bson:"completed"`
	Cancelled  int `json:"cancelled" bson:"cancelled"`
}

// Sum returns the total across all four buckets.
func (s StatusCounts) Sum() int {
	return s.Planned + s.InProgress + s.Completed + s.Cancelled
}

// AttendanceStats is the organization-wide attendance block.
type AttendanceStats struct {
	TotalParticipants int  `json:"totalParticipants" bson:"totalParticipants"`
	TotalSignIns      int  `json:"totalSignIns" bson:"totalSignIns"`
	AttendanceRate    Rate `json:"attendanceRate" bson:"attendanceRate"`
}

// UserMeetingAttendance is one row of a member's per-meeting attendance list.
type UserMeetingAttendance struct {
	MeetingID    string  `json:"meetingId" bson:"meetingId"`
	MeetingTitle string  `json:"meetingTitle" bson:"meetingTitle"`
	MeetingDate  string  `json:"meetingDate" bson:"meetingDate"`
	Attended     bool    `json:"attended" bson:"attended"`
	SignInTime   *string `json:"signInTime" bson:"signInTime"`
}

// UserAttendance is the optional personal-statistics block.
type UserAttendance struct {
	TotalInvited   int                     `json:"totalInvited" bson:"totalInvited"`
	TotalAttended  int                     `json:"totalAttended" bson:"totalAttended"`
	AttendanceRate Rate                    `json:"attendanceRate" bson:"attendanceRate"`
	Meetings       []UserMeetingAttendance `json:"meetings" bson:"meetings"`
}

// MonthlyStat is the per-month meeting breakdown.
type MonthlyStat struct {
	Total  int            `json:"total" bson:"total"`
	ByType map[string]int `json:"byType" bson:"byType"`
}

// StatisticsSummary is the full aggregation result returned to the caller and embedded
// in the persisted snapshot.
type StatisticsSummary struct {
	TotalMeetings    int                    `json:"totalMeetings" bson:"totalMeetings"`
	MeetingsByType   map[string]int         `json:"meetingsByType" bson:"meetingsByType"`
	MeetingsByStatus StatusCounts           `json:"meetingsByStatus" bson:"meetingsByStatus"`
	AttendanceStats  AttendanceStats        `json:"attendanceStats" bson:"attendanceStats"`
	UserAttendance   *UserAttendance        `json:"userAttendance" bson:"userAttendance"`
	MonthlyStats     map[string]MonthlyStat `json:"monthlyStats" bson:"monthlyStats"`
}

// StatisticsSnapshot is the persisted, point-in-time copy of a computed summary.
// Append-only; the aggregation never reads it back.
type StatisticsSnapshot struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganizationID   string             `bson:"organizationId" json:"organizationId"`
	UserID           string             `bson:"userId,omitempty" json:"userId,omitempty"`
	PeriodStart      string             `bson:"periodStart" json:"periodStart"`
	PeriodEnd        string             `bson:"periodEnd" json:"periodEnd"`
	TotalMeetings    int                `bson:"totalMeetings" json:"totalMeetings"`
	AttendedMeetings *int               `bson:"attendedMeetings,omitempty" json:"attendedMeetings,omitempty"`
	AttendanceRate   float64            `bson:"attendanceRate" json:"attendanceRate"`
	StatisticsData   StatisticsSummary  `bson:"statisticsData" json:"statisticsData"`
	ComputedAt       time.Time          `bson:"computedAt" json:"computedAt"`
}
