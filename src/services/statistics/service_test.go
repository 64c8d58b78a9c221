package statistics

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"party-meeting-backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeRepo feeds the aggregation fixed rows and records every call.
type fakeRepo struct {
	meetings     []models.Meeting
	participants []models.Participant
	signIns      []models.SignIn

	meetingsErr    error
	participantErr error
	signInErr      error
	snapshotErr    error

	fetchCalls int
	snapshots  []models.StatisticsSnapshot
}

func (f *fakeRepo) ListMeetings(ctx context.Context, organizationID, startDate, endDate string) ([]models.Meeting, error) {
	f.fetchCalls++
	if f.meetingsErr != nil {
		return nil, f.meetingsErr
	}
	return f.meetings, nil
}

func (f *fakeRepo) ListParticipants(ctx context.Context, meetingIDs []primitive.ObjectID) ([]models.Participant, error) {
	f.fetchCalls++
	if f.participantErr != nil {
		return nil, f.participantErr
	}
	return f.participants, nil
}

func (f *fakeRepo) ListSignIns(ctx context.Context, meetingIDs []primitive.ObjectID) ([]models.SignIn, error) {
	f.fetchCalls++
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return f.signIns, nil
}

func (f *fakeRepo) SaveSnapshot(ctx context.Context, snapshot models.StatisticsSnapshot) error {
	if f.snapshotErr != nil {
		return f.snapshotErr
	}
	f.snapshots = append(f.snapshots, snapshot)
	return nil
}

func newMeeting(typeCode, status, date string) models.Meeting {
	return models.Meeting{
		ID:             primitive.NewObjectID(),
		OrganizationID: "org-1",
		TypeCode:       typeCode,
		Title:          "Meeting " + date,
		MeetingDate:    date,
		Status:         status,
	}
}

func invite(meeting models.Meeting, userID primitive.ObjectID) models.Participant {
	return models.Participant{MeetingID: meeting.ID, UserID: userID}
}

func signIn(meeting models.Meeting, userID primitive.ObjectID, at time.Time) models.SignIn {
	return models.SignIn{MeetingID: meeting.ID, UserID: userID, SignInTime: at}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("OrganizationSummary", func(t *testing.T) {
		m1 := newMeeting(models.MeetingTypeBranch, models.MeetingStatusCompleted, "2024-03-05")
		m2 := newMeeting(models.MeetingTypeBranch, models.MeetingStatusPlanned, "2024-03-19")
		m3 := newMeeting(models.MeetingTypeLecture, models.MeetingStatusCancelled, "2024-04-02")

		repo := &fakeRepo{meetings: []models.Meeting{m1, m2, m3}}
		users := make([]primitive.ObjectID, 10)
		for i := range users {
			users[i] = primitive.NewObjectID()
			repo.participants = append(repo.participants, invite(m1, users[i]))
		}
		for i := 0; i < 7; i++ {
			repo.signIns = append(repo.signIns, signIn(m1, users[i], time.Now()))
		}

		summary, persisted, err := Generate(ctx, repo, Request{OrganizationID: "org-1"})
		require.NoError(t, err)
		assert.True(t, persisted)

		assert.Equal(t, 3, summary.TotalMeetings)
		assert.Equal(t, map[string]int{"Branch Member Assembly": 2, "Party Lecture": 1}, summary.MeetingsByType)
		assert.Equal(t, 1, summary.MeetingsByStatus.Completed)
		assert.Equal(t, 1, summary.MeetingsByStatus.Planned)
		assert.Equal(t, 1, summary.MeetingsByStatus.Cancelled)
		assert.Equal(t, 0, summary.MeetingsByStatus.InProgress)
		assert.Equal(t, 3, summary.MeetingsByStatus.Sum())

		assert.Equal(t, 10, summary.AttendanceStats.TotalParticipants)
		assert.Equal(t, 7, summary.AttendanceStats.TotalSignIns)
		assert.Equal(t, models.NewRate(70), summary.AttendanceStats.AttendanceRate)

		assert.Nil(t, summary.UserAttendance)

		assert.Len(t, summary.MonthlyStats, 2)
		assert.Equal(t, 2, summary.MonthlyStats["2024-03"].Total)
		assert.Equal(t, 1, summary.MonthlyStats["2024-04"].Total)
		assert.Equal(t, map[string]int{"Branch Member Assembly": 2}, summary.MonthlyStats["2024-03"].ByType)
	})

	t.Run("AttendanceRateWireFormat", func(t *testing.T) {
		m := newMeeting(models.MeetingTypeBranch, models.MeetingStatusCompleted, "2024-03-05")
		repo := &fakeRepo{meetings: []models.Meeting{m}}
		users := make([]primitive.ObjectID, 10)
		for i := range users {
			users[i] = primitive.NewObjectID()
			repo.participants = append(repo.participants, invite(m, users[i]))
		}
		for i := 0; i < 7; i++ {
			repo.signIns = append(repo.signIns, signIn(m, users[i], time.Now()))
		}

		summary, _, err := Generate(ctx, repo, Request{OrganizationID: "org-1"})
		require.NoError(t, err)

		raw, err := json.Marshal(summary.AttendanceStats)
		require.NoError(t, err)
		assert.JSONEq(t, `{"totalParticipants":10,"totalSignIns":7,"attendanceRate":"70.00"}`, string(raw))
	})

	t.Run("ZeroSignInsIsADefinedRate", func(t *testing.T) {
		m := newMeeting(models.MeetingTypeBranch, models.MeetingStatusCompleted, "2024-03-05")
		repo := &fakeRepo{meetings: []models.Meeting{m}}
		member := primitive.NewObjectID()
		repo.participants = append(repo.participants, invite(m, member))
		for i := 0; i < 9; i++ {
			repo.participants = append(repo.participants, invite(m, primitive.NewObjectID()))
		}

		summary, _, err := Generate(ctx, repo, Request{OrganizationID: "org-1", UserID: member.Hex()})
		require.NoError(t, err)

		// 0 of 10 is a computed "0.00", not the no-participants number 0.
		raw, err := json.Marshal(summary.AttendanceStats)
		require.NoError(t, err)
		assert.JSONEq(t, `{"totalParticipants":10,"totalSignIns":0,"attendanceRate":"0.00"}`, string(raw))

		// Same for a member invited once who never attended.
		ua := summary.UserAttendance
		require.NotNil(t, ua)
		assert.Equal(t, 1, ua.TotalInvited)
		assert.Equal(t, 0, ua.TotalAttended)
		rateJSON, err := json.Marshal(ua.AttendanceRate)
		require.NoError(t, err)
		assert.Equal(t, `"0.00"`, string(rateJSON))
	})

	t.Run("EmptyOrganization", func(t *testing.T) {
		repo := &fakeRepo{}

		summary, persisted, err := Generate(ctx, repo, Request{OrganizationID: "org-empty"})
		require.NoError(t, err)
		assert.True(t, persisted)

		assert.Equal(t, 0, summary.TotalMeetings)
		assert.Empty(t, summary.MeetingsByType)
		assert.Empty(t, summary.MonthlyStats)
		assert.Equal(t, 0, summary.MeetingsByStatus.Sum())
		assert.Equal(t, models.Rate{}, summary.AttendanceStats.AttendanceRate)

		// Division-by-zero guard surfaces as the JSON number 0, not "0.00".
		raw, err := json.Marshal(summary.AttendanceStats.AttendanceRate)
		require.NoError(t, err)
		assert.Equal(t, "0", string(raw))

		// The snapshot is still appended for an empty period.
		require.Len(t, repo.snapshots, 1)
		assert.Equal(t, 0, repo.snapshots[0].TotalMeetings)
	})

	t.Run("UserAttendance", func(t *testing.T) {
		m1 := newMeeting(models.MeetingTypeMember, models.MeetingStatusCompleted, "2024-05-10")
		m2 := newMeeting(models.MeetingTypeMember, models.MeetingStatusCompleted, "2024-05-24")
		member := primitive.NewObjectID()
		other := primitive.NewObjectID()
		signedAt := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

		repo := &fakeRepo{
			meetings: []models.Meeting{m1, m2},
			participants: []models.Participant{
				invite(m1, member), invite(m2, member), invite(m1, other),
			},
			signIns: []models.SignIn{signIn(m1, member, signedAt)},
		}

		summary, _, err := Generate(ctx, repo, Request{OrganizationID: "org-1", UserID: member.Hex()})
		require.NoError(t, err)

		ua := summary.UserAttendance
		require.NotNil(t, ua)
		assert.Equal(t, 2, ua.TotalInvited)
		assert.Equal(t, 1, ua.TotalAttended)
		assert.Equal(t, "50.00", ua.AttendanceRate.String())

		require.Len(t, ua.Meetings, 2)
		attendedRow := ua.Meetings[0]
		assert.Equal(t, m1.ID.Hex(), attendedRow.MeetingID)
		assert.True(t, attendedRow.Attended)
		require.NotNil(t, attendedRow.SignInTime)
		assert.Equal(t, signedAt.Format(time.RFC3339), *attendedRow.SignInTime)

		missedRow := ua.Meetings[1]
		assert.False(t, missedRow.Attended)
		assert.Nil(t, missedRow.SignInTime)

		// The personal rate wins in the snapshot.
		require.Len(t, repo.snapshots, 1)
		snap := repo.snapshots[0]
		require.NotNil(t, snap.AttendedMeetings)
		assert.Equal(t, 1, *snap.AttendedMeetings)
		assert.Equal(t, 50.0, snap.AttendanceRate)
	})

	t.Run("MissingOrganizationID", func(t *testing.T) {
		repo := &fakeRepo{}

		summary, persisted, err := Generate(ctx, repo, Request{})
		assert.Nil(t, summary)
		assert.False(t, persisted)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Zero(t, repo.fetchCalls, "validation must reject before any fetch")
		assert.Empty(t, repo.snapshots)
	})

	t.Run("FetchFailureAborts", func(t *testing.T) {
		boom := errors.New("connection reset")

		for name, repo := range map[string]*fakeRepo{
			"meetings":     {meetingsErr: boom},
			"participants": {participantErr: boom},
			"sign-ins":     {signInErr: boom},
		} {
			summary, persisted, err := Generate(ctx, repo, Request{OrganizationID: "org-1"})
			assert.Nil(t, summary, name)
			assert.False(t, persisted, name)
			assert.ErrorIs(t, err, boom, name)
			assert.Empty(t, repo.snapshots, name)
		}
	})

	t.Run("SnapshotFailureIsNotFatal", func(t *testing.T) {
		m := newMeeting(models.MeetingTypeGroup, models.MeetingStatusPlanned, "2024-06-01")
		repo := &fakeRepo{
			meetings:    []models.Meeting{m},
			snapshotErr: errors.New("write concern failed"),
		}

		summary, persisted, err := Generate(ctx, repo, Request{OrganizationID: "org-1"})
		require.NoError(t, err)
		assert.False(t, persisted)
		require.NotNil(t, summary)
		assert.Equal(t, 1, summary.TotalMeetings)
	})

	t.Run("UnknownStatusAndType", func(t *testing.T) {
		known := newMeeting(models.MeetingTypeBranch, models.MeetingStatusCompleted, "2024-07-03")
		oddStatus := newMeeting(models.MeetingTypeBranch, "postponed", "2024-07-10")
		oddType := newMeeting("retreat", models.MeetingStatusCompleted, "2024-07-17")

		repo := &fakeRepo{meetings: []models.Meeting{known, oddStatus, oddType}}

		summary, _, err := Generate(ctx, repo, Request{OrganizationID: "org-1"})
		require.NoError(t, err)

		// Unknown status still counts toward the total but lands in no bucket.
		assert.Equal(t, 3, summary.TotalMeetings)
		assert.Equal(t, 2, summary.MeetingsByStatus.Sum())

		// Unknown type codes collapse into the fallback label.
		assert.Equal(t, 1, summary.MeetingsByType["uncategorized"])
	})

	t.Run("SnapshotPeriodDefaults", func(t *testing.T) {
		repo := &fakeRepo{}
		_, _, err := Generate(ctx, repo, Request{OrganizationID: "org-1"})
		require.NoError(t, err)

		require.Len(t, repo.snapshots, 1)
		snap := repo.snapshots[0]
		now := time.Now()
		assert.Equal(t, now.Format("2006-01-02"), snap.PeriodEnd)
		assert.Equal(t, now.AddDate(0, -1, 0).Format("2006-01-02"), snap.PeriodStart)
		assert.Nil(t, snap.AttendedMeetings)

		repo2 := &fakeRepo{}
		_, _, err = Generate(ctx, repo2, Request{OrganizationID: "org-1", StartDate: "2024-01-01", EndDate: "2024-01-31"})
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", repo2.snapshots[0].PeriodStart)
		assert.Equal(t, "2024-01-31", repo2.snapshots[0].PeriodEnd)
	})

	t.Run("Idempotent", func(t *testing.T) {
		m := newMeeting(models.MeetingTypeBranch, models.MeetingStatusCompleted, "2024-08-01")
		user := primitive.NewObjectID()
		repo := &fakeRepo{
			meetings:     []models.Meeting{m},
			participants: []models.Participant{invite(m, user)},
			signIns:      []models.SignIn{signIn(m, user, time.Now())},
		}

		first, _, err := Generate(ctx, repo, Request{OrganizationID: "org-1"})
		require.NoError(t, err)
		second, _, err := Generate(ctx, repo, Request{OrganizationID: "org-1"})
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, repo.snapshots, 2, "every run appends its own snapshot")
	})
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-03", monthKey("2024-03-15"))
	assert.Equal(t, "2024-12", monthKey("2024-12"))
	assert.Equal(t, "", monthKey("bad"))
	assert.Equal(t, "", monthKey(""))
}

func TestRateRounding(t *testing.T) {
	assert.Equal(t, models.Rate{}, rate(0, 0))
	assert.Equal(t, models.Rate{}, rate(5, 0))
	assert.Equal(t, models.NewRate(0), rate(0, 10))
	assert.Equal(t, models.NewRate(100), rate(10, 10))
	assert.Equal(t, "66.67", rate(2, 3).String())
	assert.Equal(t, "33.33", rate(1, 3).String())
}
