package statistics

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"party-meeting-backend/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidationError marks a request rejected before any fetch happened.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Request are the aggregation inputs. Dates are inclusive YYYY-MM-DD bounds; an empty
// bound is unbounded on that side. UserID switches on the personal-statistics block.
type Request struct {
	OrganizationID string `json:"organizationId" validate:"required"`
	StartDate      string `json:"startDate,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
	UserID         string `json:"userId,omitempty"`
}

// Generate computes the point-in-time statistics summary for an organization (and
// optionally one member) over a date range, and appends a snapshot row.
//
// The three fetches run sequentially (participants and sign-ins are keyed off the
// meeting list); any fetch failure aborts the whole call with no partial result.
// Snapshot persistence is best-effort: a failure is logged and reported through the
// returned persisted flag, but the summary is still returned.
func Generate(ctx context.Context, repo Repository, req Request) (*models.StatisticsSummary, bool, error) {
	if req.OrganizationID == "" {
		return nil, false, &ValidationError{Message: "organization id is required"}
	}

	meetings, err := repo.ListMeetings(ctx, req.OrganizationID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch meetings: %w", err)
	}

	meetingIDs := make([]primitive.ObjectID, len(meetings))
	for i, m := range meetings {
		meetingIDs[i] = m.ID
	}

	participants, err := repo.ListParticipants(ctx, meetingIDs)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch participants: %w", err)
	}

	signIns, err := repo.ListSignIns(ctx, meetingIDs)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch sign-ins: %w", err)
	}

	summary := reduce(meetings, participants, signIns, req.UserID)

	persisted := true
	if err := repo.SaveSnapshot(ctx, buildSnapshot(req, summary)); err != nil {
		log.Printf("⚠️ Failed to persist statistics snapshot for organization %s: %v", req.OrganizationID, err)
		persisted = false
	}

	return summary, persisted, nil
}

func reduce(meetings []models.Meeting, participants []models.Participant, signIns []models.SignIn, userID string) *models.StatisticsSummary {
	summary := &models.StatisticsSummary{
		TotalMeetings:  len(meetings),
		MeetingsByType: map[string]int{},
		AttendanceStats: models.AttendanceStats{
			TotalParticipants: len(participants),
			TotalSignIns:      len(signIns),
		},
		MonthlyStats: map[string]models.MonthlyStat{},
	}

	unmapped := 0
	for _, meeting := range meetings {
		label := models.MeetingTypeLabel(meeting.TypeCode)
		summary.MeetingsByType[label]++

		switch meeting.Status {
		case models.MeetingStatusPlanned:
			summary.MeetingsByStatus.Planned++
		case models.MeetingStatusInProgress:
			summary.MeetingsByStatus.InProgress++
		case models.MeetingStatusCompleted:
			summary.MeetingsByStatus.Completed++
		case models.MeetingStatusCancelled:
			summary.MeetingsByStatus.Cancelled++
		default:
			// Still in totalMeetings; the write path rejects these, but old rows may
			// carry anything.
			unmapped++
		}

		month := monthKey(meeting.MeetingDate)
		if month != "" {
			stat := summary.MonthlyStats[month]
			if stat.ByType == nil {
				stat.ByType = map[string]int{}
			}
			stat.Total++
			stat.ByType[label]++
			summary.MonthlyStats[month] = stat
		}
	}
	if unmapped > 0 {
		log.Printf("⚠️ %d meetings with unmapped status excluded from meetingsByStatus", unmapped)
	}

	summary.AttendanceStats.AttendanceRate = rate(len(signIns), len(participants))

	if userID != "" {
		summary.UserAttendance = userAttendance(meetings, participants, signIns, userID)
	}

	return summary
}

func userAttendance(meetings []models.Meeting, participants []models.Participant, signIns []models.SignIn, userID string) *models.UserAttendance {
	meetingByID := make(map[primitive.ObjectID]models.Meeting, len(meetings))
	for _, m := range meetings {
		meetingByID[m.ID] = m
	}

	signInByMeeting := make(map[primitive.ObjectID]models.SignIn)
	attended := 0
	for _, s := range signIns {
		if s.UserID.Hex() == userID {
			signInByMeeting[s.MeetingID] = s
			attended++
		}
	}

	ua := &models.UserAttendance{
		TotalAttended: attended,
		Meetings:      []models.UserMeetingAttendance{},
	}

	for _, p := range participants {
		if p.UserID.Hex() != userID {
			continue
		}
		ua.TotalInvited++

		meeting := meetingByID[p.MeetingID]
		row := models.UserMeetingAttendance{
			MeetingID:    p.MeetingID.Hex(),
			MeetingTitle: meeting.Title,
			MeetingDate:  meeting.MeetingDate,
		}
		if signIn, ok := signInByMeeting[p.MeetingID]; ok {
			row.Attended = true
			t := signIn.SignInTime.Format(time.RFC3339)
			row.SignInTime = &t
		}
		ua.Meetings = append(ua.Meetings, row)
	}

	ua.AttendanceRate = rate(ua.TotalAttended, ua.TotalInvited)
	return ua
}

// rate is signIns/participants*100 rounded to 2 decimals, undefined when the
// denominator is 0 (0 of N participants is a defined "0.00").
func rate(signIns, participants int) models.Rate {
	if participants == 0 {
		return models.Rate{}
	}
	return models.NewRate(math.Round(float64(signIns)/float64(participants)*100*100) / 100)
}

// monthKey extracts the YYYY-MM label from a YYYY-MM-DD date.
func monthKey(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

func buildSnapshot(req Request, summary *models.StatisticsSummary) models.StatisticsSnapshot {
	now := time.Now()

	periodStart := req.StartDate
	if periodStart == "" {
		periodStart = now.AddDate(0, -1, 0).Format("2006-01-02")
	}
	periodEnd := req.EndDate
	if periodEnd == "" {
		periodEnd = now.Format("2006-01-02")
	}

	snapshot := models.StatisticsSnapshot{
		OrganizationID: req.OrganizationID,
		UserID:         req.UserID,
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		TotalMeetings:  summary.TotalMeetings,
		AttendanceRate: summary.AttendanceStats.AttendanceRate.Value,
		StatisticsData: *summary,
		ComputedAt:     now,
	}
	if summary.UserAttendance != nil {
		attended := summary.UserAttendance.TotalAttended
		snapshot.AttendedMeetings = &attended
		snapshot.AttendanceRate = summary.UserAttendance.AttendanceRate.Value
	}
	return snapshot
}
