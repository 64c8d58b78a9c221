package meetings

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	DB "party-meeting-backend/src/database"
	"party-meeting-backend/src/jobs"
	"party-meeting-backend/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMeeting validates and inserts a meeting, then schedules a reminder job for
// future-dated meetings.
func CreateMeeting(meeting *models.Meeting) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if !models.IsValidMeetingType(meeting.TypeCode) {
		return fmt.Errorf("unknown meeting type: %s", meeting.TypeCode)
	}
	if meeting.Status == "" {
		meeting.Status = models.MeetingStatusPlanned
	}
	if !models.IsValidMeetingStatus(meeting.Status) {
		return fmt.Errorf("unknown meeting status: %s", meeting.Status)
	}
	if _, err := time.Parse("2006-01-02", meeting.MeetingDate); err != nil {
		return fmt.Errorf("invalid meeting date: %v", err)
	}

	meeting.ID = primitive.NewObjectID()
	meeting.CreatedAt = time.Now()
	meeting.UpdatedAt = meeting.CreatedAt

	if _, err := DB.MeetingCollection.InsertOne(ctx, meeting); err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}

	scheduleReminder(meeting)
	return nil
}

// scheduleReminder enqueues a reminder for 09:00 the day before the meeting.
// Skipped silently when the broker is unavailable or the slot already passed.
func scheduleReminder(meeting *models.Meeting) {
	if DB.AsynqClient == nil {
		return
	}

	date, err := time.ParseInLocation("2006-01-02", meeting.MeetingDate, time.Local)
	if err != nil {
		return
	}
	remindAt := date.AddDate(0, 0, -1).Add(9 * time.Hour)
	if remindAt.Before(time.Now()) {
		return
	}

	task, err := jobs.NewMeetingReminderTask(meeting.ID.Hex())
	if err != nil {
		log.Println("⚠️ Failed to build reminder task:", err)
		return
	}
	if _, err := DB.AsynqClient.Enqueue(task, asynq.ProcessAt(remindAt)); err != nil {
		log.Println("⚠️ Failed to enqueue reminder task:", err)
		return
	}
	log.Printf("✅ Reminder scheduled for meeting %s at %s", meeting.ID.Hex(), remindAt.Format(time.RFC3339))
}

// GetMeetings returns a paginated meeting list for an organization, with optional
// title search and type/status filters.
func GetMeetings(organizationID string, params models.PaginationParams, typeCode, status string) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"organizationId": organizationID}
	if params.Search != "" {
		filter["title"] = bson.M{"$regex": params.Search, "$options": "i"}
	}
	if typeCode != "" {
		filter["typeCode"] = typeCode
	}
	if status != "" {
		filter["status"] = status
	}

	total, err := DB.MeetingCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count meetings: %w", err)
	}

	findOptions := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := DB.MeetingCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find meetings: %w", err)
	}
	defer cursor.Close(ctx)

	meetings := []models.Meeting{}
	if err = cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("failed to decode meetings: %w", err)
	}

	return models.NewPaginatedResponse(meetings, total, params), nil
}

// GetMeetingByID fetches one meeting.
func GetMeetingByID(id string) (*models.Meeting, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid meeting ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var meeting models.Meeting
	err = DB.MeetingCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&meeting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("meeting not found")
		}
		return nil, err
	}
	return &meeting, nil
}

// UpdateMeeting applies a partial update. Type and status stay within the known sets.
func UpdateMeeting(id string, updates bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid meeting ID")
	}

	if typeCode, ok := updates["typeCode"].(string); ok && !models.IsValidMeetingType(typeCode) {
		return fmt.Errorf("unknown meeting type: %s", typeCode)
	}
	if status, ok := updates["status"].(string); ok && !models.IsValidMeetingStatus(status) {
		return fmt.Errorf("unknown meeting status: %s", status)
	}
	updates["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.MeetingCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update meeting: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("meeting not found")
	}
	return nil
}

// DeleteMeeting removes a meeting and its participation and sign-in rows.
func DeleteMeeting(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.New("invalid meeting ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.MeetingCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	if result.DeletedCount == 0 {
		return errors.New("meeting not found")
	}

	if _, err := DB.ParticipantCollection.DeleteMany(ctx, bson.M{"meetingId": objID}); err != nil {
		log.Println("⚠️ Failed to delete participants for meeting:", err)
	}
	if _, err := DB.SignInCollection.DeleteMany(ctx, bson.M{"meetingId": objID}); err != nil {
		log.Println("⚠️ Failed to delete sign-ins for meeting:", err)
	}
	return nil
}

// AddParticipants invites members to a meeting, skipping ones already invited.
func AddParticipants(meetingID string, userIDs []string) (int, error) {
	meetingObjID, err := primitive.ObjectIDFromHex(meetingID)
	if err != nil {
		return 0, errors.New("invalid meeting ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	added := 0
	for _, userID := range userIDs {
		userObjID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			return added, fmt.Errorf("invalid user ID: %s", userID)
		}

		count, err := DB.ParticipantCollection.CountDocuments(ctx, bson.M{
			"meetingId": meetingObjID,
			"userId":    userObjID,
		})
		if err != nil {
			return added, fmt.Errorf("failed to check participation: %w", err)
		}
		if count > 0 {
			continue
		}

		participant := models.Participant{
			ID:        primitive.NewObjectID(),
			MeetingID: meetingObjID,
			UserID:    userObjID,
			InvitedAt: time.Now(),
		}
		if _, err := DB.ParticipantCollection.InsertOne(ctx, participant); err != nil {
			return added, fmt.Errorf("failed to add participant: %w", err)
		}
		added++
	}
	return added, nil
}

// RemoveParticipant uninvites a member.
func RemoveParticipant(meetingID, userID string) error {
	meetingObjID, err := primitive.ObjectIDFromHex(meetingID)
	if err != nil {
		return errors.New("invalid meeting ID")
	}
	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.ParticipantCollection.DeleteOne(ctx, bson.M{
		"meetingId": meetingObjID,
		"userId":    userObjID,
	})
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}
	if result.DeletedCount == 0 {
		return errors.New("participant not found")
	}
	return nil
}

// GetParticipants lists the invited members of a meeting.
func GetParticipants(meetingID string) ([]models.Participant, error) {
	meetingObjID, err := primitive.ObjectIDFromHex(meetingID)
	if err != nil {
		return nil, errors.New("invalid meeting ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := DB.ParticipantCollection.Find(ctx, bson.M{"meetingId": meetingObjID})
	if err != nil {
		return nil, fmt.Errorf("failed to find participants: %w", err)
	}
	defer cursor.Close(ctx)

	participants := []models.Participant{}
	if err = cursor.All(ctx, &participants); err != nil {
		return nil, fmt.Errorf("failed to decode participants: %w", err)
	}
	return participants, nil
}

// SignIn records attendance once per member per meeting. Participation is not a
// precondition; walk-ins still get a timestamped row.
func SignIn(meetingID, userID string) (*models.SignIn, error) {
	meetingObjID, err := primitive.ObjectIDFromHex(meetingID)
	if err != nil {
		return nil, errors.New("invalid meeting ID")
	}
	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := DB.SignInCollection.CountDocuments(ctx, bson.M{
		"meetingId": meetingObjID,
		"userId":    userObjID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check sign-in: %w", err)
	}
	if count > 0 {
		return nil, errors.New("already signed in")
	}

	signIn := models.SignIn{
		ID:         primitive.NewObjectID(),
		MeetingID:  meetingObjID,
		UserID:     userObjID,
		SignInTime: time.Now(),
	}
	if _, err := DB.SignInCollection.InsertOne(ctx, &signIn); err != nil {
		return nil, fmt.Errorf("failed to record sign-in: %w", err)
	}
	return &signIn, nil
}
