package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"party-meeting-backend/src/database"
	"party-meeting-backend/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleMeetingReminderTask writes an in-app reminder notification to every invited
// member of the meeting. Cancelled or deleted meetings skip without error.
func HandleMeetingReminderTask(ctx context.Context, t *asynq.Task) error {
	var payload MeetingPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	meetingID, err := primitive.ObjectIDFromHex(payload.MeetingID)
	if err != nil {
		return err
	}

	var meeting models.Meeting
	err = database.MeetingCollection.FindOne(ctx, bson.M{"_id": meetingID}).Decode(&meeting)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Meeting not found. Possibly deleted. Skipping reminder:", payload.MeetingID)
			return nil
		}
		return err
	}
	if meeting.Status == models.MeetingStatusCancelled {
		log.Println("⚠️ Meeting cancelled. Skipping reminder:", payload.MeetingID)
		return nil
	}

	cursor, err := database.ParticipantCollection.Find(ctx, bson.M{"meetingId": meetingID})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var participants []models.Participant
	if err = cursor.All(ctx, &participants); err != nil {
		return err
	}

	for _, p := range participants {
		notification := models.Notification{
			ID:          primitive.NewObjectID(),
			Title:       "Meeting reminder: " + meeting.Title,
			Content:     meeting.MeetingDate + " " + meeting.StartTime + " @ " + meeting.Location,
			Type:        "meeting",
			MeetingID:   &meetingID,
			RecipientID: p.UserID,
			SenderID:    meeting.OrganizerID,
			CreatedAt:   time.Now(),
		}
		if _, err := database.NotificationCollection.InsertOne(ctx, notification); err != nil {
			log.Println("⚠️ Failed to insert reminder notification:", err)
		}
	}

	log.Printf("✅ Reminder sent for meeting %s to %d participants", payload.MeetingID, len(participants))
	return nil
}
