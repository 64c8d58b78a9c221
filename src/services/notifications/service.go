package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	DB "party-meeting-backend/src/database"
	"party-meeting-backend/src/jobs"
	"party-meeting-backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateNotification writes one in-app notification row per recipient.
func CreateNotification(title, content, notifType, senderID string, recipientIDs []string) (int, error) {
	if title == "" || content == "" || len(recipientIDs) == 0 {
		return 0, errors.New("title, content and recipients are required")
	}

	senderObjID, err := primitive.ObjectIDFromHex(senderID)
	if err != nil {
		return 0, errors.New("invalid sender ID")
	}
	if notifType == "" {
		notifType = "announcement"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(recipientIDs))
	for _, recipientID := range recipientIDs {
		recipientObjID, err := primitive.ObjectIDFromHex(recipientID)
		if err != nil {
			return 0, fmt.Errorf("invalid recipient ID: %s", recipientID)
		}
		docs = append(docs, models.Notification{
			ID:          primitive.NewObjectID(),
			Title:       title,
			Content:     content,
			Type:        notifType,
			RecipientID: recipientObjID,
			SenderID:    senderObjID,
			CreatedAt:   time.Now(),
		})
	}

	if _, err := DB.NotificationCollection.InsertMany(ctx, docs); err != nil {
		return 0, fmt.Errorf("failed to create notifications: %w", err)
	}
	return len(docs), nil
}

// GetNotificationsForUser lists a member's notifications, newest first.
func GetNotificationsForUser(userID string, params models.PaginationParams) (*models.PaginatedResponse, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"recipientId": objID}

	total, err := DB.NotificationCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	findOptions := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := DB.NotificationCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", err)
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}

	return models.NewPaginatedResponse(notifications, total, params), nil
}

// MarkNotificationRead flags one notification as read for its recipient.
func MarkNotificationRead(notificationID, userID string) error {
	notifObjID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return errors.New("invalid notification ID")
	}
	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.NotificationCollection.UpdateOne(ctx,
		bson.M{"_id": notifObjID, "recipientId": userObjID},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("notification not found")
	}
	return nil
}

// SendMeetingNotice builds the email notice for a meeting and enqueues the dispatch
// job. Delivery and throttling happen in the worker.
func SendMeetingNotice(meetingID string, recipients []jobs.NotificationRecipient) error {
	if meetingID == "" || len(recipients) == 0 {
		return errors.New("meeting ID and recipients are required")
	}

	meetingObjID, err := primitive.ObjectIDFromHex(meetingID)
	if err != nil {
		return errors.New("invalid meeting ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var meeting models.Meeting
	if err := DB.MeetingCollection.FindOne(ctx, bson.M{"_id": meetingObjID}).Decode(&meeting); err != nil {
		return fmt.Errorf("failed to fetch meeting: %w", err)
	}

	body := fmt.Sprintf(
		"Meeting type: %s\nTitle: %s\nDate: %s %s - %s\nLocation: %s\nAgenda: %s\n\nPlease attend on time.",
		models.MeetingTypeLabel(meeting.TypeCode),
		meeting.Title,
		meeting.MeetingDate, meeting.StartTime, meeting.EndTime,
		meeting.Location,
		meeting.Content,
	)

	if DB.AsynqClient == nil {
		return errors.New("notification dispatch unavailable: job queue not initialized")
	}

	task, err := jobs.NewNotificationDispatchTask(jobs.NotificationDispatchPayload{
		MeetingID:  meetingID,
		Subject:    "Meeting notice: " + meeting.Title,
		Body:       body,
		Recipients: recipients,
	})
	if err != nil {
		return fmt.Errorf("failed to build dispatch task: %w", err)
	}

	if _, err := DB.AsynqClient.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue dispatch task: %w", err)
	}

	log.Printf("✅ Meeting notice queued for %s (%d recipients)", meetingID, len(recipients))
	return nil
}
