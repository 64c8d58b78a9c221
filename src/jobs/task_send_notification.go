package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"party-meeting-backend/src/database"
	"party-meeting-backend/src/models"
	"party-meeting-backend/src/services/mailer"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// dispatchDelay spaces out deliveries so the SMTP provider's rate limit is never hit.
const dispatchDelay = 200 * time.Millisecond

// Sender is the mail channel used by the dispatch handler. Tests swap in a fake.
var Sender mailer.MailSender

// HandleNotificationDispatchTask emails each recipient in turn and writes one
// notification_logs row per attempt. A failed recipient does not fail the task.
func HandleNotificationDispatchTask(ctx context.Context, t *asynq.Task) error {
	var payload NotificationDispatchPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	if Sender == nil {
		smtp, err := mailer.NewSMTPSenderFromEnv()
		if err != nil {
			log.Println("❌ Mail sender unavailable:", err)
			return err
		}
		Sender = smtp
	}

	sent, failed := 0, 0
	for i, recipient := range payload.Recipients {
		if i > 0 {
			time.Sleep(dispatchDelay)
		}

		err := Sender.Send(recipient.Email, payload.Subject, payload.Body)
		if err != nil {
			failed++
		} else {
			sent++
		}
		logDelivery(ctx, recipient, err)
	}

	log.Printf("✅ Notification dispatch for meeting %s: %d sent, %d failed", payload.MeetingID, sent, failed)
	return nil
}

func logDelivery(ctx context.Context, recipient NotificationRecipient, sendErr error) {
	if database.NotificationLogCollection == nil {
		return
	}

	recipientID, err := primitive.ObjectIDFromHex(recipient.UserID)
	if err != nil {
		log.Println("⚠️ Invalid recipient id in dispatch payload:", recipient.UserID)
		return
	}

	entry := models.NotificationLog{
		ID:          primitive.NewObjectID(),
		RecipientID: recipientID,
		Channel:     "email",
		Status:      "sent",
		SentAt:      time.Now(),
	}
	if sendErr != nil {
		entry.Status = "failed"
		entry.ErrorMessage = sendErr.Error()
	}

	if _, err := database.NotificationLogCollection.InsertOne(ctx, entry); err != nil {
		log.Println("⚠️ Failed to write notification log:", err)
	}
}
