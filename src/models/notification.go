package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is one in-app message addressed to a single recipient.
type Notification struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Content     string              `bson:"content" json:"content"`
	Type        string              `bson:"type" json:"type"` // meeting | system | announcement
	MeetingID   *primitive.ObjectID `bson:"meetingId,omitempty" json:"meetingId,omitempty"`
	RecipientID primitive.ObjectID  `bson:"recipientId" json:"recipientId"`
	SenderID    primitive.ObjectID  `bson:"senderId" json:"senderId"`
	IsRead      bool                `bson:"isRead" json:"isRead"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
}

// NotificationLog records one delivery attempt per recipient and channel.
type NotificationLog struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	NotificationID *primitive.ObjectID `bson:"notificationId,omitempty" json:"notificationId,omitempty"`
	RecipientID    primitive.ObjectID  `bson:"recipientId" json:"recipientId"`
	Channel        string              `bson:"channel" json:"channel"` // email
	Status         string              `bson:"status" json:"status"`   // sent | failed
	ErrorMessage   string              `bson:"errorMessage,omitempty" json:"errorMessage,omitempty"`
	SentAt         time.Time           `bson:"sentAt" json:"sentAt"`
}
