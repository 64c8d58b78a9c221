package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrivateMessage is one direct message between two members.
type PrivateMessage struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderID       primitive.ObjectID `bson:"senderId" json:"senderId"`
	ReceiverID     primitive.ObjectID `bson:"receiverId" json:"receiverId"`
	MessageType    string             `bson:"messageType" json:"messageType"` // text | file
	MessageContent string             `bson:"messageContent" json:"messageContent"`
	FileURL        string             `bson:"fileUrl,omitempty" json:"fileUrl,omitempty"`
	FileName       string             `bson:"fileName,omitempty" json:"fileName,omitempty"`
	FileSize       int64              `bson:"fileSize,omitempty" json:"fileSize,omitempty"`
	IsRead         bool               `bson:"isRead" json:"isRead"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
