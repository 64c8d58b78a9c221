package messages

import (
	"context"
	"errors"
	"fmt"
	"time"

	DB "party-meeting-backend/src/database"
	"party-meeting-backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SendMessage stores one private message.
func SendMessage(msg *models.PrivateMessage) error {
	if msg.SenderID.IsZero() || msg.ReceiverID.IsZero() || msg.MessageContent == "" {
		return errors.New("sender, receiver and content are required")
	}
	if msg.MessageType == "" {
		msg.MessageType = "text"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg.ID = primitive.NewObjectID()
	msg.IsRead = false
	msg.CreatedAt = time.Now()

	if _, err := DB.PrivateMessageCollection.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// BroadcastMessage sends the same text message from one sender to many recipients.
func BroadcastMessage(senderID string, recipientIDs []string, content string) (int, error) {
	if content == "" || len(recipientIDs) == 0 {
		return 0, errors.New("content and recipients are required")
	}

	senderObjID, err := primitive.ObjectIDFromHex(senderID)
	if err != nil {
		return 0, errors.New("invalid sender ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, 0, len(recipientIDs))
	for _, recipientID := range recipientIDs {
		recipientObjID, err := primitive.ObjectIDFromHex(recipientID)
		if err != nil {
			return 0, fmt.Errorf("invalid recipient ID: %s", recipientID)
		}
		docs = append(docs, models.PrivateMessage{
			ID:             primitive.NewObjectID(),
			SenderID:       senderObjID,
			ReceiverID:     recipientObjID,
			MessageType:    "text",
			MessageContent: content,
			CreatedAt:      now,
		})
	}

	if _, err := DB.PrivateMessageCollection.InsertMany(ctx, docs); err != nil {
		return 0, fmt.Errorf("failed to broadcast message: %w", err)
	}
	return len(docs), nil
}

// GetConversation returns the message history between two users, oldest first.
func GetConversation(userID, otherID string, params models.PaginationParams) (*models.PaginatedResponse, error) {
	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}
	otherObjID, err := primitive.ObjectIDFromHex(otherID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"senderId": userObjID, "receiverId": otherObjID},
		{"senderId": otherObjID, "receiverId": userObjID},
	}}

	total, err := DB.PrivateMessageCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	findOptions := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.M{"createdAt": 1})

	cursor, err := DB.PrivateMessageCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}
	defer cursor.Close(ctx)

	msgs := []models.PrivateMessage{}
	if err = cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	return models.NewPaginatedResponse(msgs, total, params), nil
}

// MarkConversationRead flags every message from otherID to userID as read.
func MarkConversationRead(userID, otherID string) (int64, error) {
	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return 0, errors.New("invalid user ID")
	}
	otherObjID, err := primitive.ObjectIDFromHex(otherID)
	if err != nil {
		return 0, errors.New("invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.PrivateMessageCollection.UpdateMany(ctx,
		bson.M{"senderId": otherObjID, "receiverId": userObjID, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark conversation read: %w", err)
	}
	return result.ModifiedCount, nil
}

// GetUnreadCount returns how many unread messages a user has.
func GetUnreadCount(userID string) (int64, error) {
	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return 0, errors.New("invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := DB.PrivateMessageCollection.CountDocuments(ctx, bson.M{
		"receiverId": userObjID,
		"isRead":     false,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}
