package controllers

import (
	"party-meeting-backend/src/models"
	"party-meeting-backend/src/services/messages"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SendPrivateMessage stores one message from the caller to another member.
func SendPrivateMessage(c *fiber.Ctx) error {
	type request struct {
		ReceiverID     string `json:"receiverId"`
		MessageType    string `json:"messageType"`
		MessageContent string `json:"messageContent"`
		FileURL        string `json:"fileUrl"`
		FileName       string `json:"fileName"`
		FileSize       int64  `json:"fileSize"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("MISSING_PARAMS", "invalid request body"))
	}

	senderID, _ := c.Locals("userId").(string)
	senderObjID, err := primitive.ObjectIDFromHex(senderID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("MISSING_PARAMS", "invalid sender"))
	}
	receiverObjID, err := primitive.ObjectIDFromHex(req.ReceiverID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("MISSING_PARAMS", "invalid receiver"))
	}

	msg := models.PrivateMessage{
		SenderID:       senderObjID,
		ReceiverID:     receiverObjID,
		MessageType:    req.MessageType,
		MessageContent: req.MessageContent,
		FileURL:        req.FileURL,
		FileName:       req.FileName,
		FileSize:       req.FileSize,
	}
	if err := messages.SendMessage(&msg); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("SEND_MESSAGE_FAILED", err.Error()))
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"chat": msg}})
}

// BroadcastMessage sends one text message to many members at once.
func BroadcastMessage(c *fiber.Ctx) error {
	type request struct {
		RecipientIDs   []string `json:"recipientIds"`
		MessageContent string   `json:"messageContent"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("BROADCAST_FAILED", "invalid request body"))
	}

	senderID, _ := c.Locals("userId").(string)
	sent, err := messages.BroadcastMessage(senderID, req.RecipientIDs, req.MessageContent)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("BROADCAST_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"sent": sent}})
}

// GetConversation returns the caller's history with another member.
func GetConversation(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Limit = 50
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("GET_CONVERSATION_FAILED", "invalid query parameters"))
	}
	params.Normalize()

	userID, _ := c.Locals("userId").(string)
	result, err := messages.GetConversation(userID, c.Params("userId"), params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("GET_CONVERSATION_FAILED", err.Error()))
	}
	return c.JSON(result)
}

// MarkConversationRead flags the other member's messages to the caller as read.
func MarkConversationRead(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	updated, err := messages.MarkConversationRead(userID, c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("MARK_READ_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": updated}})
}

// GetUnreadCount returns the caller's unread message count.
func GetUnreadCount(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	count, err := messages.GetUnreadCount(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("UNREAD_COUNT_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"unread": count}})
}
