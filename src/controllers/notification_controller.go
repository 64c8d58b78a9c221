package controllers

import (
	"party-meeting-backend/src/jobs"
	"party-meeting-backend/src/models"
	"party-meeting-backend/src/services/notifications"

	"github.com/gofiber/fiber/v2"
)

// CreateNotification writes in-app notifications for a set of recipients.
func CreateNotification(c *fiber.Ctx) error {
	type request struct {
		Title        string   `json:"title"`
		Content      string   `json:"content"`
		Type         string   `json:"type"`
		RecipientIDs []string `json:"recipientIds"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("NOTIFICATION_FAILED", "invalid request body"))
	}

	senderID, _ := c.Locals("userId").(string)
	created, err := notifications.CreateNotification(req.Title, req.Content, req.Type, senderID, req.RecipientIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("NOTIFICATION_FAILED", err.Error()))
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"created": created}})
}

// GetMyNotifications lists the caller's notifications.
func GetMyNotifications(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("NOTIFICATION_FAILED", "invalid query parameters"))
	}
	params.Normalize()

	userID, _ := c.Locals("userId").(string)
	result, err := notifications.GetNotificationsForUser(userID, params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("NOTIFICATION_FAILED", err.Error()))
	}
	return c.JSON(result)
}

// MarkNotificationRead flags one of the caller's notifications as read.
func MarkNotificationRead(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	if err := notifications.MarkNotificationRead(c.Params("id"), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("NOTIFICATION_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"read": true}})
}

// SendMeetingNotice godoc
// @Summary  Queue a meeting notice for email delivery
// @Tags     notifications
// @Accept   json
// @Produce  json
// @Success  200 {object} models.SuccessResponse
// @Failure  500 {object} models.ErrorEnvelope
// @Security BearerAuth
// @Router   /notifications/meeting-notice [post]
func SendMeetingNotice(c *fiber.Ctx) error {
	type request struct {
		MeetingID  string                       `json:"meetingId"`
		Recipients []jobs.NotificationRecipient `json:"recipients"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("NOTIFICATION_FAILED", "invalid request body"))
	}

	if err := notifications.SendMeetingNotice(req.MeetingID, req.Recipients); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("NOTIFICATION_FAILED", err.Error()))
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"meetingId":       req.MeetingID,
		"totalRecipients": len(req.Recipients),
		"queued":          true,
	}})
}
