package controllers

import (
	"party-meeting-backend/src/models"
	"party-meeting-backend/src/services/meetings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateMeeting godoc
// @Summary  Create a meeting
// @Tags     meetings
// @Accept   json
// @Produce  json
// @Param    meeting body models.Meeting true "Meeting"
// @Success  200 {object} models.SuccessResponse
// @Failure  500 {object} models.ErrorEnvelope
// @Security BearerAuth
// @Router   /meetings [post]
func CreateMeeting(c *fiber.Ctx) error {
	var meeting models.Meeting
	if err := c.BodyParser(&meeting); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("CREATE_MEETING_FAILED", "invalid request body"))
	}

	if meeting.OrganizationID == "" || meeting.Title == "" || meeting.MeetingDate == "" {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("CREATE_MEETING_FAILED", "organizationId, title and meetingDate are required"))
	}

	userID, _ := c.Locals("userId").(string)
	if organizerID, err := primitive.ObjectIDFromHex(userID); err == nil {
		meeting.OrganizerID = organizerID
	}

	if err := meetings.CreateMeeting(&meeting); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("CREATE_MEETING_FAILED", err.Error()))
	}

	return c.JSON(fiber.Map{"data": meeting})
}

// GetMeetings lists meetings for an organization with pagination and filters.
func GetMeetings(c *fiber.Ctx) error {
	organizationID := c.Query("organizationId")
	if organizationID == "" {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("LIST_MEETINGS_FAILED", "organizationId is required"))
	}

	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("LIST_MEETINGS_FAILED", "invalid query parameters"))
	}
	params.Normalize()

	result, err := meetings.GetMeetings(organizationID, params, c.Query("typeCode"), c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("LIST_MEETINGS_FAILED", err.Error()))
	}

	return c.JSON(result)
}

// GetMeetingByID fetches one meeting.
func GetMeetingByID(c *fiber.Ctx) error {
	meeting, err := meetings.GetMeetingByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("GET_MEETING_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": meeting})
}

// UpdateMeeting applies a partial update.
func UpdateMeeting(c *fiber.Ctx) error {
	var updates bson.M
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("UPDATE_MEETING_FAILED", "invalid request body"))
	}

	if err := meetings.UpdateMeeting(c.Params("id"), updates); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("UPDATE_MEETING_FAILED", err.Error()))
	}

	meeting, err := meetings.GetMeetingByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("UPDATE_MEETING_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": meeting})
}

// DeleteMeeting removes a meeting and its linked rows.
func DeleteMeeting(c *fiber.Ctx) error {
	if err := meetings.DeleteMeeting(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("DELETE_MEETING_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

// AddParticipants invites members to a meeting.
func AddParticipants(c *fiber.Ctx) error {
	type request struct {
		UserIDs []string `json:"userIds"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil || len(req.UserIDs) == 0 {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("ADD_PARTICIPANTS_FAILED", "userIds is required"))
	}

	added, err := meetings.AddParticipants(c.Params("id"), req.UserIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("ADD_PARTICIPANTS_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"added": added}})
}

// GetParticipants lists the invited members of a meeting.
func GetParticipants(c *fiber.Ctx) error {
	participants, err := meetings.GetParticipants(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("LIST_PARTICIPANTS_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": participants})
}

// RemoveParticipant uninvites a member.
func RemoveParticipant(c *fiber.Ctx) error {
	if err := meetings.RemoveParticipant(c.Params("id"), c.Params("userId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("REMOVE_PARTICIPANT_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"removed": true}})
}

// SignInMeeting records the caller's attendance.
func SignInMeeting(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	signIn, err := meetings.SignIn(c.Params("id"), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("SIGN_IN_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": signIn})
}
