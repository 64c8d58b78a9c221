package controllers

import (
	"party-meeting-backend/src/models"
	"party-meeting-backend/src/services/files"
	"party-meeting-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadMeetingFile godoc
// @Summary  Upload a meeting file (base64 payload)
// @Tags     files
// @Accept   json
// @Produce  json
// @Param    file body files.UploadInput true "File payload"
// @Success  200 {object} models.SuccessResponse
// @Failure  500 {object} models.ErrorEnvelope
// @Security BearerAuth
// @Router   /files/upload [post]
func UploadMeetingFile(c *fiber.Ctx) error {
	var input files.UploadInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("FILE_UPLOAD_FAILED", "invalid request body"))
	}

	if err := utils.ValidateStruct(input); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("FILE_UPLOAD_FAILED", err.Error()))
	}

	userID, _ := c.Locals("userId").(string)
	file, err := files.UploadMeetingFile(input, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("FILE_UPLOAD_FAILED", err.Error()))
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"publicUrl":  file.FileURL,
		"fileRecord": file,
	}})
}

// GetMeetingFiles lists the archived files of a meeting.
func GetMeetingFiles(c *fiber.Ctx) error {
	fileList, err := files.GetMeetingFiles(c.Params("meetingId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("LIST_FILES_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": fileList})
}

// DeleteMeetingFile removes a file and its metadata.
func DeleteMeetingFile(c *fiber.Ctx) error {
	if err := files.DeleteMeetingFile(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("DELETE_FILE_FAILED", err.Error()))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
