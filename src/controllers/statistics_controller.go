package controllers

import (
	"party-meeting-backend/src/models"
	"party-meeting-backend/src/services/statistics"

	"github.com/gofiber/fiber/v2"
)

var statisticsRepo statistics.Repository = statistics.NewMongoRepository()

// GenerateStatistics godoc
// @Summary      Generate attendance statistics
// @Description  Computes meeting and attendance statistics for an organization over a date range, optionally for one member, and persists a snapshot.
// @Tags         statistics
// @Accept       json
// @Produce      json
// @Param        request body statistics.Request true "Aggregation request"
// @Success      200 {object} models.SuccessResponse
// @Failure      500 {object} models.ErrorEnvelope
// @Security     BearerAuth
// @Router       /statistics/generate [post]
func GenerateStatistics(c *fiber.Ctx) error {
	var req statistics.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("STATISTICS_GENERATION_FAILED", "invalid request body"))
	}

	summary, persisted, err := statistics.Generate(c.Context(), statisticsRepo, req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(models.NewErrorEnvelope("STATISTICS_GENERATION_FAILED", err.Error()))
	}

	return c.JSON(fiber.Map{
		"data":      summary,
		"persisted": persisted,
	})
}
