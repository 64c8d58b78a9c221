package controllers

import (
	"fmt"

	"party-meeting-backend/src/services/auth"
	"party-meeting-backend/src/services/members"
	"party-meeting-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// LoginUser - login for members and admins
func LoginUser(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email and password are required",
			"code":  "MISSING_CREDENTIALS",
		})
	}

	if auth.IsRateLimited(req.Email) {
		remainingTime := auth.GetRemainingCooldownTime(req.Email)
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": fmt.Sprintf("Too many login attempts. Please try again in %d minutes and %d seconds.",
				int(remainingTime.Minutes()),
				int(remainingTime.Seconds())%60),
			"code":          "RATE_LIMITED",
			"remainingTime": int(remainingTime.Seconds()),
		})
	}

	user, profile, err := auth.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		auth.LogLoginAttempt(req.Email, false)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
			"code":  "INVALID_CREDENTIALS",
		})
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Token generation failed",
			"code":  "TOKEN_ERROR",
		})
	}

	auth.LogLoginAttempt(req.Email, true)

	c.Set("X-Frame-Options", "DENY")
	c.Set("X-Content-Type-Options", "nosniff")

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":             user.ID.Hex(),
			"email":          user.Email,
			"role":           user.Role,
			"fullName":       profile.FullName,
			"organizationId": profile.OrganizationID,
			"position":       profile.Position,
		},
		"message": "Login successful",
	})
}

// GetCurrentUser returns the profile of the authenticated caller.
func GetCurrentUser(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	profile, err := members.GetMemberByUserID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"data": profile})
}
