package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	DB "party-meeting-backend/src/database"
	"party-meeting-backend/src/models"
	"party-meeting-backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

// AuthenticateUser checks credentials and returns the account with its profile name
// attached. The error is deliberately the same for unknown email and bad password.
func AuthenticateUser(email, password string) (*models.User, *models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		return nil, nil, errors.New("invalid email or password")
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, nil, errors.New("invalid email or password")
	}

	var profile models.UserProfile
	if err := DB.ProfileCollection.FindOne(ctx, bson.M{"userId": user.ID}).Decode(&profile); err != nil {
		// An account without a profile can still log in; the frontend falls back to email.
		profile = models.UserProfile{UserID: user.ID, Role: user.Role}
	}

	user.Password = ""
	return &user, &profile, nil
}

func attemptsKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
}

// IsRateLimited reports whether the email has exhausted its login attempts.
// Without Redis rate limiting is disabled.
func IsRateLimited(email string) bool {
	if DB.RedisClient == nil {
		return false
	}

	count, err := DB.RedisClient.Get(DB.RedisCtx, attemptsKey(email)).Int()
	if err != nil {
		return false
	}
	return count >= maxLoginAttempts
}

// GetRemainingCooldownTime returns how long until the email may try again.
func GetRemainingCooldownTime(email string) time.Duration {
	if DB.RedisClient == nil {
		return 0
	}

	ttl, err := DB.RedisClient.TTL(DB.RedisCtx, attemptsKey(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// LogLoginAttempt bumps the failure counter, or clears it on success.
func LogLoginAttempt(email string, success bool) {
	if DB.RedisClient == nil {
		return
	}

	key := attemptsKey(email)
	if success {
		DB.RedisClient.Del(DB.RedisCtx, key)
		return
	}

	count, _ := DB.RedisClient.Incr(DB.RedisCtx, key).Result()
	if count == 1 {
		DB.RedisClient.Expire(DB.RedisCtx, key, loginCooldown)
	}
}
