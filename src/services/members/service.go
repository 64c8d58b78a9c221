package members

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	DB "party-meeting-backend/src/database"
	"party-meeting-backend/src/models"
	"party-meeting-backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateMemberInput is the payload for roster creation.
type CreateMemberInput struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FullName       string `json:"fullName" validate:"required"`
	Phone          string `json:"phone"`
	OrganizationID string `json:"organizationId"`
	Position       string `json:"position"`
	Role           string `json:"role" validate:"required,oneof=member admin super_admin"`
}

// CreateMember creates the login account and the member profile. If the profile insert
// fails the account is rolled back so a half-created member never lingers.
func CreateMember(input CreateMemberInput) (*models.User, *models.UserProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	email := strings.ToLower(input.Email)

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check existing account: %w", err)
	}
	if count > 0 {
		return nil, nil, errors.New("email already registered")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hash,
		Role:      input.Role,
		CreatedAt: time.Now(),
	}
	if _, err := DB.UserCollection.InsertOne(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("failed to create account: %w", err)
	}

	profile := models.UserProfile{
		ID:             primitive.NewObjectID(),
		UserID:         user.ID,
		FullName:       input.FullName,
		Phone:          input.Phone,
		OrganizationID: input.OrganizationID,
		Position:       input.Position,
		Role:           input.Role,
		Status:         "active",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if _, err := DB.ProfileCollection.InsertOne(ctx, profile); err != nil {
		// Roll the account back so the email can be retried.
		if _, delErr := DB.UserCollection.DeleteOne(ctx, bson.M{"_id": user.ID}); delErr != nil {
			log.Println("⚠️ Failed to roll back account after profile failure:", delErr)
		}
		return nil, nil, fmt.Errorf("failed to create profile: %w", err)
	}

	user.Password = ""
	log.Printf("✅ Created member %s (%s)", profile.FullName, user.Email)
	return &user, &profile, nil
}

// GetMembers returns a paginated roster, optionally filtered by organization, with
// name search.
func GetMembers(organizationID string, params models.PaginationParams) (*models.PaginatedResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if organizationID != "" {
		filter["organizationId"] = organizationID
	}
	if params.Search != "" {
		filter["fullName"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.ProfileCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	findOptions := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := DB.ProfileCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to find members: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []models.UserProfile{}
	if err = cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode members: %w", err)
	}

	return models.NewPaginatedResponse(profiles, total, params), nil
}

// GetMemberByUserID fetches the profile attached to an account.
func GetMemberByUserID(userID string) (*models.UserProfile, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var profile models.UserProfile
	err = DB.ProfileCollection.FindOne(ctx, bson.M{"userId": objID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("member not found")
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateMember applies a partial profile update.
func UpdateMember(userID string, updates bson.M) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	delete(updates, "userId")
	delete(updates, "_id")
	updates["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.ProfileCollection.UpdateOne(ctx, bson.M{"userId": objID}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("member not found")
	}

	// Role changes apply to the account too.
	if role, ok := updates["role"].(string); ok {
		if _, err := DB.UserCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"role": role}}); err != nil {
			log.Println("⚠️ Failed to sync role to account:", err)
		}
	}
	return nil
}

// DeleteMember removes the profile and the account.
func DeleteMember(userID string) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.ProfileCollection.DeleteOne(ctx, bson.M{"userId": objID})
	if err != nil {
		return fmt.Errorf("failed to delete member profile: %w", err)
	}
	if result.DeletedCount == 0 {
		return errors.New("member not found")
	}

	if _, err := DB.UserCollection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		log.Println("⚠️ Failed to delete account for member:", err)
	}
	return nil
}

// ResetPassword sets a new password on an account (admin operation).
func ResetPassword(userID, newPassword string) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}
	if len(newPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := DB.UserCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"password": hash}})
	if err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	if result.MatchedCount == 0 {
		return errors.New("account not found")
	}
	return nil
}
