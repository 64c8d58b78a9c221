package statistics

import (
	"context"
	"fmt"
	"time"

	DB "party-meeting-backend/src/database"
	"party-meeting-backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the narrow gateway the aggregation reads through. Tests inject a fake;
// production uses the Mongo implementation below.
type Repository interface {
	// ListMeetings returns the organization's meetings within the inclusive date
	// bounds. An empty bound means unbounded on that side.
	ListMeetings(ctx context.Context, organizationID, startDate, endDate string) ([]models.Meeting, error)
	// ListParticipants returns participation rows for exactly the given meetings.
	ListParticipants(ctx context.Context, meetingIDs []primitive.ObjectID) ([]models.Participant, error)
	// ListSignIns returns sign-in rows for exactly the given meetings.
	ListSignIns(ctx context.Context, meetingIDs []primitive.ObjectID) ([]models.SignIn, error)
	// SaveSnapshot appends one snapshot row. Never read back by the aggregation.
	SaveSnapshot(ctx context.Context, snapshot models.StatisticsSnapshot) error
}

type mongoRepository struct{}

// NewMongoRepository returns the production repository backed by the shared
// database collections.
func NewMongoRepository() Repository {
	return mongoRepository{}
}

func (mongoRepository) ListMeetings(ctx context.Context, organizationID, startDate, endDate string) ([]models.Meeting, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"organizationId": organizationID}
	dateFilter := bson.M{}
	if startDate != "" {
		dateFilter["$gte"] = startDate
	}
	if endDate != "" {
		dateFilter["$lte"] = endDate
	}
	if len(dateFilter) > 0 {
		filter["meetingDate"] = dateFilter
	}

	cursor, err := DB.MeetingCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find meetings: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err = cursor.All(ctx, &meetings); err != nil {
		return nil, fmt.Errorf("failed to decode meetings: %w", err)
	}
	return meetings, nil
}

func (mongoRepository) ListParticipants(ctx context.Context, meetingIDs []primitive.ObjectID) ([]models.Participant, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := DB.ParticipantCollection.Find(ctx, bson.M{"meetingId": bson.M{"$in": meetingIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to find participants: %w", err)
	}
	defer cursor.Close(ctx)

	var participants []models.Participant
	if err = cursor.All(ctx, &participants); err != nil {
		return nil, fmt.Errorf("failed to decode participants: %w", err)
	}
	return participants, nil
}

func (mongoRepository) ListSignIns(ctx context.Context, meetingIDs []primitive.ObjectID) ([]models.SignIn, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := DB.SignInCollection.Find(ctx, bson.M{"meetingId": bson.M{"$in": meetingIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to find sign-ins: %w", err)
	}
	defer cursor.Close(ctx)

	var signIns []models.SignIn
	if err = cursor.All(ctx, &signIns); err != nil {
		return nil, fmt.Errorf("failed to decode sign-ins: %w", err)
	}
	return signIns, nil
}

func (mongoRepository) SaveSnapshot(ctx context.Context, snapshot models.StatisticsSnapshot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	snapshot.ID = primitive.NewObjectID()
	if _, err := DB.StatisticsCollection.InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert statistics snapshot: %w", err)
	}
	return nil
}
