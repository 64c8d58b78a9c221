package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ConnectMongoDB runs only once
	connectErr error

	dbName = "PartyMeetingDB"

	UserCollection            *mongo.Collection
	ProfileCollection         *mongo.Collection
	MeetingCollection         *mongo.Collection
	ParticipantCollection     *mongo.Collection
	SignInCollection          *mongo.Collection
	NotificationCollection    *mongo.Collection
	NotificationLogCollection *mongo.Collection
	PrivateMessageCollection  *mongo.Collection
	MeetingFileCollection     *mongo.Collection
	StatisticsCollection      *mongo.Collection
)

// ConnectMongoDB connects to MongoDB once and wires up the collection handles.
func ConnectMongoDB() error {

	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	if name := os.Getenv("MONGO_DB"); name != "" {
		dbName = name
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		db := client.Database(dbName)
		UserCollection = db.Collection("users")
		ProfileCollection = db.Collection("user_profiles")
		MeetingCollection = db.Collection("meetings")
		ParticipantCollection = db.Collection("meeting_participants")
		SignInCollection = db.Collection("meeting_sign_ins")
		NotificationCollection = db.Collection("notifications")
		NotificationLogCollection = db.Collection("notification_logs")
		PrivateMessageCollection = db.Collection("private_messages")
		MeetingFileCollection = db.Collection("meeting_files")
		StatisticsCollection = db.Collection("attendance_statistics")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the active database.
func GetCollection(collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
