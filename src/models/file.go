package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MeetingFile is the metadata row for an archived meeting document.
type MeetingFile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MeetingID   primitive.ObjectID `bson:"meetingId" json:"meetingId"`
	FileName    string             `bson:"fileName" json:"fileName"`
	FileType    string             `bson:"fileType" json:"fileType"`
	FileURL     string             `bson:"fileUrl" json:"fileUrl"`
	FileSize    int64              `bson:"fileSize" json:"fileSize"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	UploadedBy  primitive.ObjectID `bson:"uploadedBy" json:"uploadedBy"`
	UploadedAt  time.Time          `bson:"uploadedAt" json:"uploadedAt"`
}
