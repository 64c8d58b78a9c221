package files

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	DB "party-meeting-backend/src/database"
	"party-meeting-backend/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var allowedTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// UploadInput is the base64 upload payload.
type UploadInput struct {
	FileData    string `json:"fileData" validate:"required"` // data URL or raw base64
	FileName    string `json:"fileName" validate:"required"`
	FileType    string `json:"fileType" validate:"required"`
	MeetingID   string `json:"meetingId" validate:"required"`
	Description string `json:"description"`
}

func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// UploadMeetingFile decodes the payload, writes the object to disk and records the
// metadata row. Only JPEG, PNG and PDF are accepted.
func UploadMeetingFile(input UploadInput, uploadedBy string) (*models.MeetingFile, error) {
	ext, ok := allowedTypes[input.FileType]
	if !ok {
		return nil, errors.New("unsupported file type, only JPEG, PNG and PDF are allowed")
	}

	meetingObjID, err := primitive.ObjectIDFromHex(input.MeetingID)
	if err != nil {
		return nil, errors.New("invalid meeting ID")
	}
	uploaderObjID, err := primitive.ObjectIDFromHex(uploadedBy)
	if err != nil {
		return nil, errors.New("invalid uploader ID")
	}

	// Strip a data-URL prefix when present.
	data := input.FileData
	if idx := strings.Index(data, ","); idx != -1 && strings.HasPrefix(data, "data:") {
		data = data[idx+1:]
	}
	binary, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("invalid file data: %v", err)
	}

	objectName := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	relPath := filepath.Join("meetings", input.MeetingID, objectName)
	absPath := filepath.Join(uploadDir(), relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare storage path: %w", err)
	}
	if err := os.WriteFile(absPath, binary, 0o644); err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	file := models.MeetingFile{
		ID:          primitive.NewObjectID(),
		MeetingID:   meetingObjID,
		FileName:    input.FileName,
		FileType:    input.FileType,
		FileURL:     "/files/" + filepath.ToSlash(relPath),
		FileSize:    int64(len(binary)),
		Description: input.Description,
		UploadedBy:  uploaderObjID,
		UploadedAt:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := DB.MeetingFileCollection.InsertOne(ctx, file); err != nil {
		// Metadata is the source of truth; drop the orphaned object.
		if rmErr := os.Remove(absPath); rmErr != nil {
			log.Println("⚠️ Failed to remove orphaned upload:", rmErr)
		}
		return nil, fmt.Errorf("failed to record file metadata: %w", err)
	}
	return &file, nil
}

// GetMeetingFiles lists the archived files of a meeting.
func GetMeetingFiles(meetingID string) ([]models.MeetingFile, error) {
	meetingObjID, err := primitive.ObjectIDFromHex(meetingID)
	if err != nil {
		return nil, errors.New("invalid meeting ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := DB.MeetingFileCollection.Find(ctx, bson.M{"meetingId": meetingObjID})
	if err != nil {
		return nil, fmt.Errorf("failed to find meeting files: %w", err)
	}
	defer cursor.Close(ctx)

	fileList := []models.MeetingFile{}
	if err = cursor.All(ctx, &fileList); err != nil {
		return nil, fmt.Errorf("failed to decode meeting files: %w", err)
	}
	return fileList, nil
}

// DeleteMeetingFile removes the metadata row and the stored object.
func DeleteMeetingFile(fileID string) error {
	objID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return errors.New("invalid file ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var file models.MeetingFile
	if err := DB.MeetingFileCollection.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&file); err != nil {
		return errors.New("file not found")
	}

	relPath := strings.TrimPrefix(file.FileURL, "/files/")
	if err := os.Remove(filepath.Join(uploadDir(), filepath.FromSlash(relPath))); err != nil && !os.IsNotExist(err) {
		log.Println("⚠️ Failed to remove stored object:", err)
	}
	return nil
}
