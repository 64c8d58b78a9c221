package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles known to the system.
const (
	RoleMember     = "member"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// User is the login account. The password hash never leaves the server.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserProfile is the party-member record attached to an account.
type UserProfile struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	OrganizationID string             `bson:"organizationId,omitempty" json:"organizationId,omitempty"`
	Position       string             `bson:"position,omitempty" json:"position,omitempty"`
	Role           string             `bson:"role" json:"role"`
	Status         string             `bson:"status" json:"status"` // active | inactive
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
