// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership types.
const (
	MembershipRegular = "regular"
	MembershipPremium = "premium"
)

// User is a cooperative member account. Email is stored normalized
// (trimmed, lowercase) and is unique.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BusinessName   string             `bson:"business_name" json:"businessName"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash   string             `bson:"password_hash" json:"-"`
	MembershipType string             `bson:"membership_type" json:"membershipType"` // regular | premium

	LastLogin  *time.Time `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
	JoinedDate time.Time  `bson:"joined_date" json:"joinedDate"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
