// internal/domain/models/catalog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogFields are shared by every ordered, toggleable catalog entry
// (service schemes, facilities, team members).
type CatalogFields struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Order     int                `bson:"order" json:"order" validate:"gte=0"`
	IsActive  *bool              `bson:"is_active" json:"isActive"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Base exposes the shared fields to generic catalog code.
func (c *CatalogFields) Base() *CatalogFields { return c }

// Active reports the entry's effective active flag; unset means active.
func (c *CatalogFields) Active() bool { return c.IsActive == nil || *c.IsActive }

type SavingScheme struct {
	CatalogFields  `bson:",inline"`
	Title          string   `bson:"title" json:"title" validate:"required,max=120"`
	Description    string   `bson:"description" json:"description"`
	InterestRate   float64  `bson:"interest_rate" json:"interestRate" validate:"gte=0,lte=100"`
	MinimumDeposit float64  `bson:"minimum_deposit" json:"minimumDeposit" validate:"gte=0"`
	Features       []string `bson:"features" json:"features"`
}

type LoanScheme struct {
	CatalogFields `bson:",inline"`
	Title         string   `bson:"title" json:"title" validate:"required,max=120"`
	Description   string   `bson:"description" json:"description"`
	InterestRate  float64  `bson:"interest_rate" json:"interestRate" validate:"gte=0,lte=100"`
	MaxAmount     float64  `bson:"max_amount" json:"maxAmount" validate:"gte=0"`
	TenureMonths  int      `bson:"tenure_months" json:"tenureMonths" validate:"gte=0"`
	Features      []string `bson:"features" json:"features"`
}

type AdditionalFacility struct {
	CatalogFields `bson:",inline"`
	Title         string `bson:"title" json:"title" validate:"required,max=120"`
	Description   string `bson:"description" json:"description"`
	Icon          string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// TeamMember is a board or staff member shown on the Team page.
type TeamMember struct {
	CatalogFields `bson:",inline"`
	Name          string `bson:"name" json:"name" validate:"required,max=100"`
	Position      string `bson:"position" json:"position" validate:"required,max=100"`
	Bio           string `bson:"bio,omitempty" json:"bio,omitempty"`
	Image         string `bson:"image,omitempty" json:"image,omitempty"`
	Email         string `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Phone         string `bson:"phone,omitempty" json:"phone,omitempty"`
}
