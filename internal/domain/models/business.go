// internal/domain/models/business.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing statuses shared by Business and BusinessDetail.
const (
	ListingActive   = "active"
	ListingInactive = "inactive"
	ListingPending  = "pending"
)

// AllCategoriesSentinel is the category value the directory UI sends to mean
// "no category filter".
const AllCategoriesSentinel = "All Categories"

// BusinessCategories is the closed set of directory categories.
var BusinessCategories = []string{
	"Agriculture",
	"Retail",
	"Food & Beverage",
	"Manufacturing",
	"Services",
	"Technology",
	"Health",
	"Education",
	"Tourism",
	"Other",
}

// IsValidCategory reports whether c is one of BusinessCategories.
func IsValidCategory(c string) bool {
	for _, v := range BusinessCategories {
		if v == c {
			return true
		}
	}
	return false
}

// Business is a member business listed in the public directory.
type Business struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"` // derived from Name, unique
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Services    []string           `bson:"services" json:"services"`
	Location    string             `bson:"location" json:"location"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`
	OwnerName   string             `bson:"owner_name,omitempty" json:"ownerName,omitempty"`
	Logo        string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Status      string             `bson:"status" json:"status"` // active | inactive | pending

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// DirectoryEntry is the public projection of a Business with contact PII
// (phone, email, owner) removed.
type DirectoryEntry struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Category    string             `json:"category"`
	Description string             `json:"description"`
	Services    []string           `json:"services"`
	Location    string             `json:"location"`
	Address     string             `json:"address,omitempty"`
	Website     string             `json:"website,omitempty"`
	Logo        string             `json:"logo,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// Public returns the directory projection of b.
func (b Business) Public() DirectoryEntry {
	return DirectoryEntry{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		Category:    b.Category,
		Description: b.Description,
		Services:    b.Services,
		Location:    b.Location,
		Address:     b.Address,
		Website:     b.Website,
		Logo:        b.Logo,
		CreatedAt:   b.CreatedAt,
	}
}

// BusinessDetail is a member-owned business profile. It models the same
// real-world thing as Business but is kept as an independent resource.
type BusinessDetail struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	NameCI       string             `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Category     string             `bson:"category" json:"category"`
	Description  string             `bson:"description" json:"description"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Website      string             `bson:"website,omitempty" json:"website,omitempty"`
	OpeningHours string             `bson:"opening_hours,omitempty" json:"openingHours,omitempty"`
	Services     []string           `bson:"services" json:"services"`
	Images       []string           `bson:"images" json:"images"`
	Status       string             `bson:"status" json:"status"`
	OwnerID      primitive.ObjectID `bson:"owner_id" json:"ownerId"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
