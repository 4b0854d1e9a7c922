package businessdetails

import (
	"net/http"

	businessdetailstore "github.com/dalemusser/coophub/internal/app/store/businessdetails"
	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const msgNotFound = "Business detail not found"

// Handler serves member-owned business profiles.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	store *businessdetailstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		store: businessdetailstore.New(db),
	}
}

func idParam(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperr.NotFound(msgNotFound)
	}
	return id, nil
}

type detailInput struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Category     string   `json:"category" validate:"max=60"`
	Description  string   `json:"description" validate:"max=2000"`
	Address      string   `json:"address" validate:"max=200"`
	Phone        string   `json:"phone" validate:"max=30"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Website      string   `json:"website" validate:"omitempty,url"`
	OpeningHours string   `json:"openingHours" validate:"max=200"`
	Services     []string `json:"services"`
	Images       []string `json:"images" validate:"omitempty,dive,url"`
	Status       string   `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

type detailPatch struct {
	Name         *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Category     *string  `json:"category" validate:"omitempty,max=60"`
	Description  *string  `json:"description" validate:"omitempty,max=2000"`
	Address      *string  `json:"address" validate:"omitempty,max=200"`
	Phone        *string  `json:"phone" validate:"omitempty,max=30"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	Website      *string  `json:"website" validate:"omitempty,url"`
	OpeningHours *string  `json:"openingHours" validate:"omitempty,max=200"`
	Services     []string `json:"services"`
	Images       []string `json:"images" validate:"omitempty,dive,url"`
	Status       *string  `json:"status" validate:"omitempty,oneof=active inactive pending"`
}

func (p detailPatch) update() businessdetailstore.Update {
	return businessdetailstore.Update{
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		Address:      p.Address,
		Phone:        p.Phone,
		Email:        p.Email,
		Website:      p.Website,
		OpeningHours: p.OpeningHours,
		Services:     p.Services,
		Images:       p.Images,
		Status:       p.Status,
	}
}
