// internal/app/features/businesses/handler.go
package businesses

import (
	"net/http"

	businessstore "github.com/dalemusser/coophub/internal/app/store/businesses"
	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/dalemusser/coophub/internal/app/system/paging"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const msgNotFound = "Business not found"

// Handler is the feature-level entry point for the business directory.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
	// MaxLimit caps the page size of search results.
	MaxLimit int

	store *businessstore.Store
}

// NewHandler constructs a businesses Handler. maxLimit <= 0 means
// paging.MaxLimit.
func NewHandler(db *mongo.Database, maxLimit int, logger *zap.Logger) *Handler {
	if maxLimit <= 0 {
		maxLimit = paging.MaxLimit
	}
	return &Handler{
		DB:       db,
		Log:      logger,
		MaxLimit: maxLimit,
		store:    businessstore.New(db),
	}
}

// idParam parses the {id} URL parameter. A malformed id is reported the
// same way as a missing business.
func idParam(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperr.NotFound(msgNotFound)
	}
	return id, nil
}
