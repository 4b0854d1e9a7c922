// internal/app/features/notices/handler.go
package notices

import (
	"net/http"

	noticestore "github.com/dalemusser/coophub/internal/app/store/notices"
	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const msgNotFound = "Notice not found"

// Handler is the feature-level entry point for notices.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	store *noticestore.Store
}

// NewHandler constructs a notices Handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		store: noticestore.New(db),
	}
}

func idParam(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperr.NotFound(msgNotFound)
	}
	return id, nil
}
