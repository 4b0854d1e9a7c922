// internal/app/features/auditlog/handler.go
package auditlog

import (
	"github.com/dalemusser/coophub/internal/app/store/audit"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the signed-in member's audit trail.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	MaxLimit int

	events *audit.Store
}

func NewHandler(db *mongo.Database, maxLimit int, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		MaxLimit: maxLimit,
		events:   audit.New(db),
	}
}
