// internal/app/features/about/handler.go
package about

import (
	"context"
	"net/http"

	aboutstore "github.com/dalemusser/coophub/internal/app/store/about"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
	"github.com/dalemusser/coophub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the About page singleton and its nested sub-resources.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	store *aboutstore.Store
}

// NewHandler constructs an About handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		store: aboutstore.New(db),
	}
}

// ServeAbout returns the page, creating the default on first read.
// GET /api/about
func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	page, err := h.store.GetOrCreate(ctx)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, "", page)
}

// mutation edits the loaded page and returns the response data.
type mutation func(page *models.AboutPage) (any, error)

// mutate loads the page, applies fn and saves the whole document. Nothing
// is written when fn fails.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, status int, msg string, fn mutation) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	page, err := h.store.GetOrCreate(ctx)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	data, err := fn(&page)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if err := h.store.Save(ctx, &page); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if data == nil {
		data = page
	}
	respond.JSON(w, status, respond.Envelope{Success: true, Message: msg, Data: data})
}
