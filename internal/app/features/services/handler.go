// internal/app/features/services/handler.go
package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/coophub/internal/app/features/catalog"
	catalogstore "github.com/dalemusser/coophub/internal/app/store/catalog"
	"github.com/dalemusser/coophub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coophub/internal/app/system/normalize"
	"github.com/dalemusser/coophub/internal/app/system/respond"
	"github.com/dalemusser/coophub/internal/app/system/timeouts"
	"github.com/dalemusser/coophub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the saving scheme, loan scheme and facility catalogs.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger

	Savings    *catalog.Resource[models.SavingScheme, *models.SavingScheme]
	Loans      *catalog.Resource[models.LoanScheme, *models.LoanScheme]
	Facilities *catalog.Resource[models.AdditionalFacility, *models.AdditionalFacility]
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
		Savings: &catalog.Resource[models.SavingScheme, *models.SavingScheme]{
			Noun:  "Saving scheme",
			Store: catalogstore.NewSavingSchemes(db),
			Log:   logger,
			Prepare: func(s *models.SavingScheme) {
				s.Title = strings.TrimSpace(s.Title)
				s.Description = htmlsanitize.StripTags(s.Description)
				s.Features = normalize.List(s.Features)
			},
		},
		Loans: &catalog.Resource[models.LoanScheme, *models.LoanScheme]{
			Noun:  "Loan scheme",
			Store: catalogstore.NewLoanSchemes(db),
			Log:   logger,
			Prepare: func(l *models.LoanScheme) {
				l.Title = strings.TrimSpace(l.Title)
				l.Description = htmlsanitize.StripTags(l.Description)
				l.Features = normalize.List(l.Features)
			},
		},
		Facilities: &catalog.Resource[models.AdditionalFacility, *models.AdditionalFacility]{
			Noun:  "Facility",
			Store: catalogstore.NewFacilities(db),
			Log:   logger,
			Prepare: func(f *models.AdditionalFacility) {
				f.Title = strings.TrimSpace(f.Title)
				f.Description = htmlsanitize.StripTags(f.Description)
			},
		},
	}
}

// overview is the combined payload of GET /api/services.
type overview struct {
	SavingSchemes        []models.SavingScheme       `json:"savingSchemes"`
	LoanSchemes          []models.LoanScheme         `json:"loanSchemes"`
	AdditionalFacilities []models.AdditionalFacility `json:"additionalFacilities"`
}

// ServeOverview returns the active entries of all three catalogs.
// GET /api/services
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		out overview
		err error
	)
	if out.SavingSchemes, err = h.Savings.Store.ListActive(ctx); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if out.LoanSchemes, err = h.Loans.Store.ListActive(ctx); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if out.AdditionalFacilities, err = h.Facilities.Store.ListActive(ctx); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, "", out)
}
