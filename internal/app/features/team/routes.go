// Package team serves the board and staff listing.
package team

import (
	"net/http"
	"strings"

	"github.com/dalemusser/coophub/internal/app/features/catalog"
	catalogstore "github.com/dalemusser/coophub/internal/app/store/catalog"
	"github.com/dalemusser/coophub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coophub/internal/app/system/normalize"
	"github.com/dalemusser/coophub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// cleanMember strips markup from the plain-text fields.
func cleanMember(m *models.TeamMember) {
	m.Name = normalize.Name(htmlsanitize.StripTags(m.Name))
	m.Position = htmlsanitize.StripTags(m.Position)
	m.Bio = htmlsanitize.StripTags(m.Bio)
	m.Email = normalize.Email(m.Email)
	m.Phone = strings.TrimSpace(m.Phone)
}

// NewResource returns the team member resource.
func NewResource(db *mongo.Database, logger *zap.Logger) *catalog.Resource[models.TeamMember, *models.TeamMember] {
	return &catalog.Resource[models.TeamMember, *models.TeamMember]{
		Noun:    "Team member",
		Store:   catalogstore.NewTeamMembers(db),
		Log:     logger,
		Prepare: cleanMember,
	}
}

// Routes mounts the team endpoints (typically under "/api/team").
func Routes(db *mongo.Database, logger *zap.Logger, gate func(http.Handler) http.Handler) chi.Router {
	return NewResource(db, logger).Routes(gate)
}
