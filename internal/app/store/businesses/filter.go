package businessstore

import (
	"strings"

	"github.com/dalemusser/coophub/internal/app/system/search"
	"github.com/dalemusser/coophub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Filter describes a directory query. The zero Filter matches every
// business.
type Filter struct {
	Query    string // free text over name, description, services
	Category string // exact; blank or "All Categories" means any
	Location string // case-insensitive substring
	Status   string // exact; ignored when PublicOnly
	// PublicOnly pins status to active for public listings.
	PublicOnly bool
}

// BuildQuery composes the Mongo filter for f.
func (f Filter) BuildQuery() bson.M {
	q := bson.M{}
	if or := search.AnyField(f.Query, "name", "description", "services"); or != nil {
		q["$or"] = or["$or"]
	}
	if !search.IsAll(f.Category, models.AllCategoriesSentinel) {
		q["category"] = strings.TrimSpace(f.Category)
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		q["location"] = search.Contains(loc)
	}
	switch {
	case f.PublicOnly:
		q["status"] = models.ListingActive
	case strings.TrimSpace(f.Status) != "":
		q["status"] = strings.TrimSpace(f.Status)
	}
	return q
}
