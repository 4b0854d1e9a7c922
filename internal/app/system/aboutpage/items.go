package aboutpage

import (
	"errors"

	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/dalemusser/coophub/internal/app/system/subdocs"
	"github.com/dalemusser/coophub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrValueNotFound     = apperr.NotFound("Value not found")
	ErrMilestoneNotFound = apperr.NotFound("Milestone not found")
	ErrImpactNotFound    = apperr.NotFound("Community impact not found")
)

// ValueInput is the body for adding a value.
type ValueInput struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=1000"`
	Icon        string   `json:"icon"`
	Images      []string `json:"images"`
}

// ValuePatch is the body for updating a value; nil fields are kept.
type ValuePatch struct {
	Title       *string  `json:"title" validate:"omitempty,max=120"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Icon        *string  `json:"icon"`
	Images      []string `json:"images"`
}

type MilestoneInput struct {
	Year   string   `json:"year" validate:"required,max=20"`
	Event  string   `json:"event" validate:"required,max=500"`
	Icon   string   `json:"icon"`
	Images []string `json:"images"`
}

type MilestonePatch struct {
	Year   *string  `json:"year" validate:"omitempty,max=20"`
	Event  *string  `json:"event" validate:"omitempty,max=500"`
	Icon   *string  `json:"icon"`
	Images []string `json:"images"`
}

type ImpactInput struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=1000"`
	Metrics     string   `json:"metrics"`
	Images      []string `json:"images"`
}

type ImpactPatch struct {
	Title       *string  `json:"title" validate:"omitempty,max=120"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Metrics     *string  `json:"metrics"`
	Images      []string `json:"images"`
}

func values(p *models.AboutPage) *subdocs.Collection[models.Value] {
	return subdocs.New(&p.Values, func(v *models.Value) primitive.ObjectID { return v.ID })
}

func milestones(p *models.AboutPage) *subdocs.Collection[models.Milestone] {
	return subdocs.New(&p.Milestones, func(m *models.Milestone) primitive.ObjectID { return m.ID })
}

func impacts(p *models.AboutPage) *subdocs.Collection[models.CommunityImpact] {
	return subdocs.New(&p.CommunityImpacts, func(c *models.CommunityImpact) primitive.ObjectID { return c.ID })
}

// parseID maps a malformed id to notFound; it cannot name any item.
func parseID(id string, notFound error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return oid, nil
}

func mapNotFound(err, notFound error) error {
	if errors.Is(err, subdocs.ErrNotFound) {
		return notFound
	}
	return err
}

// AddValue appends a value with a fresh id and returns all values.
func AddValue(p *models.AboutPage, in ValueInput) []models.Value {
	return values(p).Add(models.Value{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Images:      nonNil(in.Images),
	})
}

// UpdateValue merges patch over the value with id and returns it.
func UpdateValue(p *models.AboutPage, id string, patch ValuePatch) (models.Value, error) {
	oid, err := parseID(id, ErrValueNotFound)
	if err != nil {
		return models.Value{}, err
	}
	v, err := values(p).Update(oid, func(v *models.Value) {
		set(&v.Title, patch.Title)
		set(&v.Description, patch.Description)
		set(&v.Icon, patch.Icon)
		if patch.Images != nil {
			v.Images = patch.Images
		}
	})
	return v, mapNotFound(err, ErrValueNotFound)
}

// DeleteValue removes the value with id.
func DeleteValue(p *models.AboutPage, id string) error {
	oid, err := parseID(id, ErrValueNotFound)
	if err != nil {
		return err
	}
	return mapNotFound(values(p).Delete(oid), ErrValueNotFound)
}

func AddMilestone(p *models.AboutPage, in MilestoneInput) []models.Milestone {
	return milestones(p).Add(models.Milestone{
		ID:     primitive.NewObjectID(),
		Year:   in.Year,
		Event:  in.Event,
		Icon:   in.Icon,
		Images: nonNil(in.Images),
	})
}

func UpdateMilestone(p *models.AboutPage, id string, patch MilestonePatch) (models.Milestone, error) {
	oid, err := parseID(id, ErrMilestoneNotFound)
	if err != nil {
		return models.Milestone{}, err
	}
	m, err := milestones(p).Update(oid, func(m *models.Milestone) {
		set(&m.Year, patch.Year)
		set(&m.Event, patch.Event)
		set(&m.Icon, patch.Icon)
		if patch.Images != nil {
			m.Images = patch.Images
		}
	})
	return m, mapNotFound(err, ErrMilestoneNotFound)
}

func DeleteMilestone(p *models.AboutPage, id string) error {
	oid, err := parseID(id, ErrMilestoneNotFound)
	if err != nil {
		return err
	}
	return mapNotFound(milestones(p).Delete(oid), ErrMilestoneNotFound)
}

func AddImpact(p *models.AboutPage, in ImpactInput) []models.CommunityImpact {
	return impacts(p).Add(models.CommunityImpact{
		ID:          primitive.NewObjectID(),
		Title:       in.Title,
		Description: in.Description,
		Metrics:     in.Metrics,
		Images:      nonNil(in.Images),
	})
}

func UpdateImpact(p *models.AboutPage, id string, patch ImpactPatch) (models.CommunityImpact, error) {
	oid, err := parseID(id, ErrImpactNotFound)
	if err != nil {
		return models.CommunityImpact{}, err
	}
	c, err := impacts(p).Update(oid, func(c *models.CommunityImpact) {
		set(&c.Title, patch.Title)
		set(&c.Description, patch.Description)
		set(&c.Metrics, patch.Metrics)
		if patch.Images != nil {
			c.Images = patch.Images
		}
	})
	return c, mapNotFound(err, ErrImpactNotFound)
}

func DeleteImpact(p *models.AboutPage, id string) error {
	oid, err := parseID(id, ErrImpactNotFound)
	if err != nil {
		return err
	}
	return mapNotFound(impacts(p).Delete(oid), ErrImpactNotFound)
}
