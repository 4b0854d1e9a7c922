// Package aboutpage holds the in-memory edits applied to the About page
// singleton: whole-document and per-section updates, keyed CRUD over the
// values/milestones/communityImpacts arrays, and image attach/detach.
//
// Nothing here touches the database. Callers load the page, apply one
// operation, then save the whole document.
package aboutpage

import (
	"encoding/json"

	"github.com/dalemusser/coophub/internal/app/system/apperr"
	"github.com/dalemusser/coophub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coophub/internal/app/system/inputval"
	"github.com/dalemusser/coophub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section names accepted by UpdateSection.
const (
	SectionHero             = "hero"
	SectionCompanyInfo      = "companyInfo"
	SectionStats            = "stats"
	SectionStory            = "story"
	SectionMissionVision    = "missionVision"
	SectionPurposes         = "purposes"
	SectionValues           = "values"
	SectionMilestones       = "milestones"
	SectionCommunityImpacts = "communityImpacts"
	SectionSEO              = "seo"
)

// Sections is the closed set of section names.
var Sections = []string{
	SectionHero, SectionCompanyInfo, SectionStats, SectionStory, SectionMissionVision,
	SectionPurposes, SectionValues, SectionMilestones, SectionCommunityImpacts, SectionSEO,
}

// ErrInvalidSection is returned for any section name outside Sections.
var ErrInvalidSection = apperr.BadRequest("Invalid section")

// IsSection reports whether name is in Sections.
func IsSection(name string) bool {
	for _, s := range Sections {
		if s == name {
			return true
		}
	}
	return false
}

type HeroPatch struct {
	Title           *string `json:"title"`
	Subtitle        *string `json:"subtitle"`
	Description     *string `json:"description"`
	BackgroundImage *string `json:"backgroundImage"`
}

type CompanyInfoPatch struct {
	Name               *string `json:"name"`
	Founded            *string `json:"founded"`
	RegistrationNumber *string `json:"registrationNumber"`
	Members            *string `json:"members"`
	Description        *string `json:"description"`
}

type ContactPatch struct {
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Hours   *string `json:"hours"`
}

type StoryPatch struct {
	Title      *string       `json:"title"`
	Paragraphs []string      `json:"paragraphs"`
	Contact    *ContactPatch `json:"contact"`
	Images     []string      `json:"images"`
}

type MissionVisionPatch struct {
	Mission *string `json:"mission"`
	Vision  *string `json:"vision"`
}

type SEOPatch struct {
	MetaTitle       *string  `json:"metaTitle"`
	MetaDescription *string  `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
}

// Patch is the body of a whole-page update. Every provided section replaces
// the stored one; absent sections are left alone.
type Patch struct {
	Hero             *models.Hero             `json:"hero"`
	CompanyInfo      *models.CompanyInfo      `json:"companyInfo"`
	Stats            []models.Stat            `json:"stats"`
	Story            *models.Story            `json:"story"`
	Mission          *string                  `json:"mission"`
	Vision           *string                  `json:"vision"`
	Purposes         []string                 `json:"purposes"`
	Values           []models.Value           `json:"values"`
	Milestones       []models.Milestone       `json:"milestones"`
	CommunityImpacts []models.CommunityImpact `json:"communityImpacts"`
	SEO              *models.SEO              `json:"seo"`
}

// ApplyPatch replaces every section p provides.
func ApplyPatch(page *models.AboutPage, p Patch) {
	if p.Hero != nil {
		page.Hero = *p.Hero
	}
	if p.CompanyInfo != nil {
		page.CompanyInfo = *p.CompanyInfo
	}
	if p.Stats != nil {
		page.Stats = withStatIDs(p.Stats)
	}
	if p.Story != nil {
		s := *p.Story
		s.Paragraphs = htmlsanitize.StripAll(nonNil(s.Paragraphs))
		s.Images = nonNil(s.Images)
		page.Story = s
	}
	if p.Mission != nil {
		page.Mission = *p.Mission
	}
	if p.Vision != nil {
		page.Vision = *p.Vision
	}
	if p.Purposes != nil {
		page.Purposes = p.Purposes
	}
	if p.Values != nil {
		page.Values = withValueIDs(p.Values)
	}
	if p.Milestones != nil {
		page.Milestones = withMilestoneIDs(p.Milestones)
	}
	if p.CommunityImpacts != nil {
		page.CommunityImpacts = withImpactIDs(p.CommunityImpacts)
	}
	if p.SEO != nil {
		page.SEO = *p.SEO
		page.SEO.Keywords = nonNil(page.SEO.Keywords)
	}
}

// UpdateSection merges raw into the named section. Object sections merge
// field by field; list sections are replaced. The section name is checked
// before raw is looked at.
func UpdateSection(page *models.AboutPage, name string, raw json.RawMessage) error {
	if !IsSection(name) {
		return ErrInvalidSection
	}
	switch name {
	case SectionHero:
		var p HeroPatch
		if err := inputval.Unmarshal(raw, &p); err != nil {
			return err
		}
		set(&page.Hero.Title, p.Title)
		set(&page.Hero.Subtitle, p.Subtitle)
		set(&page.Hero.Description, p.Description)
		set(&page.Hero.BackgroundImage, p.BackgroundImage)

	case SectionCompanyInfo:
		var p CompanyInfoPatch
		if err := inputval.Unmarshal(raw, &p); err != nil {
			return err
		}
		ci := &page.CompanyInfo
		set(&ci.Name, p.Name)
		set(&ci.Founded, p.Founded)
		set(&ci.RegistrationNumber, p.RegistrationNumber)
		set(&ci.Members, p.Members)
		set(&ci.Description, p.Description)

	case SectionStats:
		var stats []models.Stat
		if err := inputval.Unmarshal(raw, &stats); err != nil {
			return err
		}
		page.Stats = withStatIDs(stats)

	case SectionStory:
		var p StoryPatch
		if err := inputval.Unmarshal(raw, &p); err != nil {
			return err
		}
		set(&page.Story.Title, p.Title)
		if p.Paragraphs != nil {
			page.Story.Paragraphs = htmlsanitize.StripAll(p.Paragraphs)
		}
		if p.Images != nil {
			page.Story.Images = p.Images
		}
		if c := p.Contact; c != nil {
			set(&page.Story.Contact.Address, c.Address)
			set(&page.Story.Contact.Phone, c.Phone)
			set(&page.Story.Contact.Email, c.Email)
			set(&page.Story.Contact.Hours, c.Hours)
		}

	case SectionMissionVision:
		var p MissionVisionPatch
		if err := inputval.Unmarshal(raw, &p); err != nil {
			return err
		}
		set(&page.Mission, p.Mission)
		set(&page.Vision, p.Vision)

	case SectionPurposes:
		var purposes []string
		if err := inputval.Unmarshal(raw, &purposes); err != nil {
			return err
		}
		page.Purposes = nonNil(purposes)

	case SectionValues:
		var values []models.Value
		if err := inputval.Unmarshal(raw, &values); err != nil {
			return err
		}
		page.Values = withValueIDs(values)

	case SectionMilestones:
		var ms []models.Milestone
		if err := inputval.Unmarshal(raw, &ms); err != nil {
			return err
		}
		page.Milestones = withMilestoneIDs(ms)

	case SectionCommunityImpacts:
		var ci []models.CommunityImpact
		if err := inputval.Unmarshal(raw, &ci); err != nil {
			return err
		}
		page.CommunityImpacts = withImpactIDs(ci)

	case SectionSEO:
		var p SEOPatch
		if err := inputval.Unmarshal(raw, &p); err != nil {
			return err
		}
		set(&page.SEO.MetaTitle, p.MetaTitle)
		set(&page.SEO.MetaDescription, p.MetaDescription)
		if p.Keywords != nil {
			page.SEO.Keywords = p.Keywords
		}
	}
	return nil
}

func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func ensureID(id *primitive.ObjectID) {
	if id.IsZero() {
		*id = primitive.NewObjectID()
	}
}

func withStatIDs(in []models.Stat) []models.Stat {
	if in == nil {
		return []models.Stat{}
	}
	for i := range in {
		ensureID(&in[i].ID)
	}
	return in
}

func withValueIDs(in []models.Value) []models.Value {
	if in == nil {
		return []models.Value{}
	}
	for i := range in {
		ensureID(&in[i].ID)
		in[i].Images = nonNil(in[i].Images)
	}
	return in
}

func withMilestoneIDs(in []models.Milestone) []models.Milestone {
	if in == nil {
		return []models.Milestone{}
	}
	for i := range in {
		ensureID(&in[i].ID)
		in[i].Images = nonNil(in[i].Images)
	}
	return in
}

func withImpactIDs(in []models.CommunityImpact) []models.CommunityImpact {
	if in == nil {
		return []models.CommunityImpact{}
	}
	for i := range in {
		ensureID(&in[i].ID)
		in[i].Images = nonNil(in[i].Images)
	}
	return in
}
