// internal/domain/models/about.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AboutKey is the fixed value of AboutPage.Key. A unique index on key keeps
// the about collection down to a single document.
const AboutKey = "main"

// AboutPage is the singleton document behind the public About page.
type AboutPage struct {
	ID  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Key string             `bson:"key,omitempty" json:"-"`

	Hero        Hero        `bson:"hero" json:"hero"`
	CompanyInfo CompanyInfo `bson:"company_info" json:"companyInfo"`
	Stats       []Stat      `bson:"stats" json:"stats"`
	Story       Story       `bson:"story" json:"story"`

	Mission  string   `bson:"mission" json:"mission"`
	Vision   string   `bson:"vision" json:"vision"`
	Purposes []string `bson:"purposes" json:"purposes"`

	Values           []Value           `bson:"values" json:"values"`
	Milestones       []Milestone       `bson:"milestones" json:"milestones"`
	CommunityImpacts []CommunityImpact `bson:"community_impacts" json:"communityImpacts"`

	SEO SEO `bson:"seo" json:"seo"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

type Hero struct {
	Title           string `bson:"title" json:"title"`
	Subtitle        string `bson:"subtitle" json:"subtitle"`
	Description     string `bson:"description" json:"description"`
	BackgroundImage string `bson:"background_image,omitempty" json:"backgroundImage,omitempty"`
}

type CompanyInfo struct {
	Name               string `bson:"name" json:"name"`
	Founded            string `bson:"founded" json:"founded"`
	RegistrationNumber string `bson:"registration_number,omitempty" json:"registrationNumber,omitempty"`
	Members            string `bson:"members,omitempty" json:"members,omitempty"`
	Description        string `bson:"description" json:"description"`
}

type Stat struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Label string             `bson:"label" json:"label"`
	Value string             `bson:"value" json:"value"`
	Icon  string             `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Story is the long-form history block. Images is addressed directly by
// the image operations (section "story", no item id).
type Story struct {
	Title      string      `bson:"title" json:"title"`
	Paragraphs []string    `bson:"paragraphs" json:"paragraphs"`
	Contact    ContactInfo `bson:"contact" json:"contact"`
	Images     []string    `bson:"images" json:"images"`
}

type ContactInfo struct {
	Address string `bson:"address" json:"address"`
	Phone   string `bson:"phone" json:"phone"`
	Email   string `bson:"email" json:"email"`
	Hours   string `bson:"hours,omitempty" json:"hours,omitempty"`
}

type Value struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Images      []string           `bson:"images" json:"images"`
}

type Milestone struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Year   string             `bson:"year" json:"year"`
	Event  string             `bson:"event" json:"event"`
	Icon   string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Images []string           `bson:"images" json:"images"`
}

type CommunityImpact struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Metrics     string             `bson:"metrics,omitempty" json:"metrics,omitempty"`
	Images      []string           `bson:"images" json:"images"`
}

type SEO struct {
	MetaTitle       string   `bson:"meta_title" json:"metaTitle"`
	MetaDescription string   `bson:"meta_description" json:"metaDescription"`
	Keywords        []string `bson:"keywords" json:"keywords"`
}

// DefaultAboutPage returns the payload inserted the first time the About
// page is read. Each call assigns fresh sub-item ids.
func DefaultAboutPage() AboutPage {
	now := time.Now().UTC()
	return AboutPage{
		Hero: Hero{
			Title:       "About Our Cooperative",
			Subtitle:    "Saving together, growing together",
			Description: "A member-owned savings and credit cooperative serving local families and businesses.",
		},
		CompanyInfo: CompanyInfo{
			Name:        "Community Savings and Credit Cooperative",
			Founded:     "2005",
			Description: "We provide savings, credit and financial literacy services to our members.",
		},
		Stats: []Stat{
			{ID: primitive.NewObjectID(), Label: "Members", Value: "5,000+", Icon: "users"},
			{ID: primitive.NewObjectID(), Label: "Years of service", Value: "20", Icon: "calendar"},
			{ID: primitive.NewObjectID(), Label: "Branches", Value: "3", Icon: "building"},
		},
		Story: Story{
			Title: "Our Story",
			Paragraphs: []string{
				"The cooperative was founded by a small group of neighbours who pooled their savings.",
				"Today it serves thousands of members with savings and loan products built for them.",
			},
			Contact: ContactInfo{
				Address: "Main Road",
				Phone:   "01-0000000",
				Email:   "info@example.coop",
				Hours:   "Sun-Fri 10:00-17:00",
			},
			Images: []string{},
		},
		Mission:  "To improve the economic wellbeing of our members through savings and affordable credit.",
		Vision:   "A financially included community where every member can grow.",
		Purposes: []string{"Encourage regular saving", "Provide affordable credit", "Promote financial literacy"},
		Values: []Value{
			{ID: primitive.NewObjectID(), Title: "Integrity", Description: "We are honest and transparent with members.", Icon: "shield", Images: []string{}},
			{ID: primitive.NewObjectID(), Title: "Cooperation", Description: "We succeed by working together.", Icon: "handshake", Images: []string{}},
		},
		Milestones: []Milestone{
			{ID: primitive.NewObjectID(), Year: "2005", Event: "Cooperative registered", Icon: "flag", Images: []string{}},
		},
		CommunityImpacts: []CommunityImpact{
			{ID: primitive.NewObjectID(), Title: "Small business loans", Description: "Credit for member-run enterprises.", Metrics: "1,000+ loans", Images: []string{}},
		},
		SEO: SEO{
			MetaTitle:       "About Us",
			MetaDescription: "Learn about our savings and credit cooperative.",
			Keywords:        []string{"cooperative", "savings", "credit"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
