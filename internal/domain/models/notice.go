// internal/domain/models/notice.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notice types.
const (
	NoticeAnnouncement = "announcement"
	NoticeNews         = "news"
	NoticeCircular     = "circular"
)

// Notice statuses.
const (
	NoticeDraft     = "draft"
	NoticePublished = "published"
	NoticeArchived  = "archived"
)

// Notice is a published announcement, news item or circular.
type Notice struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"` // sanitized HTML
	Type      string             `bson:"type" json:"type"`
	Important bool               `bson:"important" json:"important"`
	Status    string             `bson:"status" json:"status"`
	Author    string             `bson:"author,omitempty" json:"author,omitempty"`
	Document  *NoticeDocument    `bson:"document,omitempty" json:"document,omitempty"`

	PublishedAt *time.Time `bson:"published_at,omitempty" json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
}

// NoticeDocument is an attachment reference; uploading the file itself
// happens elsewhere.
type NoticeDocument struct {
	URL  string `bson:"url" json:"url" validate:"required,url"`
	Type string `bson:"type" json:"type" validate:"required,oneof=pdf image doc"`
}
