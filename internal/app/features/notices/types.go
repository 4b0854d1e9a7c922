package notices

import (
	"strings"

	noticestore "github.com/dalemusser/coophub/internal/app/store/notices"
	"github.com/dalemusser/coophub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coophub/internal/domain/models"
)

type noticeInput struct {
	Title     string                 `json:"title" validate:"required,max=200"`
	Content   string                 `json:"content" validate:"required"`
	Type      string                 `json:"type" validate:"omitempty,oneof=announcement news circular"`
	Important bool                   `json:"important"`
	Status    string                 `json:"status" validate:"omitempty,oneof=draft published archived"`
	Author    string                 `json:"author" validate:"max=100"`
	Document  *models.NoticeDocument `json:"document"`
}

// model returns the notice with title stripped and content sanitized.
func (in noticeInput) model() models.Notice {
	return models.Notice{
		Title:     htmlsanitize.StripTags(in.Title),
		Content:   htmlsanitize.Sanitize(in.Content),
		Type:      in.Type,
		Important: in.Important,
		Status:    in.Status,
		Author:    strings.TrimSpace(in.Author),
		Document:  in.Document,
	}
}

// noticePatch leaves nil fields unchanged. "document": null is
// indistinguishable from absent, so removal uses removeDocument.
type noticePatch struct {
	Title          *string                `json:"title" validate:"omitempty,min=1,max=200"`
	Content        *string                `json:"content"`
	Type           *string                `json:"type" validate:"omitempty,oneof=announcement news circular"`
	Important      *bool                  `json:"important"`
	Status         *string                `json:"status" validate:"omitempty,oneof=draft published archived"`
	Author         *string                `json:"author" validate:"omitempty,max=100"`
	Document       *models.NoticeDocument `json:"document"`
	RemoveDocument bool                   `json:"removeDocument"`
}

func (p noticePatch) update() noticestore.Update {
	upd := noticestore.Update{
		Type:          p.Type,
		Important:     p.Important,
		Status:        p.Status,
		Author:        p.Author,
		Document:      p.Document,
		ClearDocument: p.RemoveDocument,
	}
	if p.Title != nil {
		t := htmlsanitize.StripTags(*p.Title)
		upd.Title = &t
	}
	if p.Content != nil {
		c := htmlsanitize.Sanitize(*p.Content)
		upd.Content = &c
	}
	return upd
}
