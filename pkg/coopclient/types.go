package coopclient

import (
	"github.com/dalemusser/coophub/internal/app/system/aboutpage"
	"github.com/dalemusser/coophub/internal/domain/models"
)

// Resource shapes, shared with the server.
type (
	AboutPage          = models.AboutPage
	Value              = models.Value
	Milestone          = models.Milestone
	CommunityImpact    = models.CommunityImpact
	Business           = models.Business
	DirectoryEntry     = models.DirectoryEntry
	BusinessDetail     = models.BusinessDetail
	User               = models.User
	Notice             = models.Notice
	NoticeDocument     = models.NoticeDocument
	SavingScheme       = models.SavingScheme
	LoanScheme         = models.LoanScheme
	AdditionalFacility = models.AdditionalFacility
	TeamMember         = models.TeamMember
)

// About page request bodies.
type (
	AboutPatch     = aboutpage.Patch
	ValueInput     = aboutpage.ValueInput
	ValuePatch     = aboutpage.ValuePatch
	MilestoneInput = aboutpage.MilestoneInput
	MilestonePatch = aboutpage.MilestonePatch
	ImpactInput    = aboutpage.ImpactInput
	ImpactPatch    = aboutpage.ImpactPatch
)

// Page is one window of a paginated search.
type Page[T any] struct {
	Docs  []T   `json:"docs"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

// Session is what register and login return.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
