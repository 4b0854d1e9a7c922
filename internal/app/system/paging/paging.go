// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLimit is the page size used when the caller does not send one.
const DefaultLimit = 10

// MaxLimit is the default ceiling for limit; callers may pass a different
// ceiling from configuration.
const MaxLimit = 50

// MaxPage bounds the page number so the skip offset cannot overflow.
const MaxPage = 100000

// Params is a clamped page/limit pair. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// Clamp normalizes page and limit: page < 1 becomes 1, page > MaxPage
// becomes MaxPage, limit < 1 becomes DefaultLimit, limit > maxLimit becomes
// maxLimit. A maxLimit < 1 means MaxLimit.
func Clamp(page, limit, maxLimit int) Params {
	if maxLimit < 1 {
		maxLimit = MaxLimit
	}
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Parse reads the "page" and "limit" query parameters and clamps them.
func Parse(r *http.Request, maxLimit int) Params {
	return Clamp(atoi(query.Get(r, "page")), atoi(query.Get(r, "limit")), maxLimit)
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Skip is the number of documents before this page.
func (p Params) Skip() int64 { return int64(p.Page-1) * int64(p.Limit) }

// ApplyToFind sets skip and limit on find.
func (p Params) ApplyToFind(find *options.FindOptions) *options.FindOptions {
	return find.SetSkip(p.Skip()).SetLimit(int64(p.Limit))
}

// Pages is ceil(total/limit); zero results give zero pages.
func Pages(total int64, limit int) int {
	if limit < 1 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Page is the paginated response body.
type Page[T any] struct {
	Docs  []T   `json:"docs"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

// NewPage assembles a Page from one window of docs and the total count.
func NewPage[T any](docs []T, total int64, p Params) Page[T] {
	if docs == nil {
		docs = []T{}
	}
	return Page[T]{
		Docs:  docs,
		Total: total,
		Page:  p.Page,
		Pages: Pages(total, p.Limit),
		Limit: p.Limit,
	}
}

// Map converts the docs of a page, keeping the counters.
func Map[T, U any](pg Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(pg.Docs))
	for i, d := range pg.Docs {
		out[i] = fn(d)
	}
	return Page[U]{Docs: out, Total: pg.Total, Page: pg.Page, Pages: pg.Pages, Limit: pg.Limit}
}
