package coopclient

import (
	"context"
	"net/http"
	"net/url"
)

// Catalog addresses one ordered, toggleable collection such as the team
// or a service scheme list.
type Catalog[T any] struct {
	c    *Client
	path string
}

// Team is the team-member catalog.
func (c *Client) Team() Catalog[TeamMember] { return Catalog[TeamMember]{c, "/api/team"} }

// SavingSchemes is the savings scheme catalog.
func (c *Client) SavingSchemes() Catalog[SavingScheme] {
	return Catalog[SavingScheme]{c, "/api/services/savings"}
}

// LoanSchemes is the loan scheme catalog.
func (c *Client) LoanSchemes() Catalog[LoanScheme] {
	return Catalog[LoanScheme]{c, "/api/services/loans"}
}

// Facilities is the additional facility catalog.
func (c *Client) Facilities() Catalog[AdditionalFacility] {
	return Catalog[AdditionalFacility]{c, "/api/services/facilities"}
}

// ServicesOverview holds the active entries of all three service catalogs.
type ServicesOverview struct {
	SavingSchemes        []SavingScheme       `json:"savingSchemes"`
	LoanSchemes          []LoanScheme         `json:"loanSchemes"`
	AdditionalFacilities []AdditionalFacility `json:"additionalFacilities"`
}

// Services returns every active service catalog entry in one call.
func (c *Client) Services(ctx context.Context) (*ServicesOverview, error) {
	var out ServicesOverview
	if err := c.get(ctx, "/api/services", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (k Catalog[T]) item(id string) string { return k.path + "/" + url.PathEscape(id) }

// Active lists active entries by display order.
func (k Catalog[T]) Active(ctx context.Context) ([]T, error) {
	var out []T
	if err := k.c.get(ctx, k.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// All lists every entry, active or not.
func (k Catalog[T]) All(ctx context.Context) ([]T, error) {
	var out []T
	if err := k.c.get(ctx, k.path+"/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (k Catalog[T]) Get(ctx context.Context, id string) (*T, error) {
	var v T
	if err := k.c.get(ctx, k.item(id), nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (k Catalog[T]) Create(ctx context.Context, entry T) (*T, error) {
	var v T
	if err := k.c.send(ctx, http.MethodPost, k.path, entry, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Update merges fields onto the stored entry.
func (k Catalog[T]) Update(ctx context.Context, id string, fields Fields) (*T, error) {
	var v T
	if err := k.c.send(ctx, http.MethodPut, k.item(id), fields, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Toggle flips the entry's active flag.
func (k Catalog[T]) Toggle(ctx context.Context, id string) (*T, error) {
	var v T
	if err := k.c.send(ctx, http.MethodPatch, k.item(id)+"/toggle", nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (k Catalog[T]) Delete(ctx context.Context, id string) error {
	return k.c.send(ctx, http.MethodDelete, k.item(id), nil, nil)
}
