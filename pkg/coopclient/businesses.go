package coopclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (p SearchParams) values() url.Values {
	q := url.Values{}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Location != "" {
		q.Set("location", p.Location)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// Businesses lists every business, any status, newest first. Page and
// Limit are ignored.
func (c *Client) Businesses(ctx context.Context, p SearchParams) ([]Business, error) {
	var out []Business
	if err := c.get(ctx, "/api/businesses", p.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Directory lists active businesses without contact details.
func (c *Client) Directory(ctx context.Context, p SearchParams) ([]DirectoryEntry, error) {
	var out []DirectoryEntry
	if err := c.get(ctx, "/api/businesses/directory", p.values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchBusinesses returns one page of active businesses.
func (c *Client) SearchBusinesses(ctx context.Context, p SearchParams) (*Page[DirectoryEntry], error) {
	var pg Page[DirectoryEntry]
	if err := c.get(ctx, "/api/businesses/search", p.values(), &pg); err != nil {
		return nil, err
	}
	return &pg, nil
}

// Categories lists the directory categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/api/businesses/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBusiness fetches a business by id.
func (c *Client) GetBusiness(ctx context.Context, id string) (*Business, error) {
	var b Business
	if err := c.get(ctx, "/api/businesses/"+url.PathEscape(id), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBusinessBySlug fetches a business by its slug.
func (c *Client) GetBusinessBySlug(ctx context.Context, slug string) (*Business, error) {
	var b Business
	if err := c.get(ctx, "/api/businesses/slug/"+url.PathEscape(slug), nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBusiness adds a business to the directory.
func (c *Client) CreateBusiness(ctx context.Context, in BusinessInput) (*Business, error) {
	var b Business
	if err := c.send(ctx, http.MethodPost, "/api/businesses", in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBusiness changes the given fields of a business.
func (c *Client) UpdateBusiness(ctx context.Context, id string, fields Fields) (*Business, error) {
	var b Business
	if err := c.send(ctx, http.MethodPut, "/api/businesses/"+url.PathEscape(id), fields, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBusiness removes a business.
func (c *Client) DeleteBusiness(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/businesses/"+url.PathEscape(id), nil, nil)
}

// BusinessDetails lists active member business profiles.
func (c *Client) BusinessDetails(ctx context.Context) ([]BusinessDetail, error) {
	var out []BusinessDetail
	if err := c.get(ctx, "/api/business-details", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyBusinessDetails lists the signed-in member's profiles.
func (c *Client) MyBusinessDetails(ctx context.Context) ([]BusinessDetail, error) {
	var out []BusinessDetail
	if err := c.get(ctx, "/api/business-details/mine", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBusinessDetail fetches one profile.
func (c *Client) GetBusinessDetail(ctx context.Context, id string) (*BusinessDetail, error) {
	var d BusinessDetail
	if err := c.get(ctx, "/api/business-details/"+url.PathEscape(id), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateBusinessDetail creates a profile owned by the signed-in member.
func (c *Client) CreateBusinessDetail(ctx context.Context, in BusinessDetailInput) (*BusinessDetail, error) {
	var d BusinessDetail
	if err := c.send(ctx, http.MethodPost, "/api/business-details", in, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateBusinessDetail changes the given fields of a profile the caller owns.
func (c *Client) UpdateBusinessDetail(ctx context.Context, id string, fields Fields) (*BusinessDetail, error) {
	var d BusinessDetail
	if err := c.send(ctx, http.MethodPut, "/api/business-details/"+url.PathEscape(id), fields, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DeleteBusinessDetail removes a profile the caller owns.
func (c *Client) DeleteBusinessDetail(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/business-details/"+url.PathEscape(id), nil, nil)
}
