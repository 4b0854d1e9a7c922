package coopclient

import (
	"context"
	"net/http"
	"net/url"
)

// Notices lists published notices, important first.
func (c *Client) Notices(ctx context.Context, f NoticeFilter) ([]Notice, error) {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.ImportantOnly {
		q.Set("important", "true")
	}
	var out []Notice
	if err := c.get(ctx, "/api/notices", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AllNotices lists notices in every status.
func (c *Client) AllNotices(ctx context.Context) ([]Notice, error) {
	var out []Notice
	if err := c.get(ctx, "/api/notices/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetNotice fetches one notice.
func (c *Client) GetNotice(ctx context.Context, id string) (*Notice, error) {
	var n Notice
	if err := c.get(ctx, "/api/notices/"+url.PathEscape(id), nil, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// CreateNotice posts a notice.
func (c *Client) CreateNotice(ctx context.Context, in NoticeInput) (*Notice, error) {
	var n Notice
	if err := c.send(ctx, http.MethodPost, "/api/notices", in, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// UpdateNotice changes the given fields. Use {"removeDocument": true} to
// detach the document.
func (c *Client) UpdateNotice(ctx context.Context, id string, fields Fields) (*Notice, error) {
	var n Notice
	if err := c.send(ctx, http.MethodPut, "/api/notices/"+url.PathEscape(id), fields, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// DeleteNotice removes a notice.
func (c *Client) DeleteNotice(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/notices/"+url.PathEscape(id), nil, nil)
}
