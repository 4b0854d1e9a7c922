package coopclient

import (
	"context"
	"net/http"
)

// Register creates a member account. The returned session carries a token
// usable with WithToken.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	var s Session
	if err := c.send(ctx, http.MethodPost, "/api/auth/register", in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Login signs in with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	var s Session
	if err := c.send(ctx, http.MethodPost, "/api/auth/login", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Me returns the signed-in member.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.get(ctx, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateMe changes the signed-in member's businessName and/or phone.
func (c *Client) UpdateMe(ctx context.Context, fields Fields) (*User, error) {
	var u User
	if err := c.send(ctx, http.MethodPut, "/api/auth/me", fields, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
