package api

import (
	"context"
	"net/http"
	"net/url"
)

// Signup is a pending administrator signup request.
type Signup struct {
	SignupID  string `json:"signup_id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	Details   string `json:"details,omitempty"`
}

// RequestSignup submits a new signup request for review.
func (c *Client) RequestSignup(ctx context.Context, username, password, name string) (*Signup, error) {
	body := map[string]string{"username": username, "password": password, "name": name}
	signup := &Signup{}
	if err := c.do(ctx, http.MethodPost, "/signup", body, signup); err != nil {
		return nil, err
	}
	return signup, nil
}

// UsernameAvailability reports whether a username can still be claimed.
type UsernameAvailability struct {
	Username    string `json:"username"`
	IsAvailable bool   `json:"is_available"`
	Message     string `json:"message"`
}

// CheckUsername checks a username for availability.
func (c *Client) CheckUsername(ctx context.Context, username string) (*UsernameAvailability, error) {
	path := "/signup/check-username?username=" + url.QueryEscape(username)
	availability := &UsernameAvailability{}
	if err := c.do(ctx, http.MethodGet, path, nil, availability); err != nil {
		return nil, err
	}
	return availability, nil
}

// ListSignups returns all pending signup requests.
func (c *Client) ListSignups(ctx context.Context) ([]Signup, error) {
	data := &struct {
		Signups []Signup `json:"signups"`
	}{}
	if err := c.do(ctx, http.MethodGet, "/signup", nil, data); err != nil {
		return nil, err
	}
	return data.Signups, nil
}

// GetSignup returns one signup request.
func (c *Client) GetSignup(ctx context.Context, signupID string) (*Signup, error) {
	signup := &Signup{}
	if err := c.do(ctx, http.MethodGet, "/signup/"+signupID, nil, signup); err != nil {
		return nil, err
	}
	return signup, nil
}

// ApproveSignup turns a signup request into an administrator account.
func (c *Client) ApproveSignup(ctx context.Context, signupID string) error {
	return c.do(ctx, http.MethodPost, "/signup/"+signupID+"/approve", nil, nil)
}

// RejectSignup discards a signup request.
func (c *Client) RejectSignup(ctx context.Context, signupID string) error {
	return c.do(ctx, http.MethodPost, "/signup/"+signupID+"/reject", nil, nil)
}
