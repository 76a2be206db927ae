package api

import (
	"context"
	"net/http"
)

// ListAdmins returns every administrator account.
func (c *Client) ListAdmins(ctx context.Context) ([]Admin, error) {
	data := &struct {
		Admins []Admin `json:"admins"`
	}{}
	if err := c.do(ctx, http.MethodGet, "/admin", nil, data); err != nil {
		return nil, err
	}
	return data.Admins, nil
}

// GetAdmin returns one administrator account.
func (c *Client) GetAdmin(ctx context.Context, adminID string) (*Admin, error) {
	admin := &Admin{}
	if err := c.do(ctx, http.MethodGet, "/admin/"+adminID, nil, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// DeleteAdmin expels an administrator account.
func (c *Client) DeleteAdmin(ctx context.Context, adminID string) error {
	return c.do(ctx, http.MethodDelete, "/admin/"+adminID, nil, nil)
}
