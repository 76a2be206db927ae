package api

import (
	"context"
	"net/http"
)

// Admin is an administrator account.
type Admin struct {
	AdminID     string `json:"admin_id"`
	Username    string `json:"username"`
	Name        string `json:"name"`
	CreatedAt   string `json:"created_at,omitempty"`
	LastLoginAt string `json:"last_login_at,omitempty"`
}

// LoginData is returned by a successful login.
type LoginData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login authenticates and stores the returned bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginData, error) {
	body := map[string]string{"username": username, "password": password}
	data := &LoginData{}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, data); err != nil {
		return nil, err
	}
	c.store.SaveAccessToken(data.AccessToken)
	return data, nil
}

// Me returns the logged-in administrator and records their identity.
func (c *Client) Me(ctx context.Context) (*Admin, error) {
	admin := &Admin{}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, admin); err != nil {
		return nil, err
	}
	c.store.SaveAdmin(admin.AdminID, admin.Name)
	return admin, nil
}

// ChangePassword replaces the logged-in administrator's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	return c.do(ctx, http.MethodPatch, "/auth/me/password", body, nil)
}

// UsernameCandidate is a masked username match for account recovery.
type UsernameCandidate struct {
	UsernameMasked string `json:"username_masked"`
}

// FindUsername looks up masked usernames registered under a name.
func (c *Client) FindUsername(ctx context.Context, name string) ([]UsernameCandidate, error) {
	data := &struct {
		Candidates []UsernameCandidate `json:"candidates"`
	}{}
	if err := c.do(ctx, http.MethodPost, "/auth/find-username", map[string]string{"name": name}, data); err != nil {
		return nil, err
	}
	return data.Candidates, nil
}

// ResetPassword issues a temporary password for an account.
func (c *Client) ResetPassword(ctx context.Context, username, name string) (string, error) {
	body := map[string]string{"username": username, "name": name}
	data := &struct {
		TempPassword string `json:"temp_password"`
	}{}
	if err := c.do(ctx, http.MethodPost, "/auth/reset-password", body, data); err != nil {
		return "", err
	}
	return data.TempPassword, nil
}

// Logout discards the stored credentials. The platform keeps no server-side
// session, so this is purely local.
func (c *Client) Logout() {
	c.store.ClearAuth()
}
