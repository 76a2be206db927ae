package store

const (
	accessTokenKey = "access_token"
	adminIDKey     = "admin_id"
	adminNameKey   = "admin_name"
)

// SaveAccessToken records the bearer token returned by login.
func (s *Store) SaveAccessToken(token string) {
	s.save(accessTokenKey, token)
}

// LoadAccessToken returns the stored bearer token, or empty when logged out.
func (s *Store) LoadAccessToken() string {
	token, _ := s.load(accessTokenKey)
	return token
}

// SaveAdmin records the logged-in administrator's identity.
func (s *Store) SaveAdmin(adminID, name string) {
	s.save(adminIDKey, adminID)
	s.save(adminNameKey, name)
}

// LoadAdmin returns the logged-in administrator's id and name.
func (s *Store) LoadAdmin() (adminID, name string) {
	adminID, _ = s.load(adminIDKey)
	name, _ = s.load(adminNameKey)
	return adminID, name
}

// ClearAuth removes every authentication record. Used on logout and on a
// 401/403 response from the API.
func (s *Store) ClearAuth() {
	s.delete(accessTokenKey)
	s.delete(adminIDKey)
	s.delete(adminNameKey)
}
