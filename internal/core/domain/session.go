package domain

import "time"

// Session pairs an authenticated user with the bearer token the backend
// issued, plus the session's cart snapshot. User and Token are always set
// together — there is no partial session. A session disappears as a whole
// on logout or expiry.
type Session struct {
	ID        string     `json:"id"`
	User      *User      `json:"user,omitempty"`
	Token     string     `json:"token,omitempty"`
	Cart      []CartItem `json:"cart"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Authenticated reports whether the session carries a full identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil && s.Token != ""
}

// Expired reports whether the session has passed its deadline.
func (s *Session) Expired(now time.Time) bool {
	return s != nil && !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
