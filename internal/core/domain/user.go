package domain

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User is the shopper (or administrator) behind a session. The backend
// issues the identity; this service only mirrors it.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// IsAdmin reports whether the user may reach the admin surface.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
