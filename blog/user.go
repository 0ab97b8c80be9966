package blog

import "time"

// Role determines which editor operations a user may perform.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWriter Role = "writer"
	RoleViewer Role = "viewer"
)

// User is the demo editor identity. There is a single built-in admin;
// anonymous visitors get a zero-value user.
type User struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Role      Role       `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// AnonymousUser returns the identity attached to unauthenticated
// requests.
func AnonymousUser() *User {
	return &User{}
}

// IsAnonymous reports whether the user is unauthenticated.
func (u *User) IsAnonymous() bool {
	return u == nil || u.ID == ""
}

// CanPublish reports whether the user may publish or delete articles.
func (u *User) CanPublish() bool {
	return !u.IsAnonymous() && u.Role == RoleAdmin
}

// CanEdit reports whether the user may create or edit articles.
func (u *User) CanEdit() bool {
	return !u.IsAnonymous() && (u.Role == RoleAdmin || u.Role == RoleWriter)
}
