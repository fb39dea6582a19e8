package entities

import "time"

// Role classifies an account for authorization purposes.
//
// Domain notes:
//   - "enterprise" accounts own ecopoints and act on collection requests.
//   - "admin" accounts manage other accounts.
//   - Authorization is decided by pure checks over (actor, resource), never
//     by subtyping.

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleEnterprise Role = "enterprise"
)

// ValidRole reports whether s is one of the closed set of roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleUser, RoleEnterprise:
		return true
	}
	return false
}

// User is an account persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//   - GSI2 (role-index): role
//
// Password holds the bcrypt hash, never the plaintext. Approved only applies
// to enterprise accounts: they start unapproved until an admin approves them.

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserPatch is the set of fields a self-or-admin update may change. Nil
// fields are left untouched. Password, when present, must already be the
// bcrypt hash. Role is absent on purpose: accounts never change role.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
	Approved *bool
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil && p.Approved == nil
}

// Actor is the authenticated identity attached to a request by the JWT
// middleware. It carries only what the authorization checks need.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the actor may act on any account.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanAccessUser implements the self-or-admin rule shared by the user
// endpoints.
func (a Actor) CanAccessUser(userID string) bool {
	return a.ID == userID || a.IsAdmin()
}
