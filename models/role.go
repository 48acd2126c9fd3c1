package models

// Role is the access level stored on a user record.
type Role string

const (
	RoleUser    Role = "user"
	RoleFinance Role = "finance"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleFinance, RoleAdmin:
		return true
	}
	return false
}
