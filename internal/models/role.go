package models

type Role string

const (
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

// Valid reports whether r is one of the known workspace roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleMember:
		return true
	default:
		return false
	}
}
