package entity

// Role is the canonical role class of a user. Resolved once per request by
// the auth middleware; never compared by free-text group names.
type Role string

const (
	RoleCustomer     Role = "customer"
	RoleDeliveryCrew Role = "delivery_crew"
	RoleManager      Role = "manager"
	RoleAdmin        Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleDeliveryCrew, RoleManager, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// IsManagerial reports whether the role may perform manager actions.
// Admin is manager-equivalent everywhere a manager is allowed.
func (r Role) IsManagerial() bool {
	return r == RoleManager || r == RoleAdmin
}
