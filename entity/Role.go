package entity

import "strings"

// Roles are stored mixed-case upstream, so comparisons go through
// NormalizeRole.
const (
	RoleGuest    = "guest"
	RoleCustomer = "customer"
	RoleWaiter   = "waiter"
	RoleChef     = "chef"
	RoleAdmin    = "admin"
)

func NormalizeRole(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	if r == "" {
		return RoleGuest
	}
	return r
}

// IsStaff reports whether the role may see unavailable menu items.
func IsStaff(role string) bool {
	switch NormalizeRole(role) {
	case RoleChef, RoleAdmin:
		return true
	}
	return false
}
