package authz

import (
	"github.com/YibestBelay/shegaCafe/entity"
)

// Action is anything the policy gates.
type Action int

const (
	ActionToggleMenuAvailability Action = iota
	ActionManageMenu
	ActionListUsers
	ActionManageUsers
	ActionReadOrders
	ActionCreateOrder
	ActionUpdateOrderStatus
	ActionUpdatePaymentStatus
	ActionClearCompletedOrders
	ActionDeleteOrder
	ActionExportReports
)

var allowed = map[Action]map[string]bool{
	ActionToggleMenuAvailability: {entity.RoleChef: true, entity.RoleAdmin: true},
	ActionManageMenu:             {entity.RoleChef: true, entity.RoleAdmin: true},
	ActionListUsers:              {entity.RoleAdmin: true},
	ActionManageUsers:            {entity.RoleAdmin: true},
	ActionCreateOrder: {
		entity.RoleGuest:    true,
		entity.RoleCustomer: true,
		entity.RoleWaiter:   true,
	},
	ActionUpdateOrderStatus: {
		entity.RoleWaiter: true,
		entity.RoleChef:   true,
		entity.RoleAdmin:  true,
	},
	ActionUpdatePaymentStatus: {entity.RoleWaiter: true, entity.RoleAdmin: true},
	ActionClearCompletedOrders: {entity.RoleAdmin: true},
	ActionDeleteOrder:          {entity.RoleAdmin: true},
	ActionExportReports:        {entity.RoleAdmin: true},
}

// Allowed reports whether role may perform action. Role comparison is
// case-insensitive; an empty role is a guest. Reading orders has no gate.
func Allowed(role string, action Action) bool {
	if action == ActionReadOrders {
		return true
	}
	return allowed[action][entity.NormalizeRole(role)]
}
