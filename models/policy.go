package models

// Actions gated by role.
const (
	ActionManageOrders   = "orders:manage"
	ActionManageCatalog  = "catalog:manage"
	ActionAssignDelivery = "delivery:assign"
	ActionViewAnalytics  = "analytics:view"
	ActionRetrainML      = "ml:retrain"
	ActionDeliverOrders  = "orders:deliver"
	ActionManageUsers    = "users:manage"
	ActionSyncCatalog    = "catalog:sync"
)

var rolePermissions = map[string]map[string]bool{
	RoleAdmin: {
		ActionManageOrders:   true,
		ActionManageCatalog:  true,
		ActionAssignDelivery: true,
		ActionRetrainML:      true,
		ActionManageUsers:    true,
		ActionSyncCatalog:    true,
	},
	RoleSuperAdmin: {
		ActionManageOrders:   true,
		ActionManageCatalog:  true,
		ActionAssignDelivery: true,
		ActionRetrainML:      true,
		ActionManageUsers:    true,
		ActionSyncCatalog:    true,
		ActionViewAnalytics:  true,
	},
	RoleDelivery: {
		ActionDeliverOrders: true,
	},
}

// Can is the single allow/deny decision for role-gated actions.
func Can(role, action string) bool {
	return rolePermissions[role][action]
}
