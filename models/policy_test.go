package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAdmin(t *testing.T) {
	assert.True(t, Can(RoleAdmin, ActionManageOrders))
	assert.True(t, Can(RoleAdmin, ActionManageCatalog))
	assert.True(t, Can(RoleAdmin, ActionAssignDelivery))
	assert.True(t, Can(RoleAdmin, ActionManageUsers))
	assert.True(t, Can(RoleAdmin, ActionSyncCatalog))
	assert.True(t, Can(RoleAdmin, ActionRetrainML))

	// Analytics stays superadmin-only.
	assert.False(t, Can(RoleAdmin, ActionViewAnalytics))
	assert.False(t, Can(RoleAdmin, ActionDeliverOrders))
}

func TestCanSuperAdminCoversAdmin(t *testing.T) {
	adminActions := []string{
		ActionManageOrders,
		ActionManageCatalog,
		ActionAssignDelivery,
		ActionManageUsers,
		ActionSyncCatalog,
		ActionRetrainML,
	}
	for _, action := range adminActions {
		assert.True(t, Can(RoleSuperAdmin, action), action)
	}
	assert.True(t, Can(RoleSuperAdmin, ActionViewAnalytics))
}

func TestCanDelivery(t *testing.T) {
	assert.True(t, Can(RoleDelivery, ActionDeliverOrders))
	assert.False(t, Can(RoleDelivery, ActionManageOrders))
	assert.False(t, Can(RoleDelivery, ActionViewAnalytics))
}

func TestCanRegularUserAndUnknowns(t *testing.T) {
	assert.False(t, Can(RoleUser, ActionManageOrders))
	assert.False(t, Can(RoleUser, ActionDeliverOrders))
	assert.False(t, Can("", ActionManageOrders))
	assert.False(t, Can("ghost", ActionManageOrders))
	assert.False(t, Can(RoleAdmin, "not-an-action"))
}
