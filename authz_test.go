package main

import (
	"testing"

	"bukukas/models"

	"github.com/stretchr/testify/assert"
)

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role   models.Role
		action action
		want   bool
	}{
		{models.RoleUser, actionListAllTransactions, false},
		{models.RoleUser, actionWriteTransactions, false},
		{models.RoleUser, actionManageGroups, true},
		{models.RoleUser, actionManagePayments, false},
		{models.RoleUser, actionManageUsers, false},

		{models.RoleFinance, actionListAllTransactions, true},
		{models.RoleFinance, actionWriteTransactions, true},
		{models.RoleFinance, actionManageGroups, true},
		{models.RoleFinance, actionManagePayments, true},
		{models.RoleFinance, actionManageUsers, false},

		{models.RoleAdmin, actionListAllTransactions, true},
		{models.RoleAdmin, actionWriteTransactions, true},
		{models.RoleAdmin, actionManageGroups, true},
		// Employee payments stay finance-only.
		{models.RoleAdmin, actionManagePayments, false},
		{models.RoleAdmin, actionManageUsers, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, can(tt.role, tt.action), "%s / %s", tt.role, tt.action)
	}
}

func TestCanViewTransaction(t *testing.T) {
	assert.True(t, canViewTransaction(models.RoleUser, 7, 7))
	assert.False(t, canViewTransaction(models.RoleUser, 7, 8))
	assert.True(t, canViewTransaction(models.RoleFinance, 7, 8))
	assert.True(t, canViewTransaction(models.RoleAdmin, 7, 8))
}

func TestUnknownRoleHasNoPermissions(t *testing.T) {
	for _, a := range []action{actionListAllTransactions, actionWriteTransactions, actionManageGroups, actionManagePayments, actionManageUsers} {
		assert.False(t, can(models.Role("guest"), a))
	}
}
