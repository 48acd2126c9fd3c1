package main

import (
	"net/http"

	"bukukas/models"

	"github.com/gin-gonic/gin"
)

// action is an operation gated by role.
type action string

const (
	actionListAllTransactions action = "transactions.list_all"
	actionWriteTransactions   action = "transactions.write"
	actionManageGroups        action = "groups.manage"
	actionManagePayments      action = "payments.manage"
	actionManageUsers         action = "users.manage"
)

// rolePermissions is the single place role checks live. Employee payments
// are finance-only; admin deliberately has no grant there.
var rolePermissions = map[models.Role]map[action]bool{
	models.RoleUser: {
		actionManageGroups: true,
	},
	models.RoleFinance: {
		actionListAllTransactions: true,
		actionWriteTransactions:   true,
		actionManageGroups:        true,
		actionManagePayments:      true,
	},
	models.RoleAdmin: {
		actionListAllTransactions: true,
		actionWriteTransactions:   true,
		actionManageGroups:        true,
		actionManageUsers:         true,
	},
}

func can(role models.Role, a action) bool {
	return rolePermissions[role][a]
}

// canViewTransaction applies the per-row ownership rule: a plain user may
// only view transactions they own.
func canViewTransaction(role models.Role, ownerID, actorID uint) bool {
	if role == models.RoleUser {
		return ownerID == actorID
	}
	return true
}

// requireAction rejects the request with 403 unless the authenticated
// user's role permits the action.
func requireAction(a action) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !can(user.Role, a) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}
