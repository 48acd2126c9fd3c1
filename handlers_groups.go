package main

import (
	"net/http"

	"bukukas/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type groupRequest struct {
	Name     string                 `json:"name" binding:"required,max=255"`
	Type     models.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Category *string                `json:"category" binding:"omitempty,oneof=asset operational"`
}

func queryType(c *gin.Context) *models.TransactionType {
	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		return &t
	}
	return nil
}

// listGroupsHandler returns the caller's own groups, optionally filtered
// by type. Groups are always per-user, whatever the role.
func listGroupsHandler(c *gin.Context) {
	user := currentUser(c)
	groups := []models.TransactionGroup{}
	q := db.Where("user_id = ?", user.ID)
	if t := queryType(c); t != nil {
		q = q.Where("type = ?", *t)
	}
	if err := q.Order("id").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": groups})
}

// groupOptionsHandler is the select-box feed for the SPA. A first read
// with no groups seeds the four defaults.
func groupOptionsHandler(c *gin.Context) {
	user := currentUser(c)
	groups, err := groupOptions(user.ID, queryType(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, groups)
}

func createGroupHandler(c *gin.Context) {
	user := currentUser(c)
	var req groupRequest
	if !bindJSON(c, &req) {
		return
	}
	group := models.TransactionGroup{
		UserID:   user.ID,
		Name:     req.Name,
		Type:     req.Type,
		Category: req.Category,
	}
	if err := db.Create(&group).Error; err != nil {
		if isUniqueConstraintError(err) {
			respondFieldError(c, "name", "The name has already been taken.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Transaction group created successfully",
		"data":    group,
	})
}

func findOwnGroup(c *gin.Context) (*models.TransactionGroup, bool) {
	user := currentUser(c)
	var group models.TransactionGroup
	if err := db.Where("user_id = ?", user.ID).First(&group, c.Param("id")).Error; err != nil {
		respondNotFound(c, "transaction group")
		return nil, false
	}
	return &group, true
}

func showGroupHandler(c *gin.Context) {
	group, ok := findOwnGroup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": group})
}

func updateGroupHandler(c *gin.Context) {
	group, ok := findOwnGroup(c)
	if !ok {
		return
	}
	var req groupRequest
	if !bindJSON(c, &req) {
		return
	}
	group.Name = req.Name
	group.Type = req.Type
	group.Category = req.Category
	if err := db.Save(group).Error; err != nil {
		if isUniqueConstraintError(err) {
			respondFieldError(c, "name", "The name has already been taken.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": group})
}

// deleteGroupHandler removes a group and detaches its transactions in the
// same database transaction, so no row is left pointing at a dead group.
func deleteGroupHandler(c *gin.Context) {
	group, ok := findOwnGroup(c)
	if !ok {
		return
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).
			Where("transaction_group_id = ?", group.ID).
			Update("transaction_group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(group).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Transaction group deleted successfully"})
}
