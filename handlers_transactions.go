package main

import (
	"net/http"
	"strconv"

	"bukukas/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// transactionRequest carries the fields finance/admin may set when
// recording a transaction on behalf of a user.
type transactionRequest struct {
	Description        string                 `json:"description" binding:"required,max=255"`
	Type               models.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Amount             *float64               `json:"amount" binding:"required,gte=0"`
	Date               string                 `json:"date" binding:"required"`
	Category           *string                `json:"category" binding:"omitempty,max=100"`
	ExpenseCategory    *string                `json:"expense_category" binding:"omitempty,oneof=asset operational"`
	ExpenseSubcategory *string                `json:"expense_subcategory" binding:"omitempty,max=100"`
	TransactionGroupID *uint                  `json:"transaction_group_id"`
	EmployeePaymentID  *uint                  `json:"employee_payment_id"`
	UserID             *uint                  `json:"user_id"`
	Notes              *string                `json:"notes"`
}

// listScope returns the mandatory ownership scope for plain users, nil
// (all rows) for finance/admin.
func listScope(user *models.User) *uint {
	if can(user.Role, actionListAllTransactions) {
		return nil
	}
	return &user.ID
}

func parseTxFilters(c *gin.Context) txFilters {
	var f txFilters
	if v := c.Query("group_id"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			gid := uint(id)
			f.GroupID = &gid
		}
	}
	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		f.Type = &t
	}
	return f
}

func listTransactionsHandler(c *gin.Context) {
	user := currentUser(c)
	f := parseTxFilters(c)

	var limit *int
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = &n
		}
	}
	page := 1
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	items, meta, err := listTransactions(listScope(user), f, limit, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items, "meta": meta})
}

func transactionStatisticsHandler(c *gin.Context) {
	stats, err := transactionStats(listScope(currentUser(c)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

func createTransactionHandler(c *gin.Context) {
	actor := currentUser(c)
	var req transactionRequest
	if !bindJSON(c, &req) {
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondFieldError(c, "date", "The date is not a valid date.")
		return
	}
	if !validateTransactionRefs(c, &req) {
		return
	}
	ownerID := actor.ID
	if req.UserID != nil {
		ownerID = *req.UserID
	}

	tx := models.Transaction{
		Description:        req.Description,
		Type:               req.Type,
		Amount:             decimal.NewFromFloat(*req.Amount),
		Date:               date,
		Category:           req.Category,
		ExpenseCategory:    req.ExpenseCategory,
		ExpenseSubcategory: req.ExpenseSubcategory,
		TransactionGroupID: req.TransactionGroupID,
		EmployeePaymentID:  req.EmployeePaymentID,
		UserID:             ownerID,
		CreatedBy:          actor.ID,
		Notes:              req.Notes,
	}
	if err := db.Create(&tx).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	db.Preload("User").Preload("Creator").Preload("TransactionGroup").First(&tx, tx.ID)
	c.JSON(http.StatusCreated, tx)
}

// validateTransactionRefs checks that provided foreign keys point at
// real rows before anything is written.
func validateTransactionRefs(c *gin.Context, req *transactionRequest) bool {
	if req.UserID != nil {
		var n int64
		db.Model(&models.User{}).Where("id = ?", *req.UserID).Count(&n)
		if n == 0 {
			respondFieldError(c, "user_id", "The selected user_id is invalid.")
			return false
		}
	}
	if req.TransactionGroupID != nil {
		var n int64
		db.Model(&models.TransactionGroup{}).Where("id = ?", *req.TransactionGroupID).Count(&n)
		if n == 0 {
			respondFieldError(c, "transaction_group_id", "The selected transaction_group_id is invalid.")
			return false
		}
	}
	if req.EmployeePaymentID != nil {
		var n int64
		db.Model(&models.EmployeePayment{}).Where("id = ?", *req.EmployeePaymentID).Count(&n)
		if n == 0 {
			respondFieldError(c, "employee_payment_id", "The selected employee_payment_id is invalid.")
			return false
		}
	}
	return true
}

func showTransactionHandler(c *gin.Context) {
	user := currentUser(c)
	var tx models.Transaction
	if err := db.Preload("User").Preload("Creator").First(&tx, c.Param("id")).Error; err != nil {
		respondNotFound(c, "transaction")
		return
	}
	if !canViewTransaction(user.Role, tx.UserID, user.ID) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, tx)
}

func updateTransactionHandler(c *gin.Context) {
	var tx models.Transaction
	if err := db.First(&tx, c.Param("id")).Error; err != nil {
		respondNotFound(c, "transaction")
		return
	}
	var req struct {
		Description string                 `json:"description" binding:"required,max=255"`
		Type        models.TransactionType `json:"type" binding:"required,oneof=income expense"`
		Amount      *float64               `json:"amount" binding:"required,gte=0"`
		Date        string                 `json:"date" binding:"required"`
		Category    *string                `json:"category" binding:"omitempty,max=100"`
		UserID      *uint                  `json:"user_id"`
		Notes       *string                `json:"notes"`
	}
	if !bindJSON(c, &req) {
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondFieldError(c, "date", "The date is not a valid date.")
		return
	}
	if req.UserID != nil {
		var n int64
		db.Model(&models.User{}).Where("id = ?", *req.UserID).Count(&n)
		if n == 0 {
			respondFieldError(c, "user_id", "The selected user_id is invalid.")
			return
		}
		tx.UserID = *req.UserID
	}
	tx.Description = req.Description
	tx.Type = req.Type
	tx.Amount = decimal.NewFromFloat(*req.Amount)
	tx.Date = date
	tx.Category = req.Category
	tx.Notes = req.Notes
	if err := db.Save(&tx).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	db.Preload("User").Preload("Creator").First(&tx, tx.ID)
	c.JSON(http.StatusOK, tx)
}

func deleteTransactionHandler(c *gin.Context) {
	var tx models.Transaction
	if err := db.First(&tx, c.Param("id")).Error; err != nil {
		respondNotFound(c, "transaction")
		return
	}
	if err := db.Delete(&tx).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
