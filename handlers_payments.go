package main

import (
	"net/http"

	"bukukas/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type paymentRequest struct {
	EmployeeID  *uint    `json:"employee_id" binding:"required"`
	Amount      *float64 `json:"amount" binding:"required,gte=0"`
	Description string   `json:"description" binding:"omitempty,max=255"`
	PaymentDate string   `json:"payment_date" binding:"required"`
}

// listEmployeesHandler feeds the employee picker: plain-role users only.
func listEmployeesHandler(c *gin.Context) {
	employees := []models.User{}
	if err := db.Where("role = ?", models.RoleUser).Order("id").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": employees})
}

func listPaymentsHandler(c *gin.Context) {
	payments := []models.EmployeePayment{}
	if err := db.Preload("Employee").Order("created_at DESC, id DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": payments})
}

func createPaymentHandler(c *gin.Context) {
	var req paymentRequest
	if !bindJSON(c, &req) {
		return
	}
	date, err := parseDate(req.PaymentDate)
	if err != nil {
		respondFieldError(c, "payment_date", "The payment_date is not a valid date.")
		return
	}
	var n int64
	db.Model(&models.User{}).Where("id = ?", *req.EmployeeID).Count(&n)
	if n == 0 {
		respondFieldError(c, "employee_id", "The selected employee_id is invalid.")
		return
	}
	payment := models.EmployeePayment{
		EmployeeID:  *req.EmployeeID,
		Amount:      decimal.NewFromFloat(*req.Amount),
		Description: req.Description,
		Status:      models.PaymentStatusPending,
		PaymentDate: date,
	}
	if err := db.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": payment})
}

func findPayment(c *gin.Context) (*models.EmployeePayment, bool) {
	var payment models.EmployeePayment
	if err := db.First(&payment, c.Param("id")).Error; err != nil {
		respondNotFound(c, "employee payment")
		return nil, false
	}
	return &payment, true
}

func showPaymentHandler(c *gin.Context) {
	payment, ok := findPayment(c)
	if !ok {
		return
	}
	db.Preload("Employee").First(payment, payment.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": payment})
}

func updatePaymentHandler(c *gin.Context) {
	payment, ok := findPayment(c)
	if !ok {
		return
	}
	var req paymentRequest
	if !bindJSON(c, &req) {
		return
	}
	date, err := parseDate(req.PaymentDate)
	if err != nil {
		respondFieldError(c, "payment_date", "The payment_date is not a valid date.")
		return
	}
	payment.EmployeeID = *req.EmployeeID
	payment.Amount = decimal.NewFromFloat(*req.Amount)
	payment.Description = req.Description
	payment.PaymentDate = date
	if err := db.Save(payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": payment})
}

func deletePaymentHandler(c *gin.Context) {
	payment, ok := findPayment(c)
	if !ok {
		return
	}
	if err := db.Delete(payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Employee payment deleted successfully"})
}

func approvePaymentHandler(c *gin.Context) {
	payment, ok := findPayment(c)
	if !ok {
		return
	}
	payment.Status = models.PaymentStatusApproved
	if err := db.Save(payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "approve failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": payment})
}
