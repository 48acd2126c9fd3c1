package main

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func setupRoutes(r *gin.Engine) {
	r.POST("/login", loginHandler)

	authGroup := r.Group("")
	authGroup.Use(authMiddleware())
	authGroup.POST("/logout", logoutHandler)
	authGroup.GET("/user", userHandler)

	authGroup.GET("/dashboard/stats", dashboardStatsHandler)

	authGroup.GET("/transactions", listTransactionsHandler)
	authGroup.GET("/transactions/statistics", transactionStatisticsHandler)
	authGroup.POST("/transactions", requireAction(actionWriteTransactions), createTransactionHandler)
	authGroup.GET("/transactions/:id", showTransactionHandler)
	authGroup.PUT("/transactions/:id", requireAction(actionWriteTransactions), updateTransactionHandler)
	authGroup.DELETE("/transactions/:id", requireAction(actionWriteTransactions), deleteTransactionHandler)

	authGroup.GET("/transaction-groups", listGroupsHandler)
	authGroup.GET("/transaction-groups/options", groupOptionsHandler)
	authGroup.POST("/transaction-groups", createGroupHandler)
	authGroup.GET("/transaction-groups/:id", showGroupHandler)
	authGroup.PUT("/transaction-groups/:id", updateGroupHandler)
	authGroup.DELETE("/transaction-groups/:id", deleteGroupHandler)

	// Employee payments (finance only)
	payments := authGroup.Group("/employee-payments", requireAction(actionManagePayments))
	payments.GET("/employees", listEmployeesHandler)
	payments.GET("", listPaymentsHandler)
	payments.POST("", createPaymentHandler)
	payments.GET("/:id", showPaymentHandler)
	payments.PUT("/:id", updatePaymentHandler)
	payments.DELETE("/:id", deletePaymentHandler)
	payments.POST("/:id/approve", approvePaymentHandler)

	// Users (admin only)
	users := authGroup.Group("/users", requireAction(actionManageUsers))
	users.GET("", listUsersHandler)
	users.POST("", createUserHandler)
	users.GET("/:id", showUserHandler)
	users.PUT("/:id", updateUserHandler)
	users.DELETE("/:id", deleteUserHandler)
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
}

func respondNotFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"message": what + " not found"})
}

// respondFieldError emits a single-field 422 in the same shape as full
// validation failures. Also used for bad credentials so the response
// never reveals which of email/password was wrong.
func respondFieldError(c *gin.Context, field, msg string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": msg,
		"errors":  map[string][]string{field: {msg}},
	})
}

// bindJSON binds the request body into req and, on failure, writes a 422
// with per-field messages. Returns false when the request was rejected.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := map[string][]string{}
		for _, fe := range verrs {
			f := snakeCase(fe.Field())
			fields[f] = append(fields[f], validationMessage(f, fe))
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "The given data was invalid.",
			"errors":  fields,
		})
		return false
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
	return false
}

func validationMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "The " + field + " field is required."
	case "email":
		return "The " + field + " must be a valid email address."
	case "gte", "min":
		return "The " + field + " must be at least " + fe.Param() + "."
	case "max":
		return "The " + field + " may not be greater than " + fe.Param() + "."
	case "oneof":
		return "The selected " + field + " is invalid."
	default:
		return "The " + field + " is invalid."
	}
}

// snakeCase turns a struct field name into its json form, keeping
// initialisms together (EmployeeID -> employee_id).
func snakeCase(s string) string {
	rs := []rune(s)
	var b strings.Builder
	for i, r := range rs {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(rs[i-1])
			nextLower := i+1 < len(rs) && !unicode.IsUpper(rs[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// parseDate accepts the SPA's plain date input as well as full timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// isUniqueConstraintError sniffs driver-specific duplicate-key failures
// (Postgres in production, SQLite in tests).
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "already exists")
}
