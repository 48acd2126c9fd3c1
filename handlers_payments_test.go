package main

import (
	"fmt"
	"net/http"
	"testing"

	"bukukas/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Employee payments are finance-only; notably even admin is shut out.
func TestEmployeePaymentsFinanceOnly(t *testing.T) {
	r := setupTestServer(t)
	admin := createTestUser(t, "Admin", "admin@example.com", models.RoleAdmin)
	budi := createTestUser(t, "Budi", "budi@example.com", models.RoleUser)

	for _, token := range []string{tokenFor(t, admin), tokenFor(t, budi)} {
		assert.Equal(t, http.StatusForbidden, performRequest(r, http.MethodGet, "/employee-payments", nil, token).Code)
		assert.Equal(t, http.StatusForbidden, performRequest(r, http.MethodGet, "/employee-payments/employees", nil, token).Code)
	}
}

func TestEmployeePaymentFlow(t *testing.T) {
	r := setupTestServer(t)
	finance := createTestUser(t, "Finance", "finance@example.com", models.RoleFinance)
	budi := createTestUser(t, "Budi", "budi@example.com", models.RoleUser)
	token := tokenFor(t, finance)

	// employee picker lists plain users only
	var employees struct {
		Data []models.User `json:"data"`
	}
	rec := performRequest(r, http.MethodGet, "/employee-payments/employees", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &employees)
	require.Len(t, employees.Data, 1)
	assert.Equal(t, budi.ID, employees.Data[0].ID)

	rec = performRequest(r, http.MethodPost, "/employee-payments",
		jsonBody(t, map[string]any{"employee_id": budi.ID, "amount": 2500000, "description": "Gaji Agustus", "payment_date": "2025-08-25"}), token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		Data models.EmployeePayment `json:"data"`
	}
	decodeBody(t, rec, &created)
	assert.Equal(t, models.PaymentStatusPending, created.Data.Status)
	assert.True(t, created.Data.Amount.Equal(decimal.NewFromInt(2500000)))

	rec = performRequest(r, http.MethodPost, fmt.Sprintf("/employee-payments/%d/approve", created.Data.ID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var approved struct {
		Data models.EmployeePayment `json:"data"`
	}
	decodeBody(t, rec, &approved)
	assert.Equal(t, models.PaymentStatusApproved, approved.Data.Status)

	// an unknown employee is a validation error
	rec = performRequest(r, http.MethodPost, "/employee-payments",
		jsonBody(t, map[string]any{"employee_id": 9999, "amount": 100, "payment_date": "2025-08-25"}), token)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
