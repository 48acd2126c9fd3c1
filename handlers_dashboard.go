package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// dashboardStatsHandler serves the landing-page totals, scoped the same
// way as the transaction list.
func dashboardStatsHandler(c *gin.Context) {
	stats, err := transactionStats(listScope(currentUser(c)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
