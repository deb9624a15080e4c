package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"beamtime-api/services"

	"github.com/gin-gonic/gin"
)

// GET /reports/monthly?year=
func GetMonthlyReport(c *gin.Context) {
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "year must be an integer"})
		return
	}

	report, err := services.NewReportService(getDB()).Monthly(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
