package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"beamtime-api/config"
	"beamtime-api/middleware"
	"beamtime-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func getDB() *gorm.DB {
	return config.DB
}

// statusFor maps a service error kind onto its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		config.Log.WithError(err).
			WithField("request_id", middleware.GetRequestID(c)).
			WithField("path", c.FullPath()).
			Error("Unhandled error")
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}

func parseID(raw, name string) (uint, error) {
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return uint(n), nil
}

// pathID reads the :id route parameter and answers 422 when it is malformed.
func pathID(c *gin.Context) (uint, bool) {
	id, err := parseID(c.Param("id"), "id")
	if err != nil {
		respondBindingError(c, err)
		return 0, false
	}
	return id, true
}

// queryID reads a required numeric query parameter such as pi_id.
func queryID(c *gin.Context, name string) (uint, bool) {
	id, err := parseID(c.Query(name), name)
	if err != nil {
		respondBindingError(c, err)
		return 0, false
	}
	return id, true
}
