package controllers

import (
	"net/http"

	"beamtime-api/monitor"
	"beamtime-api/services"

	"github.com/gin-gonic/gin"
)

// POST /users/
func CreateUser(c *gin.Context) {
	var req userCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := services.NewUserService(getDB()).Create(c.Request.Context(), services.CreateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Affiliation: req.Affiliation,
		Role:        req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	monitor.RecordEvent(monitor.EventUserCreated)
	c.JSON(http.StatusOK, user)
}

// PUT /users/:id
func UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req userUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := services.NewUserService(getDB()).Update(c.Request.Context(), id, services.UpdateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Affiliation: req.Affiliation,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	monitor.RecordEvent(monitor.EventUserUpdated)
	c.JSON(http.StatusOK, user)
}

// GET /users/:id/projects
func ListProjectsForPI(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	projects, err := services.NewProjectService(getDB()).ListByPI(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}
