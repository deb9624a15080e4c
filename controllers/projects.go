package controllers

import (
	"net/http"

	"beamtime-api/monitor"
	"beamtime-api/services"

	"github.com/gin-gonic/gin"
)

// POST /projects/
func CreateProject(c *gin.Context) {
	var req projectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	project, err := services.NewProjectService(getDB()).Create(c.Request.Context(), services.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		PIID:        req.PIID,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	monitor.RecordEvent(monitor.EventProjectCreated)
	c.JSON(http.StatusOK, project)
}

// PUT /projects/:id
func UpdateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req projectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	project, err := services.NewProjectService(getDB()).Update(c.Request.Context(), id, services.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		PIID:        req.PIID,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	monitor.RecordEvent(monitor.EventProjectUpdated)
	c.JSON(http.StatusOK, project)
}

// DELETE /projects/:id
func DeleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := services.NewProjectService(getDB()).Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	monitor.RecordEvent(monitor.EventProjectDeleted)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project deleted",
	})
}
