package controllers

import (
	"net/http"

	"beamtime-api/config"
	"beamtime-api/monitor"
	"beamtime-api/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// POST /projects/:id/requests?pi_id=
func CreateBeamtimeRequest(c *gin.Context) {
	projectID, ok := pathID(c)
	if !ok {
		return
	}
	piID, ok := queryID(c, "pi_id")
	if !ok {
		return
	}

	var req beamtimeRequestCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	request, err := services.NewRequestService(getDB()).Create(c.Request.Context(), projectID, piID, services.CreateRequestInput{
		RequestedDate: *req.RequestedDate,
		DurationHours: req.DurationHours,
		Justification: req.Justification,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	monitor.RecordEvent(monitor.EventRequestCreated)
	c.JSON(http.StatusOK, request)
}

// GET /projects/:id/requests
func ListProjectRequests(c *gin.Context) {
	projectID, ok := pathID(c)
	if !ok {
		return
	}

	requests, err := services.NewRequestService(getDB()).ListByProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GET /managers/:id/requests
func ListManagerRequests(c *gin.Context) {
	managerID, ok := pathID(c)
	if !ok {
		return
	}

	requests, err := services.NewRequestService(getDB()).ListByManager(c.Request.Context(), managerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// PATCH /requests/:id/status?manager_id=
func UpdateRequestStatus(c *gin.Context) {
	requestID, ok := pathID(c)
	if !ok {
		return
	}
	managerID, ok := queryID(c, "manager_id")
	if !ok {
		return
	}

	var req requestStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	request, err := services.NewRequestService(getDB()).UpdateStatus(c.Request.Context(), requestID, managerID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	config.Log.WithFields(logrus.Fields{
		"beamtime_request_id": request.ID,
		"manager_id":          managerID,
		"status":              request.Status,
	}).Info("Beamtime request status changed")
	monitor.RecordEvent(monitor.EventRequestStatusChanged)
	c.JSON(http.StatusOK, request)
}
