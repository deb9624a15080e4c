package controllers

import (
	"net/http"

	"beamtime-api/monitor"
	"beamtime-api/services"

	"github.com/gin-gonic/gin"
)

// POST /requests/:id/allocations?allocator_id=
func CreateAllocation(c *gin.Context) {
	requestID, ok := pathID(c)
	if !ok {
		return
	}
	allocatorID, ok := queryID(c, "allocator_id")
	if !ok {
		return
	}

	var req allocationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	allocation, err := services.NewAllocationService(getDB()).Create(c.Request.Context(), requestID, allocatorID, services.CreateAllocationInput{
		Beamline:      req.Beamline,
		SlotDate:      *req.SlotDate,
		SlotTime:      req.SlotTime,
		DurationHours: req.DurationHours,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	monitor.RecordEvent(monitor.EventAllocationCreated)
	c.JSON(http.StatusOK, allocation)
}

// GET /allocations/
func ListAllocations(c *gin.Context) {
	allocations, err := services.NewAllocationService(getDB()).List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, allocations)
}

// GET /allocations/table
func GetAllocationTable(c *gin.Context) {
	rows, err := services.NewAllocationService(getDB()).Table(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
