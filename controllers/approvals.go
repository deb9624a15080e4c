package controllers

import (
	"context"
	"net/http"

	"beamtime-api/config"
	"beamtime-api/monitor"
	"beamtime-api/services"

	"github.com/gin-gonic/gin"
)

type confirmationNotifier interface {
	NotifyConfirmed(ctx context.Context, allocationID uint) error
}

var newConfirmationNotifier = func() confirmationNotifier {
	return services.NewAllocationNotifier(getDB())
}

// POST /allocations/:id/approve
func ApproveAllocation(c *gin.Context) {
	allocationID, ok := pathID(c)
	if !ok {
		return
	}

	var req approvalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	approval, err := services.NewApprovalService(getDB()).Create(c.Request.Context(), allocationID, services.CreateApprovalInput{
		ApproverID: req.ApproverID,
		Approved:   req.approvedOrDefault(),
		Notes:      req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	monitor.RecordEvent(monitor.EventApprovalRecorded)
	if approval.Approved {
		monitor.RecordEvent(monitor.EventAllocationConfirmed)
		notifyAllocationConfirmed(c.Request.Context(), allocationID)
	}

	c.JSON(http.StatusOK, approval)
}

func notifyAllocationConfirmed(ctx context.Context, allocationID uint) {
	notifier := newConfirmationNotifier()
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := notifier.NotifyConfirmed(ctx, allocationID); err != nil {
			config.Log.WithError(err).
				WithField("allocation_id", allocationID).
				Warn("Failed to send allocation confirmation")
		}
	}()
}
