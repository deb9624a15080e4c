package controllers

import "beamtime-api/models"

// Request bodies accepted by the beamtime routes. Pointer fields are
// optional; on update routes a nil pointer leaves the stored value alone.

type userCreateRequest struct {
	Name        string          `json:"name" binding:"required"`
	Email       string          `json:"email" binding:"required,strict_email"`
	Affiliation *string         `json:"affiliation"`
	Role        models.UserRole `json:"role" binding:"required,user_role"`
}

type userUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Email       *string `json:"email" binding:"omitempty,strict_email"`
	Affiliation *string `json:"affiliation"`
}

type projectCreateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	PIID        uint    `json:"pi_id" binding:"required"`
	ManagerID   uint    `json:"manager_id" binding:"required"`
}

type projectUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	PIID        *uint   `json:"pi_id" binding:"omitempty,gt=0"`
	ManagerID   *uint   `json:"manager_id" binding:"omitempty,gt=0"`
}

type beamtimeRequestCreateRequest struct {
	RequestedDate *models.Date `json:"requested_date" binding:"required"`
	DurationHours int          `json:"duration_hours" binding:"required,gt=0"`
	Justification *string      `json:"justification"`
}

type requestStatusUpdateRequest struct {
	Status models.RequestStatus `json:"status" binding:"required,request_status"`
}

type allocationCreateRequest struct {
	Beamline      string       `json:"beamline" binding:"required"`
	SlotDate      *models.Date `json:"slot_date" binding:"required"`
	SlotTime      string       `json:"slot_time" binding:"required"`
	DurationHours int          `json:"duration_hours" binding:"required,gt=0"`
}

type approvalCreateRequest struct {
	ApproverID uint    `json:"approver_id" binding:"required"`
	Approved   *bool   `json:"approved"`
	Notes      *string `json:"notes"`
}

// approvedOrDefault treats a missing approved flag as a positive decision.
func (r approvalCreateRequest) approvedOrDefault() bool {
	if r.Approved == nil {
		return true
	}
	return *r.Approved
}
