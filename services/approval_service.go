package services

import (
	"context"

	"beamtime-api/config"
	"beamtime-api/models"

	"gorm.io/gorm"
)

type ApprovalService struct {
	db *gorm.DB
}

func NewApprovalService(db *gorm.DB) *ApprovalService {
	if db == nil {
		db = config.DB
	}
	return &ApprovalService{db: db}
}

type CreateApprovalInput struct {
	ApproverID uint
	Approved   bool
	Notes      *string
}

// Create records an approver's decision. A positive decision confirms the
// allocation whatever its current status is.
func (s *ApprovalService) Create(ctx context.Context, allocationID uint, in CreateApprovalInput) (*models.Approval, error) {
	approval := models.Approval{
		AllocationID: allocationID,
		ApproverID:   in.ApproverID,
		Approved:     in.Approved,
		Notes:        sanitizeOptional(in.Notes),
	}
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := EnsureRole(tx, in.ApproverID, models.RoleApprover); err != nil {
			return err
		}
		var allocation models.Allocation
		if err := lookup(tx, &allocation, allocationID, "Allocation"); err != nil {
			return err
		}

		if err := tx.Create(&approval).Error; err != nil {
			return err
		}
		if !in.Approved {
			return nil
		}
		return tx.Model(&allocation).Update("status", models.AllocationConfirmed).Error
	})
	if err != nil {
		return nil, err
	}
	return &approval, nil
}
