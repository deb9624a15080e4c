package services

import (
	"context"
	"strings"

	"beamtime-api/config"
	"beamtime-api/models"

	"gorm.io/gorm"
)

type AllocationService struct {
	db *gorm.DB
}

func NewAllocationService(db *gorm.DB) *AllocationService {
	if db == nil {
		db = config.DB
	}
	return &AllocationService{db: db}
}

type CreateAllocationInput struct {
	Beamline      string
	SlotDate      models.Date
	SlotTime      string
	DurationHours int
}

// Create books a SCHEDULED slot for the request. Slots are not checked
// against other allocations on the same beamline.
func (s *AllocationService) Create(ctx context.Context, requestID, allocatorID uint, in CreateAllocationInput) (*models.Allocation, error) {
	beamline := strings.TrimSpace(in.Beamline)
	slotTime := strings.TrimSpace(in.SlotTime)
	switch {
	case beamline == "":
		return nil, invalid("beamline is required")
	case in.SlotDate.IsZero():
		return nil, invalid("slot_date is required")
	case slotTime == "":
		return nil, invalid("slot_time is required")
	case in.DurationHours <= 0:
		return nil, invalid("duration_hours must be positive")
	}

	allocation := models.Allocation{
		RequestID:     requestID,
		Beamline:      beamline,
		SlotDate:      in.SlotDate,
		SlotTime:      slotTime,
		DurationHours: in.DurationHours,
		Status:        models.AllocationScheduled,
	}
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := EnsureRole(tx, allocatorID, models.RoleAllocator); err != nil {
			return err
		}
		var request models.BeamtimeRequest
		if err := lookup(tx, &request, requestID, "Request"); err != nil {
			return err
		}
		return tx.Create(&allocation).Error
	})
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

func (s *AllocationService) List(ctx context.Context) ([]models.Allocation, error) {
	allocations := make([]models.Allocation, 0)
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		return tx.Order("id ASC").Find(&allocations).Error
	})
	if err != nil {
		return nil, err
	}
	return allocations, nil
}

// Table joins every allocation with its request and project.
func (s *AllocationService) Table(ctx context.Context) ([]models.AllocationTableRow, error) {
	rows := make([]models.AllocationTableRow, 0)
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		return tx.Table("allocations AS a").
			Select(`p.title AS project_title,
				a.beamline AS beamline,
				a.slot_date AS slot_date,
				a.slot_time AS slot_time,
				a.duration_hours AS duration_hours,
				a.status AS status`).
			Joins("JOIN beamtime_requests AS r ON r.id = a.request_id").
			Joins("JOIN research_projects AS p ON p.id = r.project_id").
			Order("a.id ASC").
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
