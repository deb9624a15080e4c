package services

import (
	"context"

	"beamtime-api/config"
	"beamtime-api/models"

	"gorm.io/gorm"
)

type RequestService struct {
	db *gorm.DB
}

func NewRequestService(db *gorm.DB) *RequestService {
	if db == nil {
		db = config.DB
	}
	return &RequestService{db: db}
}

type CreateRequestInput struct {
	RequestedDate models.Date
	DurationHours int
	Justification *string
}

// Create files a PENDING request on behalf of the project's own PI.
func (s *RequestService) Create(ctx context.Context, projectID, piID uint, in CreateRequestInput) (*models.BeamtimeRequest, error) {
	if in.RequestedDate.IsZero() {
		return nil, invalid("requested_date is required")
	}
	if in.DurationHours <= 0 {
		return nil, invalid("duration_hours must be positive")
	}

	request := models.BeamtimeRequest{
		ProjectID:     projectID,
		RequestedDate: in.RequestedDate,
		DurationHours: in.DurationHours,
		Justification: sanitizeOptional(in.Justification),
		Status:        models.RequestPending,
	}
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var project models.ResearchProject
		if err := lookup(tx, &project, projectID, "Project"); err != nil {
			return err
		}
		if _, err := EnsureRole(tx, piID, models.RolePI); err != nil {
			return err
		}
		if project.PIID != piID {
			return forbidden("PI does not own project")
		}
		return tx.Create(&request).Error
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *RequestService) ListByProject(ctx context.Context, projectID uint) ([]models.BeamtimeRequest, error) {
	requests := make([]models.BeamtimeRequest, 0)
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		var project models.ResearchProject
		if err := lookup(tx, &project, projectID, "Project"); err != nil {
			return err
		}
		return tx.Where("project_id = ?", projectID).Order("id ASC").Find(&requests).Error
	})
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// ListByManager returns every request filed under projects the manager runs.
func (s *RequestService) ListByManager(ctx context.Context, managerID uint) ([]models.BeamtimeRequest, error) {
	requests := make([]models.BeamtimeRequest, 0)
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := EnsureRole(tx, managerID, models.RoleProjectManager); err != nil {
			return err
		}

		var projectIDs []uint
		if err := tx.Model(&models.ResearchProject{}).
			Where("manager_id = ?", managerID).
			Pluck("id", &projectIDs).Error; err != nil {
			return err
		}
		if len(projectIDs) == 0 {
			return nil
		}

		return tx.Where("project_id IN ?", projectIDs).Order("id ASC").Find(&requests).Error
	})
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus sets the request status to target. Any status may follow any
// other; only the managing manager may change it.
func (s *RequestService) UpdateStatus(ctx context.Context, requestID, managerID uint, target models.RequestStatus) (*models.BeamtimeRequest, error) {
	if !target.Valid() {
		return nil, invalid("status %q is not a valid request status", target)
	}

	var request models.BeamtimeRequest
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := EnsureRole(tx, managerID, models.RoleProjectManager); err != nil {
			return err
		}
		if err := lookup(tx, &request, requestID, "Request"); err != nil {
			return err
		}

		var project models.ResearchProject
		if err := tx.First(&project, request.ProjectID).Error; err != nil {
			return err
		}
		if project.ManagerID != managerID {
			return forbidden("Manager not assigned to project")
		}

		if err := tx.Model(&request).Update("status", target).Error; err != nil {
			return err
		}
		request.Status = target
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}
