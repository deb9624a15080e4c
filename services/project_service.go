package services

import (
	"context"

	"beamtime-api/config"
	"beamtime-api/models"
	"beamtime-api/utils"

	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	if db == nil {
		db = config.DB
	}
	return &ProjectService{db: db}
}

type CreateProjectInput struct {
	Title       string
	Description *string
	PIID        uint
	ManagerID   uint
}

type UpdateProjectInput struct {
	Title       *string
	Description *string
	PIID        *uint
	ManagerID   *uint
}

func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*models.ResearchProject, error) {
	title := utils.SanitizeInput(in.Title)
	if title == "" {
		return nil, invalid("title is required")
	}

	project := models.ResearchProject{
		Title:       title,
		Description: sanitizeOptional(in.Description),
		PIID:        in.PIID,
		ManagerID:   in.ManagerID,
	}
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := EnsureRole(tx, in.ManagerID, models.RoleProjectManager); err != nil {
			return err
		}
		if _, err := EnsureRole(tx, in.PIID, models.RolePI); err != nil {
			return err
		}
		return tx.Create(&project).Error
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) Update(ctx context.Context, id uint, in UpdateProjectInput) (*models.ResearchProject, error) {
	updates := make(map[string]interface{})
	if in.Title != nil {
		title := utils.SanitizeInput(*in.Title)
		if title == "" {
			return nil, invalid("title cannot be empty")
		}
		updates["title"] = title
	}
	if in.Description != nil {
		updates["description"] = sanitizeOptional(in.Description)
	}

	var project models.ResearchProject
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := lookup(tx, &project, id, "Project"); err != nil {
			return err
		}
		if in.ManagerID != nil {
			if _, err := EnsureRole(tx, *in.ManagerID, models.RoleProjectManager); err != nil {
				return err
			}
			updates["manager_id"] = *in.ManagerID
		}
		if in.PIID != nil {
			if _, err := EnsureRole(tx, *in.PIID, models.RolePI); err != nil {
				return err
			}
			updates["pi_id"] = *in.PIID
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&project).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&project, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes a project that no longer owns any beamtime request.
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	return inTx(ctx, s.db, func(tx *gorm.DB) error {
		var project models.ResearchProject
		if err := lookup(tx, &project, id, "Project"); err != nil {
			return err
		}

		var children int64
		if err := tx.Model(&models.BeamtimeRequest{}).
			Where("project_id = ?", id).
			Count(&children).Error; err != nil {
			return err
		}
		if children > 0 {
			return conflict("Project has beamtime requests")
		}

		return tx.Delete(&project).Error
	})
}

// ListByPI returns the projects the user leads as PI, not the ones they manage.
func (s *ProjectService) ListByPI(ctx context.Context, userID uint) ([]models.ResearchProject, error) {
	projects := make([]models.ResearchProject, 0)
	err := inTx(ctx, s.db, func(tx *gorm.DB) error {
		if _, err := EnsureRole(tx, userID, models.RolePI); err != nil {
			return err
		}
		return tx.Where("pi_id = ?", userID).Order("id ASC").Find(&projects).Error
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}
