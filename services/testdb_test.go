package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"beamtime-api/config"
	"beamtime-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.GormConfig()
	cfg.Logger = logger.Default.LogMode(logger.Silent)

	db, err := gorm.Open(config.SQLiteDialector(filepath.Join(t.TempDir(), "beamtime_test.db")), cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// fixture is the cast of one user per role plus a project run by them.
type fixture struct {
	db        *gorm.DB
	pi        *models.User
	manager   *models.User
	allocator *models.User
	approver  *models.User
	project   *models.ResearchProject
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{db: db}
	f.pi = mustCreateUser(t, db, "Dr. PI", "pi@example.com", models.RolePI)
	f.manager = mustCreateUser(t, db, "Manager", "manager@example.com", models.RoleProjectManager)
	f.allocator = mustCreateUser(t, db, "Allocator", "allocator@example.com", models.RoleAllocator)
	f.approver = mustCreateUser(t, db, "Approver", "approver@example.com", models.RoleApprover)

	project, err := NewProjectService(db).Create(ctx(), CreateProjectInput{
		Title:     "Project A",
		PIID:      f.pi.ID,
		ManagerID: f.manager.ID,
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	f.project = project
	return f
}

func mustCreateUser(t *testing.T, db *gorm.DB, name, email string, role models.UserRole) *models.User {
	t.Helper()
	lab := "Lab"
	user, err := NewUserService(db).Create(ctx(), CreateUserInput{Name: name, Email: email, Affiliation: &lab, Role: role})
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return user
}

func (f *fixture) mustCreateRequest(t *testing.T) *models.BeamtimeRequest {
	t.Helper()
	req, err := NewRequestService(f.db).Create(ctx(), f.project.ID, f.pi.ID, CreateRequestInput{
		RequestedDate: models.NewDate(2024, 3, 17),
		DurationHours: 8,
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	return req
}

func (f *fixture) mustCreateAllocation(t *testing.T, requestID uint) *models.Allocation {
	t.Helper()
	alloc, err := NewAllocationService(f.db).Create(ctx(), requestID, f.allocator.ID, CreateAllocationInput{
		Beamline:      "BL1",
		SlotDate:      models.NewDate(2024, 4, 2),
		SlotTime:      "08:00",
		DurationHours: 8,
	})
	if err != nil {
		t.Fatalf("create allocation: %v", err)
	}
	return alloc
}

func assertKind(t *testing.T, err, kind error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", kind)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v error, got %v", kind, err)
	}
}

func ctx() context.Context {
	return context.Background()
}
