package services

import (
	"testing"

	"beamtime-api/models"
)

func TestCreateUserValidatesInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	cases := []CreateUserInput{
		{Name: "", Email: "a@example.com", Role: models.RolePI},
		{Name: "A", Email: "not-an-email", Role: models.RolePI},
		{Name: "A", Email: "", Role: models.RolePI},
		{Name: "A", Email: "a@example.com", Role: "ADMIN"},
	}
	for _, in := range cases {
		_, err := svc.Create(ctx(), in)
		assertKind(t, err, ErrValidation)
	}
}

func TestCreateUserDuplicateEmailIsConstraintError(t *testing.T) {
	db := newTestDB(t)
	mustCreateUser(t, db, "First", "dup@example.com", models.RolePI)

	_, err := NewUserService(db).Create(ctx(), CreateUserInput{Name: "Second", Email: "dup@example.com", Role: models.RoleApprover})
	assertKind(t, err, ErrConflict)
}

func TestUpdateUserEmptyPayloadLeavesFieldsUnchanged(t *testing.T) {
	db := newTestDB(t)
	created := mustCreateUser(t, db, "Dr. PI", "pi@example.com", models.RolePI)

	updated, err := NewUserService(db).Update(ctx(), created.ID, UpdateUserInput{})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != created.Name || updated.Email != created.Email || updated.Role != created.Role {
		t.Fatalf("expected unchanged user, got %#v", updated)
	}
	if updated.Affiliation == nil || *updated.Affiliation != "Lab" {
		t.Fatalf("expected affiliation Lab, got %v", updated.Affiliation)
	}
}

func TestUpdateUserAppliesOnlySuppliedFields(t *testing.T) {
	db := newTestDB(t)
	created := mustCreateUser(t, db, "Dr. PI", "pi@example.com", models.RolePI)

	name := "Dr. Renamed"
	updated, err := NewUserService(db).Update(ctx(), created.ID, UpdateUserInput{Name: &name})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("expected name %q, got %q", name, updated.Name)
	}
	if updated.Email != "pi@example.com" || updated.Role != models.RolePI {
		t.Fatalf("unexpected side effects: %#v", updated)
	}
	if updated.Affiliation == nil || *updated.Affiliation != "Lab" {
		t.Fatalf("affiliation should be untouched, got %v", updated.Affiliation)
	}
}

func TestUpdateUserErrors(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)
	first := mustCreateUser(t, db, "First", "first@example.com", models.RolePI)
	mustCreateUser(t, db, "Second", "second@example.com", models.RolePI)

	_, err := svc.Update(ctx(), 404, UpdateUserInput{})
	assertKind(t, err, ErrNotFound)

	bad := "broken"
	_, err = svc.Update(ctx(), first.ID, UpdateUserInput{Email: &bad})
	assertKind(t, err, ErrValidation)

	taken := "second@example.com"
	_, err = svc.Update(ctx(), first.ID, UpdateUserInput{Email: &taken})
	assertKind(t, err, ErrConflict)
}
