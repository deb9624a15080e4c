package services

import (
	"testing"

	"beamtime-api/models"
)

func TestCreateAllocation(t *testing.T) {
	f := newFixture(t)
	req := f.mustCreateRequest(t)

	alloc := f.mustCreateAllocation(t, req.ID)
	if alloc.Status != models.AllocationScheduled {
		t.Fatalf("expected SCHEDULED, got %s", alloc.Status)
	}
	if alloc.RequestID != req.ID || alloc.SlotDate.String() != "2024-04-02" || alloc.CreatedAt.IsZero() {
		t.Fatalf("unexpected allocation %#v", alloc)
	}

	svc := NewAllocationService(f.db)
	in := CreateAllocationInput{Beamline: "BL1", SlotDate: models.NewDate(2024, 4, 2), SlotTime: "08:00", DurationHours: 8}

	_, err := svc.Create(ctx(), req.ID, f.approver.ID, in)
	assertKind(t, err, ErrInvalidRole)

	_, err = svc.Create(ctx(), 404, f.allocator.ID, in)
	assertKind(t, err, ErrNotFound)

	_, err = svc.Create(ctx(), req.ID, f.allocator.ID, CreateAllocationInput{SlotDate: models.NewDate(2024, 4, 2), SlotTime: "08:00", DurationHours: 8})
	assertKind(t, err, ErrValidation)
}

func TestAllocationsMayOverlap(t *testing.T) {
	f := newFixture(t)
	req := f.mustCreateRequest(t)

	first := f.mustCreateAllocation(t, req.ID)
	second := f.mustCreateAllocation(t, req.ID)
	if first.ID == second.ID {
		t.Fatalf("expected two distinct allocations")
	}

	all, err := NewAllocationService(f.db).List(ctx())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Fatalf("unexpected allocations %#v", all)
	}
}

func TestAllocationTableJoinsProject(t *testing.T) {
	f := newFixture(t)
	req := f.mustCreateRequest(t)
	f.mustCreateAllocation(t, req.ID)

	svc := NewAllocationService(f.db)
	rows, err := svc.Table(ctx())
	if err != nil {
		t.Fatalf("Table returned error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.ProjectTitle != "Project A" || row.Beamline != "BL1" || row.SlotTime != "08:00" ||
		row.DurationHours != 8 || row.Status != models.AllocationScheduled || row.SlotDate.String() != "2024-04-02" {
		t.Fatalf("unexpected row %#v", row)
	}

	again, err := svc.Table(ctx())
	if err != nil {
		t.Fatalf("Table returned error: %v", err)
	}
	if len(again) != 1 || again[0].ProjectTitle != row.ProjectTitle || again[0].SlotDate.String() != row.SlotDate.String() {
		t.Fatalf("table not stable across calls: %#v vs %#v", again, rows)
	}
}
