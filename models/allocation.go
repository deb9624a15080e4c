package models

import "time"

// AllocationStatus is the lifecycle state of a beamline slot.
type AllocationStatus string

const (
	AllocationScheduled AllocationStatus = "SCHEDULED"
	AllocationConfirmed AllocationStatus = "CONFIRMED"
	AllocationCompleted AllocationStatus = "COMPLETED"
)

// Allocation represents the allocations table. Overlapping slots on the same
// beamline are allowed.
type Allocation struct {
	ID            uint             `gorm:"primaryKey;column:id" json:"id"`
	RequestID     uint             `gorm:"column:request_id;not null;index" json:"request_id"`
	Beamline      string           `gorm:"column:beamline;not null" json:"beamline"`
	SlotDate      Date             `gorm:"column:slot_date;type:date;not null" json:"slot_date"`
	SlotTime      string           `gorm:"column:slot_time;not null" json:"slot_time"`
	DurationHours int              `gorm:"column:duration_hours;not null" json:"duration_hours"`
	Status        AllocationStatus `gorm:"column:status;type:varchar(16);not null;default:'SCHEDULED'" json:"status"`
	CreatedAt     time.Time        `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`

	Request *BeamtimeRequest `gorm:"foreignKey:RequestID;references:ID" json:"-"`
}

// TableName overrides the table name for Allocation
func (Allocation) TableName() string {
	return "allocations"
}

// AllocationTableRow is one denormalized row of the allocation table view.
type AllocationTableRow struct {
	ProjectTitle  string           `gorm:"column:project_title" json:"project_title"`
	Beamline      string           `gorm:"column:beamline" json:"beamline"`
	SlotDate      Date             `gorm:"column:slot_date" json:"slot_date"`
	SlotTime      string           `gorm:"column:slot_time" json:"slot_time"`
	DurationHours int              `gorm:"column:duration_hours" json:"duration_hours"`
	Status        AllocationStatus `gorm:"column:status" json:"status"`
}
