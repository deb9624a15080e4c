package models

import "time"

// Approval represents the approvals table
type Approval struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	AllocationID uint      `gorm:"column:allocation_id;not null;index" json:"allocation_id"`
	ApproverID   uint      `gorm:"column:approver_id;not null;index" json:"approver_id"`
	Approved     bool      `gorm:"column:approved;not null;default:false" json:"approved"`
	Notes        *string   `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`

	Allocation *Allocation `gorm:"foreignKey:AllocationID;references:ID" json:"-"`
	Approver   *User       `gorm:"foreignKey:ApproverID;references:ID" json:"-"`
}

// TableName overrides the table name for Approval
func (Approval) TableName() string {
	return "approvals"
}
