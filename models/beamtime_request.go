package models

import "time"

// RequestStatus is the review state of a beamtime request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestReviewed RequestStatus = "REVIEWED"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// RequestStatuses lists every accepted request status.
var RequestStatuses = []RequestStatus{RequestPending, RequestReviewed, RequestApproved, RequestRejected}

// Valid reports whether s is one of the known request statuses.
func (s RequestStatus) Valid() bool {
	for _, status := range RequestStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// BeamtimeRequest represents the beamtime_requests table
type BeamtimeRequest struct {
	ID            uint          `gorm:"primaryKey;column:id" json:"id"`
	ProjectID     uint          `gorm:"column:project_id;not null;index" json:"project_id"`
	RequestedDate Date          `gorm:"column:requested_date;type:date;not null" json:"requested_date"`
	DurationHours int           `gorm:"column:duration_hours;not null" json:"duration_hours"`
	Justification *string       `gorm:"column:justification;type:text" json:"justification"`
	Status        RequestStatus `gorm:"column:status;type:varchar(16);not null;default:'PENDING'" json:"status"`
	CreatedAt     time.Time     `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`

	Project *ResearchProject `gorm:"foreignKey:ProjectID;references:ID" json:"-"`
}

// TableName overrides the table name for BeamtimeRequest
func (BeamtimeRequest) TableName() string {
	return "beamtime_requests"
}
