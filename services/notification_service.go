package services

import (
	"context"
	"fmt"
	"html"

	"beamtime-api/config"
	"beamtime-api/models"

	"gorm.io/gorm"
)

// AllocationNotifier e-mails the project PI once an allocation is confirmed.
type AllocationNotifier struct {
	db       *gorm.DB
	sendMail func(to []string, subject, html string) error
	enabled  func() bool
}

func NewAllocationNotifier(db *gorm.DB) *AllocationNotifier {
	if db == nil {
		db = config.DB
	}
	return &AllocationNotifier{
		db:       db,
		sendMail: config.SendMail,
		enabled:  config.MailerConfigured,
	}
}

// WithSender replaces the mail transport and marks the notifier enabled.
func (n *AllocationNotifier) WithSender(send func(to []string, subject, html string) error) *AllocationNotifier {
	n.sendMail = send
	n.enabled = func() bool { return true }
	return n
}

type confirmationDetails struct {
	PIName       string      `gorm:"column:pi_name"`
	PIEmail      string      `gorm:"column:pi_email"`
	ProjectTitle string      `gorm:"column:project_title"`
	Beamline     string      `gorm:"column:beamline"`
	SlotDate     models.Date `gorm:"column:slot_date"`
	SlotTime     string      `gorm:"column:slot_time"`
	Duration     int         `gorm:"column:duration_hours"`
}

const confirmationSubject = "Beamtime allocation confirmed"

// NotifyConfirmed sends the confirmation mail. It returns nil without sending
// when SMTP is not configured.
func (n *AllocationNotifier) NotifyConfirmed(ctx context.Context, allocationID uint) error {
	if !n.enabled() {
		return nil
	}

	var details confirmationDetails
	err := n.db.WithContext(persistentContext(ctx)).
		Table("allocations AS a").
		Select(`u.name AS pi_name, u.email AS pi_email, p.title AS project_title,
			a.beamline AS beamline, a.slot_date AS slot_date, a.slot_time AS slot_time,
			a.duration_hours AS duration_hours`).
		Joins("JOIN beamtime_requests AS r ON r.id = a.request_id").
		Joins("JOIN research_projects AS p ON p.id = r.project_id").
		Joins("JOIN users AS u ON u.id = p.pi_id").
		Where("a.id = ?", allocationID).
		Take(&details).Error
	if err != nil {
		return fmt.Errorf("load allocation %d for notification: %w", allocationID, err)
	}
	if details.PIEmail == "" {
		return nil
	}

	return n.sendMail([]string{details.PIEmail}, confirmationSubject, confirmationBody(details))
}

func confirmationBody(d confirmationDetails) string {
	return fmt.Sprintf(`<p>Dear %s,</p>
<p>Your beamtime for project <strong>%s</strong> has been confirmed.</p>
<ul>
  <li>Beamline: %s</li>
  <li>Date: %s</li>
  <li>Time: %s</li>
  <li>Duration: %d hours</li>
</ul>`,
		html.EscapeString(d.PIName),
		html.EscapeString(d.ProjectTitle),
		html.EscapeString(d.Beamline),
		d.SlotDate.String(),
		html.EscapeString(d.SlotTime),
		d.Duration,
	)
}
