package alerts

import (
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityInfo     Severity = "Info"
	SeverityWarning  Severity = "Warning"
	SeverityCritical Severity = "Critical"
)

type AlertStatus string

const (
	StatusOpen         AlertStatus = "Open"
	StatusAcknowledged AlertStatus = "Acknowledged"
	StatusResolved     AlertStatus = "Resolved"
)

type Alert struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	ProjectID *uuid.UUID  `json:"project_id,omitempty" db:"project_id"`
	Title     string      `json:"title" db:"title"`
	Message   string      `json:"message" db:"message"`
	Severity  Severity    `json:"severity" db:"severity"`
	Status    AlertStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}
