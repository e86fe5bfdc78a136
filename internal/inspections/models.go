package inspections

import (
	"time"

	"github.com/google/uuid"
)

type InspectionStatus string

const (
	StatusScheduled InspectionStatus = "Scheduled"
	StatusCompleted InspectionStatus = "Completed"
	StatusFlagged   InspectionStatus = "Flagged"
)

type Inspection struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	ProjectID uuid.UUID        `json:"project_id" db:"project_id"`
	Inspector string           `json:"inspector" db:"inspector"`
	Date      time.Time        `json:"date" db:"date"`
	Status    InspectionStatus `json:"status" db:"status"`
	Findings  string           `json:"findings" db:"findings"`
	Rating    *int             `json:"rating,omitempty" db:"rating"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" db:"updated_at"`
}
