package milestones

import (
	"time"

	"github.com/google/uuid"
)

type MilestoneStatus string

const (
	StatusPending    MilestoneStatus = "Pending"
	StatusInProgress MilestoneStatus = "InProgress"
	StatusCompleted  MilestoneStatus = "Completed"
)

// Milestone belongs to exactly one project. CompletionDate is managed by
// the service: set when status becomes Completed, cleared when it leaves.
type Milestone struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	ProjectID      uuid.UUID       `json:"project_id" db:"project_id"`
	Title          string          `json:"title" db:"title"`
	Owner          string          `json:"owner" db:"owner"`
	DueDate        *time.Time      `json:"due_date,omitempty" db:"due_date"`
	CompletionDate *time.Time      `json:"completion_date,omitempty" db:"completion_date"`
	Progress       int             `json:"progress" db:"progress"`
	Status         MilestoneStatus `json:"status" db:"status"`
	OrderIndex     int             `json:"order_index" db:"order_index"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}
