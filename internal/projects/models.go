package projects

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SchemeComponent string

const (
	ComponentAdarshGram SchemeComponent = "AdarshGram"
	ComponentGIA        SchemeComponent = "GIA"
	ComponentHostel     SchemeComponent = "Hostel"
)

type ProjectStatus string

const (
	StatusInProgress  ProjectStatus = "InProgress"
	StatusCompleted   ProjectStatus = "Completed"
	StatusUnderReview ProjectStatus = "UnderReview"
	StatusDelayed     ProjectStatus = "Delayed"
)

// Project is a scheme project. Progress, the fund totals and the child
// counts are derived fields: they are written only by the statistics
// recalculator, never by a direct edit.
type Project struct {
	ID                   uuid.UUID       `json:"id" db:"id"`
	Name                 string          `json:"name" db:"name"`
	Component            SchemeComponent `json:"component" db:"component"`
	ImplementingAgencyID *uuid.UUID      `json:"implementing_agency_id,omitempty" db:"implementing_agency_id"`
	ExecutingAgencyID    *uuid.UUID      `json:"executing_agency_id,omitempty" db:"executing_agency_id"`
	State                string          `json:"state" db:"state"`
	District             string          `json:"district" db:"district"`
	Latitude             *float64        `json:"latitude,omitempty" db:"latitude"`
	Longitude            *float64        `json:"longitude,omitempty" db:"longitude"`
	StartDate            time.Time       `json:"start_date" db:"start_date"`
	EndDate              *time.Time      `json:"end_date,omitempty" db:"end_date"`
	Status               ProjectStatus   `json:"status" db:"status"`
	EstimatedCost        decimal.Decimal `json:"estimated_cost" db:"estimated_cost"`

	Progress           int             `json:"progress" db:"progress"`
	TotalFundsReleased decimal.Decimal `json:"total_funds_released" db:"total_funds_released"`
	TotalFundsUtilized decimal.Decimal `json:"total_funds_utilized" db:"total_funds_utilized"`
	PendingUCs         int             `json:"pending_ucs" db:"pending_ucs"`
	MilestoneCount     int             `json:"milestone_count" db:"milestone_count"`
	InspectionCount    int             `json:"inspection_count" db:"inspection_count"`
	DocumentCount      int             `json:"document_count" db:"document_count"`
	StatsUpdatedAt     *time.Time      `json:"stats_updated_at,omitempty" db:"stats_updated_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Stats is the set of derived fields persisted onto a project in one update.
type Stats struct {
	Progress           int             `db:"progress"`
	TotalFundsReleased decimal.Decimal `db:"total_funds_released"`
	TotalFundsUtilized decimal.Decimal `db:"total_funds_utilized"`
	PendingUCs         int             `db:"pending_ucs"`
	MilestoneCount     int             `db:"milestone_count"`
	InspectionCount    int             `db:"inspection_count"`
	DocumentCount      int             `db:"document_count"`
}

// MilestoneStats is the milestone rollup a recalculation reads.
type MilestoneStats struct {
	Total     int `db:"total"`
	Completed int `db:"completed"`
}

// FundStats is the fund-transaction rollup a recalculation reads. Failed
// transactions are excluded from both totals.
type FundStats struct {
	Released   decimal.Decimal `db:"released"`
	Utilized   decimal.Decimal `db:"utilized"`
	PendingUCs int             `db:"pending_ucs"`
}

// ProjectFilter narrows List results.
type ProjectFilter struct {
	Component *SchemeComponent
	Status    *ProjectStatus
	State     *string
	District  *string
	AgencyID  *uuid.UUID
}
