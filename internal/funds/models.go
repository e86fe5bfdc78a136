package funds

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pm-ajay/monitoring-backend/internal/hierarchy"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "Pending"
	StatusCompleted TransactionStatus = "Completed"
	StatusApproved  TransactionStatus = "Approved"
	StatusFailed    TransactionStatus = "Failed"
)

type UCStatus string

const (
	UCPending   UCStatus = "Pending"
	UCSubmitted UCStatus = "Submitted"
	UCApproved  UCStatus = "Approved"
)

// Transaction is one directed money movement between hierarchy levels.
// A nil ProjectID marks a global transaction: it lives in the same flat
// table but never feeds any project's statistics.
type Transaction struct {
	ID              uuid.UUID         `json:"id" db:"id"`
	ProjectID       *uuid.UUID        `json:"project_id,omitempty" db:"project_id"`
	Amount          decimal.Decimal   `json:"amount" db:"amount"`
	FromLevel       hierarchy.Level   `json:"from_level" db:"from_level"`
	ToLevel         hierarchy.Level   `json:"to_level" db:"to_level"`
	Type            string            `json:"type" db:"type"`
	Date            time.Time         `json:"date" db:"date"`
	Status          TransactionStatus `json:"status" db:"status"`
	UTR             *string           `json:"utr,omitempty" db:"utr"`
	UCStatus        UCStatus          `json:"uc_status" db:"uc_status"`
	ProofDocumentID *uuid.UUID        `json:"proof_document_id,omitempty" db:"proof_document_id"`
	Remarks         string            `json:"remarks" db:"remarks"`
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" db:"updated_at"`
}
