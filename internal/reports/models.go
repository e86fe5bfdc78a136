package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"pm-ajay/monitoring-backend/internal/hierarchy"
)

// LevelTotal aggregates fund movement for one hierarchy level. Inflow is
// the sum of transactions arriving at the level, outflow the sum leaving
// it. Failed transactions are excluded from both.
type LevelTotal struct {
	Level        hierarchy.Level `json:"level" db:"level"`
	Inflow       decimal.Decimal `json:"inflow" db:"inflow"`
	Outflow      decimal.Decimal `json:"outflow" db:"outflow"`
	Transactions int             `json:"transactions" db:"transactions"`
}

// TypeTotal aggregates amounts by transaction type.
type TypeTotal struct {
	Type   string          `json:"type" db:"type"`
	Amount decimal.Decimal `json:"amount" db:"amount"`
	Count  int             `json:"count" db:"count"`
}

// FundFlowSummary is the full fund-flow report payload.
type FundFlowSummary struct {
	GeneratedAt  time.Time       `json:"generated_at"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Transactions int             `json:"transactions"`
	PendingUCs   int             `json:"pending_ucs"`
	ByLevel      []LevelTotal    `json:"by_level"`
	ByType       []TypeTotal     `json:"by_type"`
}

// LedgerRow is one transaction as it appears in the exported ledger,
// with the project name resolved for readability.
type LedgerRow struct {
	Date        time.Time       `json:"date" db:"date"`
	ProjectName *string         `json:"project_name" db:"project_name"`
	Type        string          `json:"type" db:"type"`
	FromLevel   hierarchy.Level `json:"from_level" db:"from_level"`
	ToLevel     hierarchy.Level `json:"to_level" db:"to_level"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Status      string          `json:"status" db:"status"`
	UCStatus    string          `json:"uc_status" db:"uc_status"`
	UTR         *string         `json:"utr" db:"utr"`
}
