package reports

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	LevelTotals(ctx context.Context) ([]LevelTotal, error)
	TypeTotals(ctx context.Context) ([]TypeTotal, error)
	PendingUCCount(ctx context.Context) (int, error)
	Ledger(ctx context.Context) ([]LedgerRow, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

// LevelTotals folds every non-failed transaction into the inflow of its
// destination level and the outflow of its source level.
func (r *postgresRepository) LevelTotals(ctx context.Context) ([]LevelTotal, error) {
	query := `
		SELECT level,
		       COALESCE(SUM(inflow), 0)  AS inflow,
		       COALESCE(SUM(outflow), 0) AS outflow,
		       COUNT(*)                  AS transactions
		FROM (
			SELECT to_level AS level, amount AS inflow, NULL::numeric AS outflow
			FROM fund_transactions WHERE status <> 'Failed'
			UNION ALL
			SELECT from_level, NULL::numeric, amount
			FROM fund_transactions WHERE status <> 'Failed'
		) movements
		GROUP BY level
		ORDER BY CASE level
			WHEN 'Ministry' THEN 1
			WHEN 'State'    THEN 2
			WHEN 'District' THEN 3
			WHEN 'Agency'   THEN 4
			WHEN 'Ground'   THEN 5
		END`

	var totals []LevelTotal
	if err := r.db.SelectContext(ctx, &totals, query); err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *postgresRepository) TypeTotals(ctx context.Context) ([]TypeTotal, error) {
	query := `
		SELECT type,
		       COALESCE(SUM(amount), 0) AS amount,
		       COUNT(*)                 AS count
		FROM fund_transactions
		WHERE status <> 'Failed'
		GROUP BY type
		ORDER BY type`

	var totals []TypeTotal
	if err := r.db.SelectContext(ctx, &totals, query); err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *postgresRepository) PendingUCCount(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM fund_transactions WHERE uc_status = 'Pending'`
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postgresRepository) Ledger(ctx context.Context) ([]LedgerRow, error) {
	query := `
		SELECT t.date, p.name AS project_name, t.type, t.from_level, t.to_level,
		       t.amount, t.status, t.uc_status, t.utr
		FROM fund_transactions t
		LEFT JOIN projects p ON p.id = t.project_id
		ORDER BY t.date DESC, t.created_at DESC`

	var rows []LedgerRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}
