package funds

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines data access for the fund ledger. Project-owned and
// global transactions share one flat table with a nullable project
// reference, so listing everything is a single query.
type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]Transaction, error)
	ListAll(ctx context.Context) ([]Transaction, error)
	Update(ctx context.Context, tx *Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewRepository creates a new PostgreSQL fund ledger repository
func NewRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, tx *Transaction) error {
	query := `
		INSERT INTO fund_transactions (
			id, project_id, amount, from_level, to_level, type, date, status,
			utr, uc_status, proof_document_id, remarks, created_at, updated_at
		) VALUES (
			:id, :project_id, :amount, :from_level, :to_level, :type, :date, :status,
			:utr, :uc_status, :proof_document_id, :remarks, :created_at, :updated_at
		)`
	_, err := r.db.NamedExecContext(ctx, query, tx)
	return err
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	var tx Transaction
	err := r.db.GetContext(ctx, &tx, "SELECT * FROM fund_transactions WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &tx, err
}

func (r *postgresRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]Transaction, error) {
	txs := []Transaction{}
	err := r.db.SelectContext(ctx, &txs,
		"SELECT * FROM fund_transactions WHERE project_id = $1 ORDER BY date DESC", projectID)
	return txs, err
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]Transaction, error) {
	txs := []Transaction{}
	err := r.db.SelectContext(ctx, &txs, "SELECT * FROM fund_transactions ORDER BY date DESC")
	return txs, err
}

func (r *postgresRepository) Update(ctx context.Context, tx *Transaction) error {
	query := `
		UPDATE fund_transactions SET
			amount = :amount,
			from_level = :from_level,
			to_level = :to_level,
			type = :type,
			date = :date,
			status = :status,
			utr = :utr,
			uc_status = :uc_status,
			proof_document_id = :proof_document_id,
			remarks = :remarks,
			updated_at = :updated_at
		WHERE id = :id`
	_, err := r.db.NamedExecContext(ctx, query, tx)
	return err
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM fund_transactions WHERE id = $1", id)
	return err
}
