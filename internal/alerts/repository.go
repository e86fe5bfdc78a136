package alerts

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, a *Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*Alert, error)
	List(ctx context.Context) ([]Alert, error)
	Update(ctx context.Context, a *Alert) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, a *Alert) error {
	query := `
		INSERT INTO alerts (id, project_id, title, message, severity, status, created_at, updated_at)
		VALUES (:id, :project_id, :title, :message, :severity, :status, :created_at, :updated_at)`
	_, err := r.db.NamedExecContext(ctx, query, a)
	return err
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Alert, error) {
	var a Alert
	err := r.db.GetContext(ctx, &a, "SELECT * FROM alerts WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &a, err
}

func (r *postgresRepository) List(ctx context.Context) ([]Alert, error) {
	list := []Alert{}
	err := r.db.SelectContext(ctx, &list, "SELECT * FROM alerts ORDER BY created_at DESC")
	return list, err
}

func (r *postgresRepository) Update(ctx context.Context, a *Alert) error {
	query := `
		UPDATE alerts SET
			title = :title,
			message = :message,
			severity = :severity,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id`
	_, err := r.db.NamedExecContext(ctx, query, a)
	return err
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM alerts WHERE id = $1", id)
	return err
}
