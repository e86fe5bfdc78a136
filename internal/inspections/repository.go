package inspections

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, i *Inspection) error
	GetByID(ctx context.Context, id uuid.UUID) (*Inspection, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]Inspection, error)
	Update(ctx context.Context, i *Inspection) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, i *Inspection) error {
	query := `
		INSERT INTO inspections (
			id, project_id, inspector, date, status, findings, rating, created_at, updated_at
		) VALUES (
			:id, :project_id, :inspector, :date, :status, :findings, :rating, :created_at, :updated_at
		)`
	_, err := r.db.NamedExecContext(ctx, query, i)
	return err
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Inspection, error) {
	var i Inspection
	err := r.db.GetContext(ctx, &i, "SELECT * FROM inspections WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &i, err
}

func (r *postgresRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]Inspection, error) {
	list := []Inspection{}
	err := r.db.SelectContext(ctx, &list,
		"SELECT * FROM inspections WHERE project_id = $1 ORDER BY date DESC", projectID)
	return list, err
}

func (r *postgresRepository) Update(ctx context.Context, i *Inspection) error {
	query := `
		UPDATE inspections SET
			inspector = :inspector,
			date = :date,
			status = :status,
			findings = :findings,
			rating = :rating,
			updated_at = :updated_at
		WHERE id = :id`
	_, err := r.db.NamedExecContext(ctx, query, i)
	return err
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM inspections WHERE id = $1", id)
	return err
}
