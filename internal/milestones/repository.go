package milestones

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines data access for milestones.
type Repository interface {
	Create(ctx context.Context, m *Milestone) error
	GetByID(ctx context.Context, id uuid.UUID) (*Milestone, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]Milestone, error)
	Update(ctx context.Context, m *Milestone) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewRepository creates a new PostgreSQL milestones repository
func NewRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, m *Milestone) error {
	query := `
		INSERT INTO milestones (
			id, project_id, title, owner, due_date, completion_date,
			progress, status, order_index, created_at, updated_at
		) VALUES (
			:id, :project_id, :title, :owner, :due_date, :completion_date,
			:progress, :status, :order_index, :created_at, :updated_at
		)`
	_, err := r.db.NamedExecContext(ctx, query, m)
	return err
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Milestone, error) {
	var m Milestone
	err := r.db.GetContext(ctx, &m, "SELECT * FROM milestones WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &m, err
}

func (r *postgresRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]Milestone, error) {
	ms := []Milestone{}
	err := r.db.SelectContext(ctx, &ms,
		"SELECT * FROM milestones WHERE project_id = $1 ORDER BY order_index, created_at", projectID)
	return ms, err
}

func (r *postgresRepository) Update(ctx context.Context, m *Milestone) error {
	query := `
		UPDATE milestones SET
			title = :title,
			owner = :owner,
			due_date = :due_date,
			completion_date = :completion_date,
			progress = :progress,
			status = :status,
			order_index = :order_index,
			updated_at = :updated_at
		WHERE id = :id`
	_, err := r.db.NamedExecContext(ctx, query, m)
	return err
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM milestones WHERE id = $1", id)
	return err
}
