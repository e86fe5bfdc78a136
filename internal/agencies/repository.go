package agencies

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines data access for agencies.
type Repository interface {
	Create(ctx context.Context, a *Agency) error
	GetByID(ctx context.Context, id uuid.UUID) (*Agency, error)
	List(ctx context.Context) ([]Agency, error)
	Update(ctx context.Context, a *Agency) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewRepository creates a new PostgreSQL agencies repository
func NewRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, a *Agency) error {
	query := `
		INSERT INTO agencies (
			id, name, code, category, role_type, contact_person, contact_email,
			contact_phone, assigned_project_ids, active_projects, performance_score,
			created_at, updated_at
		) VALUES (
			:id, :name, :code, :category, :role_type, :contact_person, :contact_email,
			:contact_phone, :assigned_project_ids, :active_projects, :performance_score,
			:created_at, :updated_at
		)`
	_, err := r.db.NamedExecContext(ctx, query, a)
	return err
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Agency, error) {
	var a Agency
	err := r.db.GetContext(ctx, &a, "SELECT * FROM agencies WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &a, err
}

func (r *postgresRepository) List(ctx context.Context) ([]Agency, error) {
	agencies := []Agency{}
	err := r.db.SelectContext(ctx, &agencies, "SELECT * FROM agencies ORDER BY name")
	return agencies, err
}

func (r *postgresRepository) Update(ctx context.Context, a *Agency) error {
	query := `
		UPDATE agencies SET
			name = :name,
			code = :code,
			category = :category,
			role_type = :role_type,
			contact_person = :contact_person,
			contact_email = :contact_email,
			contact_phone = :contact_phone,
			assigned_project_ids = :assigned_project_ids,
			active_projects = :active_projects,
			performance_score = :performance_score,
			updated_at = :updated_at
		WHERE id = :id`
	_, err := r.db.NamedExecContext(ctx, query, a)
	return err
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM agencies WHERE id = $1", id)
	return err
}
