package documents

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*Document, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]Document, error)
	Update(ctx context.Context, d *Document) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type postgresRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, d *Document) error {
	query := `
		INSERT INTO documents (
			id, project_id, name, description, document_type, stored_name,
			file_size, content_type, uploaded_by, uploaded_at
		) VALUES (
			:id, :project_id, :name, :description, :document_type, :stored_name,
			:file_size, :content_type, :uploaded_by, :uploaded_at
		)`
	_, err := r.db.NamedExecContext(ctx, query, d)
	return err
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	var d Document
	err := r.db.GetContext(ctx, &d, "SELECT * FROM documents WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &d, err
}

func (r *postgresRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]Document, error) {
	docs := []Document{}
	err := r.db.SelectContext(ctx, &docs,
		"SELECT * FROM documents WHERE project_id = $1 ORDER BY uploaded_at DESC", projectID)
	return docs, err
}

func (r *postgresRepository) Update(ctx context.Context, d *Document) error {
	query := `
		UPDATE documents SET
			name = :name,
			description = :description,
			document_type = :document_type
		WHERE id = :id`
	_, err := r.db.NamedExecContext(ctx, query, d)
	return err
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = $1", id)
	return err
}
