package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines data access for projects and the cross-table rollups
// the statistics recalculator reads.
type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]Project, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID) error

	MilestoneStats(ctx context.Context, projectID uuid.UUID) (*MilestoneStats, error)
	FundStats(ctx context.Context, projectID uuid.UUID) (*FundStats, error)
	CountInspections(ctx context.Context, projectID uuid.UUID) (int, error)
	CountDocuments(ctx context.Context, projectID uuid.UUID) (int, error)
	UpdateStats(ctx context.Context, projectID uuid.UUID, stats *Stats, at time.Time) (bool, error)
}

type postgresRepository struct {
	db *sqlx.DB
}

// NewRepository creates a new PostgreSQL projects repository
func NewRepository(db *sqlx.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, p *Project) error {
	query := `
		INSERT INTO projects (
			id, name, component, implementing_agency_id, executing_agency_id,
			state, district, latitude, longitude, start_date, end_date, status,
			estimated_cost, progress, total_funds_released, total_funds_utilized,
			pending_ucs, milestone_count, inspection_count, document_count,
			created_at, updated_at
		) VALUES (
			:id, :name, :component, :implementing_agency_id, :executing_agency_id,
			:state, :district, :latitude, :longitude, :start_date, :end_date, :status,
			:estimated_cost, :progress, :total_funds_released, :total_funds_utilized,
			:pending_ucs, :milestone_count, :inspection_count, :document_count,
			:created_at, :updated_at
		)`
	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	var p Project
	err := r.db.GetContext(ctx, &p, "SELECT * FROM projects WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return &p, err
}

func (r *postgresRepository) List(ctx context.Context, filter ProjectFilter) ([]Project, error) {
	query := "SELECT * FROM projects WHERE 1=1"
	var args []interface{}
	argCount := 1

	if filter.Component != nil {
		query += fmt.Sprintf(" AND component = $%d", argCount)
		args = append(args, *filter.Component)
		argCount++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argCount)
		args = append(args, *filter.Status)
		argCount++
	}
	if filter.State != nil {
		query += fmt.Sprintf(" AND state = $%d", argCount)
		args = append(args, *filter.State)
		argCount++
	}
	if filter.District != nil {
		query += fmt.Sprintf(" AND district = $%d", argCount)
		args = append(args, *filter.District)
		argCount++
	}
	if filter.AgencyID != nil {
		query += fmt.Sprintf(" AND (implementing_agency_id = $%d OR executing_agency_id = $%d)", argCount, argCount)
		args = append(args, *filter.AgencyID)
		argCount++
	}
	query += " ORDER BY created_at DESC"

	projects := []Project{}
	err := r.db.SelectContext(ctx, &projects, query, args...)
	return projects, err
}

func (r *postgresRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.SelectContext(ctx, &ids, "SELECT id FROM projects ORDER BY created_at")
	return ids, err
}

func (r *postgresRepository) Update(ctx context.Context, p *Project) error {
	query := `
		UPDATE projects SET
			name = :name,
			component = :component,
			implementing_agency_id = :implementing_agency_id,
			executing_agency_id = :executing_agency_id,
			state = :state,
			district = :district,
			latitude = :latitude,
			longitude = :longitude,
			start_date = :start_date,
			end_date = :end_date,
			status = :status,
			estimated_cost = :estimated_cost,
			updated_at = :updated_at
		WHERE id = :id`
	_, err := r.db.NamedExecContext(ctx, query, p)
	return err
}

// Delete removes a project and all of its children in one transaction.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"milestones", "fund_transactions", "inspections", "documents", "alerts"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE project_id = $1", table), id); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", id); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *postgresRepository) MilestoneStats(ctx context.Context, projectID uuid.UUID) (*MilestoneStats, error) {
	var stats MilestoneStats
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'Completed') AS completed
		FROM milestones WHERE project_id = $1`
	err := r.db.GetContext(ctx, &stats, query, projectID)
	return &stats, err
}

func (r *postgresRepository) FundStats(ctx context.Context, projectID uuid.UUID) (*FundStats, error) {
	var stats FundStats
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type <> 'Utilization' AND status <> 'Failed'), 0) AS released,
			COALESCE(SUM(amount) FILTER (WHERE type = 'Utilization' AND status <> 'Failed'), 0) AS utilized,
			COUNT(*) FILTER (WHERE uc_status = 'Pending') AS pending_ucs
		FROM fund_transactions WHERE project_id = $1`
	err := r.db.GetContext(ctx, &stats, query, projectID)
	return &stats, err
}

func (r *postgresRepository) CountInspections(ctx context.Context, projectID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM inspections WHERE project_id = $1", projectID)
	return count, err
}

func (r *postgresRepository) CountDocuments(ctx context.Context, projectID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM documents WHERE project_id = $1", projectID)
	return count, err
}

// UpdateStats persists all derived fields in one update. It reports whether
// the project row still existed.
func (r *postgresRepository) UpdateStats(ctx context.Context, projectID uuid.UUID, stats *Stats, at time.Time) (bool, error) {
	query := `
		UPDATE projects SET
			progress = $1,
			total_funds_released = $2,
			total_funds_utilized = $3,
			pending_ucs = $4,
			milestone_count = $5,
			inspection_count = $6,
			document_count = $7,
			stats_updated_at = $8
		WHERE id = $9`
	res, err := r.db.ExecContext(ctx, query,
		stats.Progress,
		stats.TotalFundsReleased,
		stats.TotalFundsUtilized,
		stats.PendingUCs,
		stats.MilestoneCount,
		stats.InspectionCount,
		stats.DocumentCount,
		at,
		projectID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
