package projects

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/pkg/apperr"
	"pm-ajay/monitoring-backend/pkg/validate"
)

// CreateProjectRequest is the payload for creating a project. Derived
// fields are not accepted here.
type CreateProjectRequest struct {
	Name                 string          `json:"name" validate:"required"`
	Component            string          `json:"component" validate:"required,oneof=AdarshGram GIA Hostel"`
	ImplementingAgencyID *uuid.UUID      `json:"implementing_agency_id"`
	ExecutingAgencyID    *uuid.UUID      `json:"executing_agency_id"`
	State                string          `json:"state" validate:"required"`
	District             string          `json:"district" validate:"required"`
	Latitude             *float64        `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude            *float64        `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	StartDate            time.Time       `json:"start_date" validate:"required"`
	EndDate              *time.Time      `json:"end_date"`
	Status               string          `json:"status" validate:"omitempty,oneof=InProgress Completed UnderReview Delayed"`
	EstimatedCost        decimal.Decimal `json:"estimated_cost"`
}

// UpdateProjectRequest carries partial edits; nil fields are left untouched.
type UpdateProjectRequest struct {
	Name                 *string          `json:"name"`
	Component            *string          `json:"component" validate:"omitempty,oneof=AdarshGram GIA Hostel"`
	ImplementingAgencyID *uuid.UUID       `json:"implementing_agency_id"`
	ExecutingAgencyID    *uuid.UUID       `json:"executing_agency_id"`
	State                *string          `json:"state"`
	District             *string          `json:"district"`
	Latitude             *float64         `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude            *float64         `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	StartDate            *time.Time       `json:"start_date"`
	EndDate              *time.Time       `json:"end_date"`
	Status               *string          `json:"status" validate:"omitempty,oneof=InProgress Completed UnderReview Delayed"`
	EstimatedCost        *decimal.Decimal `json:"estimated_cost"`
}

// Service provides project CRUD and the statistics recalculator.
type Service struct {
	repo   Repository
	logger *zap.Logger

	// Recalculations are serialized per project id so two child mutations
	// cannot interleave their read-compute-write cycles.
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewService creates a new projects service
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		locks:  map[uuid.UUID]*sync.Mutex{},
	}
}

func (s *Service) Create(ctx context.Context, req *CreateProjectRequest) (*Project, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if !req.EstimatedCost.IsPositive() {
		return nil, apperr.Validation("request validation failed", map[string]string{
			"estimated_cost": "must be greater than 0",
		})
	}

	status := ProjectStatus(req.Status)
	if status == "" {
		status = StatusInProgress
	}

	now := time.Now()
	project := &Project{
		ID:                   uuid.New(),
		Name:                 req.Name,
		Component:            SchemeComponent(req.Component),
		ImplementingAgencyID: req.ImplementingAgencyID,
		ExecutingAgencyID:    req.ExecutingAgencyID,
		State:                req.State,
		District:             req.District,
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Status:               status,
		EstimatedCost:        req.EstimatedCost,
		TotalFundsReleased:   decimal.Zero,
		TotalFundsUtilized:   decimal.Zero,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, apperr.Internal("failed to create project", err)
	}

	s.logger.Info("project created",
		zap.String("project_id", project.ID.String()),
		zap.String("component", string(project.Component)))

	return project, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load project", err)
	}
	if project == nil {
		return nil, apperr.NotFound("project", id.String())
	}
	return project, nil
}

func (s *Service) List(ctx context.Context, filter ProjectFilter) ([]Project, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("failed to list projects", err)
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateProjectRequest) (*Project, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Component != nil {
		project.Component = SchemeComponent(*req.Component)
	}
	if req.ImplementingAgencyID != nil {
		project.ImplementingAgencyID = req.ImplementingAgencyID
	}
	if req.ExecutingAgencyID != nil {
		project.ExecutingAgencyID = req.ExecutingAgencyID
	}
	if req.State != nil {
		project.State = *req.State
	}
	if req.District != nil {
		project.District = *req.District
	}
	if req.Latitude != nil {
		project.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		project.Longitude = req.Longitude
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if req.Status != nil {
		project.Status = ProjectStatus(*req.Status)
	}
	if req.EstimatedCost != nil {
		if !req.EstimatedCost.IsPositive() {
			return nil, apperr.Validation("request validation failed", map[string]string{
				"estimated_cost": "must be greater than 0",
			})
		}
		project.EstimatedCost = *req.EstimatedCost
	}
	project.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, apperr.Internal("failed to update project", err)
	}
	return project, nil
}

// Delete removes a project and cascades to its children. The cascade is a
// deliberate, documented choice: the original left orphans behind.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete project", err)
	}
	s.logger.Info("project deleted", zap.String("project_id", id.String()))
	return nil
}

// Recalculate recomputes every derived field on a project from its current
// children and persists them in one update. It is idempotent, and a missing
// project is a warned no-op: recalculation rides along child-mutation paths
// and must never fail them over a dangling reference.
func (s *Service) Recalculate(ctx context.Context, projectID uuid.UUID) error {
	unlock := s.lock(projectID)
	defer unlock()

	project, err := s.repo.GetByID(ctx, projectID)
	if err != nil {
		return apperr.Internal("failed to load project for recalculation", err)
	}
	if project == nil {
		s.logger.Warn("skipping recalculation for missing project",
			zap.String("project_id", projectID.String()))
		return nil
	}

	milestones, err := s.repo.MilestoneStats(ctx, projectID)
	if err != nil {
		return apperr.Internal("failed to load milestone stats", err)
	}
	funds, err := s.repo.FundStats(ctx, projectID)
	if err != nil {
		return apperr.Internal("failed to load fund stats", err)
	}
	inspections, err := s.repo.CountInspections(ctx, projectID)
	if err != nil {
		return apperr.Internal("failed to count inspections", err)
	}
	documents, err := s.repo.CountDocuments(ctx, projectID)
	if err != nil {
		return apperr.Internal("failed to count documents", err)
	}

	stats := &Stats{
		Progress:           progressPercent(milestones.Completed, milestones.Total),
		TotalFundsReleased: funds.Released,
		TotalFundsUtilized: funds.Utilized,
		PendingUCs:         funds.PendingUCs,
		MilestoneCount:     milestones.Total,
		InspectionCount:    inspections,
		DocumentCount:      documents,
	}

	existed, err := s.repo.UpdateStats(ctx, projectID, stats, time.Now())
	if err != nil {
		return apperr.Internal("failed to persist project stats", err)
	}
	if !existed {
		s.logger.Warn("project vanished during recalculation",
			zap.String("project_id", projectID.String()))
		return nil
	}

	s.logger.Debug("project stats recalculated",
		zap.String("project_id", projectID.String()),
		zap.Int("progress", stats.Progress),
		zap.Int("pending_ucs", stats.PendingUCs))
	return nil
}

// RecalculateAll sweeps every project and recomputes its derived fields.
// The reconciler worker runs this on a schedule to heal any drift left by
// crashed requests or out-of-band data changes. A failure on one project
// does not stop the sweep.
func (s *Service) RecalculateAll(ctx context.Context) (int, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return 0, apperr.Internal("failed to list project ids", err)
	}

	recalculated := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return recalculated, ctx.Err()
		}
		if err := s.Recalculate(ctx, id); err != nil {
			s.logger.Error("failed to recalculate project",
				zap.String("project_id", id.String()), zap.Error(err))
			continue
		}
		recalculated++
	}
	return recalculated, nil
}

// progressPercent rounds half-up: 1 of 3 milestones is 33, 2 of 3 is 67.
func progressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(completed)/float64(total)*100 + 0.5))
}

func (s *Service) lock(id uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}
