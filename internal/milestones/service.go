package milestones

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/pkg/apperr"
	"pm-ajay/monitoring-backend/pkg/validate"
)

// Recalculator re-derives a project's statistics after a milestone mutation.
type Recalculator interface {
	Recalculate(ctx context.Context, projectID uuid.UUID) error
}

type CreateMilestoneRequest struct {
	Title      string     `json:"title" validate:"required"`
	Owner      string     `json:"owner"`
	DueDate    *time.Time `json:"due_date"`
	Progress   int        `json:"progress" validate:"gte=0,lte=100"`
	Status     string     `json:"status" validate:"omitempty,oneof=Pending InProgress Completed"`
	OrderIndex int        `json:"order_index" validate:"gte=0"`
}

type UpdateMilestoneRequest struct {
	Title      *string    `json:"title"`
	Owner      *string    `json:"owner"`
	DueDate    *time.Time `json:"due_date"`
	Progress   *int       `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Status     *string    `json:"status" validate:"omitempty,oneof=Pending InProgress Completed"`
	OrderIndex *int       `json:"order_index" validate:"omitempty,gte=0"`
}

// Service provides milestone CRUD. Every mutation triggers the owning
// project's statistics recalculation.
type Service struct {
	repo   Repository
	stats  Recalculator
	logger *zap.Logger
}

// NewService creates a new milestones service
func NewService(repo Repository, stats Recalculator, logger *zap.Logger) *Service {
	return &Service{repo: repo, stats: stats, logger: logger}
}

func (s *Service) Create(ctx context.Context, projectID uuid.UUID, req *CreateMilestoneRequest) (*Milestone, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	status := MilestoneStatus(req.Status)
	if status == "" {
		status = StatusPending
	}

	now := time.Now()
	m := &Milestone{
		ID:         uuid.New(),
		ProjectID:  projectID,
		Title:      req.Title,
		Owner:      req.Owner,
		DueDate:    req.DueDate,
		Progress:   req.Progress,
		Status:     status,
		OrderIndex: req.OrderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if status == StatusCompleted {
		m.CompletionDate = &now
		m.Progress = 100
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, apperr.Internal("failed to create milestone", err)
	}

	if err := s.stats.Recalculate(ctx, projectID); err != nil {
		return nil, apperr.Internal("failed to recalculate project stats", err)
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, projectID uuid.UUID) ([]Milestone, error) {
	ms, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, apperr.Internal("failed to list milestones", err)
	}
	return ms, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Milestone, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load milestone", err)
	}
	if m == nil {
		return nil, apperr.NotFound("milestone", id.String())
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateMilestoneRequest) (*Milestone, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		m.Title = *req.Title
	}
	if req.Owner != nil {
		m.Owner = *req.Owner
	}
	if req.DueDate != nil {
		m.DueDate = req.DueDate
	}
	if req.Progress != nil {
		m.Progress = *req.Progress
	}
	if req.OrderIndex != nil {
		m.OrderIndex = *req.OrderIndex
	}
	if req.Status != nil {
		next := MilestoneStatus(*req.Status)
		if next == StatusCompleted && m.Status != StatusCompleted {
			now := time.Now()
			m.CompletionDate = &now
			m.Progress = 100
		}
		if next != StatusCompleted {
			m.CompletionDate = nil
		}
		m.Status = next
	}
	m.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, apperr.Internal("failed to update milestone", err)
	}

	if err := s.stats.Recalculate(ctx, m.ProjectID); err != nil {
		return nil, apperr.Internal("failed to recalculate project stats", err)
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete milestone", err)
	}
	if err := s.stats.Recalculate(ctx, m.ProjectID); err != nil {
		return apperr.Internal("failed to recalculate project stats", err)
	}
	return nil
}
