package inspections

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/pkg/apperr"
	"pm-ajay/monitoring-backend/pkg/validate"
)

type CreateInspectionRequest struct {
	Inspector string     `json:"inspector" validate:"required"`
	Date      *time.Time `json:"date" validate:"required"`
	Status    string     `json:"status" validate:"omitempty,oneof=Scheduled Completed Flagged"`
	Findings  string     `json:"findings"`
	Rating    *int       `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type UpdateInspectionRequest struct {
	Inspector *string    `json:"inspector"`
	Date      *time.Time `json:"date"`
	Status    *string    `json:"status" validate:"omitempty,oneof=Scheduled Completed Flagged"`
	Findings  *string    `json:"findings"`
	Rating    *int       `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, projectID uuid.UUID, req *CreateInspectionRequest) (*Inspection, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	status := InspectionStatus(req.Status)
	if status == "" {
		status = StatusScheduled
	}

	now := time.Now()
	inspection := &Inspection{
		ID:        uuid.New(),
		ProjectID: projectID,
		Inspector: req.Inspector,
		Date:      *req.Date,
		Status:    status,
		Findings:  req.Findings,
		Rating:    req.Rating,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, inspection); err != nil {
		return nil, apperr.Internal("failed to create inspection", err)
	}
	return inspection, nil
}

func (s *Service) List(ctx context.Context, projectID uuid.UUID) ([]Inspection, error) {
	list, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, apperr.Internal("failed to list inspections", err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Inspection, error) {
	inspection, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load inspection", err)
	}
	if inspection == nil {
		return nil, apperr.NotFound("inspection", id.String())
	}
	return inspection, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateInspectionRequest) (*Inspection, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	inspection, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Inspector != nil {
		inspection.Inspector = *req.Inspector
	}
	if req.Date != nil {
		inspection.Date = *req.Date
	}
	if req.Status != nil {
		inspection.Status = InspectionStatus(*req.Status)
	}
	if req.Findings != nil {
		inspection.Findings = *req.Findings
	}
	if req.Rating != nil {
		inspection.Rating = req.Rating
	}
	inspection.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, inspection); err != nil {
		return nil, apperr.Internal("failed to update inspection", err)
	}
	return inspection, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete inspection", err)
	}
	return nil
}
