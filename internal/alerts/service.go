package alerts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/pkg/apperr"
	"pm-ajay/monitoring-backend/pkg/validate"
)

type CreateAlertRequest struct {
	ProjectID *uuid.UUID `json:"project_id"`
	Title     string     `json:"title" validate:"required"`
	Message   string     `json:"message"`
	Severity  string     `json:"severity" validate:"required,oneof=Info Warning Critical"`
}

type UpdateAlertRequest struct {
	Title    *string `json:"title"`
	Message  *string `json:"message"`
	Severity *string `json:"severity" validate:"omitempty,oneof=Info Warning Critical"`
	Status   *string `json:"status" validate:"omitempty,oneof=Open Acknowledged Resolved"`
}

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, req *CreateAlertRequest) (*Alert, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	now := time.Now()
	alert := &Alert{
		ID:        uuid.New(),
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Message:   req.Message,
		Severity:  Severity(req.Severity),
		Status:    StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, apperr.Internal("failed to create alert", err)
	}
	return alert, nil
}

func (s *Service) List(ctx context.Context) ([]Alert, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list alerts", err)
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateAlertRequest) (*Alert, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load alert", err)
	}
	if alert == nil {
		return nil, apperr.NotFound("alert", id.String())
	}

	if req.Title != nil {
		alert.Title = *req.Title
	}
	if req.Message != nil {
		alert.Message = *req.Message
	}
	if req.Severity != nil {
		alert.Severity = Severity(*req.Severity)
	}
	if req.Status != nil {
		alert.Status = AlertStatus(*req.Status)
	}
	alert.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, alert); err != nil {
		return nil, apperr.Internal("failed to update alert", err)
	}
	return alert, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	alert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return apperr.Internal("failed to load alert", err)
	}
	if alert == nil {
		return apperr.NotFound("alert", id.String())
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete alert", err)
	}
	return nil
}
