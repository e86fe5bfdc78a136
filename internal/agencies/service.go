package agencies

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/pkg/apperr"
	"pm-ajay/monitoring-backend/pkg/validate"
)

type CreateAgencyRequest struct {
	Name             string   `json:"name" validate:"required"`
	Code             string   `json:"code" validate:"required,alphanum"`
	Category         string   `json:"category" validate:"required,oneof=CentralAgency StateGovernment DistrictAdministration PSU NGO PanchayatiRaj UrbanLocalBody PrivateContractor SpecialPurposeVehicle Other"`
	RoleType         string   `json:"role_type" validate:"required,oneof=Implementing Executing"`
	ContactPerson    string   `json:"contact_person"`
	ContactEmail     string   `json:"contact_email" validate:"omitempty,email"`
	ContactPhone     string   `json:"contact_phone"`
	AssignedProjects []string `json:"assigned_project_ids" validate:"omitempty,dive,uuid"`
}

type UpdateAgencyRequest struct {
	Name             *string   `json:"name"`
	Code             *string   `json:"code" validate:"omitempty,alphanum"`
	Category         *string   `json:"category" validate:"omitempty,oneof=CentralAgency StateGovernment DistrictAdministration PSU NGO PanchayatiRaj UrbanLocalBody PrivateContractor SpecialPurposeVehicle Other"`
	RoleType         *string   `json:"role_type" validate:"omitempty,oneof=Implementing Executing"`
	ContactPerson    *string   `json:"contact_person"`
	ContactEmail     *string   `json:"contact_email" validate:"omitempty,email"`
	ContactPhone     *string   `json:"contact_phone"`
	AssignedProjects *[]string `json:"assigned_project_ids" validate:"omitempty,dive,uuid"`
	ActiveProjects   *int      `json:"active_projects" validate:"omitempty,gte=0"`
	PerformanceScore *int      `json:"performance_score" validate:"omitempty,gte=0,lte=100"`
}

// Service provides agency CRUD.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new agencies service
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, req *CreateAgencyRequest) (*Agency, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	now := time.Now()
	agency := &Agency{
		ID:                 uuid.New(),
		Name:               req.Name,
		Code:               strings.ToUpper(req.Code),
		Category:           req.Category,
		RoleType:           RoleType(req.RoleType),
		ContactPerson:      req.ContactPerson,
		ContactEmail:       req.ContactEmail,
		ContactPhone:       req.ContactPhone,
		AssignedProjectIDs: req.AssignedProjects,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, agency); err != nil {
		return nil, apperr.Internal("failed to create agency", err)
	}

	s.logger.Info("agency created",
		zap.String("agency_id", agency.ID.String()),
		zap.String("code", agency.Code))
	return agency, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Agency, error) {
	agency, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load agency", err)
	}
	if agency == nil {
		return nil, apperr.NotFound("agency", id.String())
	}
	return agency, nil
}

func (s *Service) List(ctx context.Context) ([]Agency, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list agencies", err)
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateAgencyRequest) (*Agency, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	agency, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		agency.Name = *req.Name
	}
	if req.Code != nil {
		agency.Code = strings.ToUpper(*req.Code)
	}
	if req.Category != nil {
		agency.Category = *req.Category
	}
	if req.RoleType != nil {
		agency.RoleType = RoleType(*req.RoleType)
	}
	if req.ContactPerson != nil {
		agency.ContactPerson = *req.ContactPerson
	}
	if req.ContactEmail != nil {
		agency.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		agency.ContactPhone = *req.ContactPhone
	}
	if req.AssignedProjects != nil {
		agency.AssignedProjectIDs = *req.AssignedProjects
	}
	if req.ActiveProjects != nil {
		agency.ActiveProjects = *req.ActiveProjects
	}
	if req.PerformanceScore != nil {
		agency.PerformanceScore = *req.PerformanceScore
	}
	agency.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, agency); err != nil {
		return nil, apperr.Internal("failed to update agency", err)
	}
	return agency, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete agency", err)
	}
	return nil
}
