package users

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/pkg/apperr"
	"pm-ajay/monitoring-backend/pkg/validate"
)

type CreateUserRequest struct {
	Name     string     `json:"name" validate:"required"`
	Email    string     `json:"email" validate:"required,email"`
	Phone    string     `json:"phone"`
	Role     string     `json:"role" validate:"required,oneof=admin ministry state district agency"`
	AgencyID *uuid.UUID `json:"agency_id"`
}

type UpdateUserRequest struct {
	Name     *string    `json:"name"`
	Email    *string    `json:"email" validate:"omitempty,email"`
	Phone    *string    `json:"phone"`
	Role     *string    `json:"role" validate:"omitempty,oneof=admin ministry state district agency"`
	AgencyID *uuid.UUID `json:"agency_id"`
	IsActive *bool      `json:"is_active"`
}

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal("failed to check existing user", err)
	}
	if existing != nil {
		return nil, apperr.Validation("request validation failed", map[string]string{
			"email": "already registered",
		})
	}

	now := time.Now()
	user := &User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     email,
		Phone:     req.Phone,
		Role:      req.Role,
		AgencyID:  req.AgencyID,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperr.Internal("failed to create user", err)
	}

	s.logger.Info("user created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role))
	return user, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", id.String())
	}
	return user, nil
}

// GetByEmail is used by the auth login stub. A missing user is NotFound.
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal("failed to load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user", email)
	}
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to list users", err)
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.AgencyID != nil {
		user.AgencyID = req.AgencyID
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apperr.Internal("failed to update user", err)
	}
	return user, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete user", err)
	}
	return nil
}
