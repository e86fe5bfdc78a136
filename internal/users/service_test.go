package users

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/pkg/apperr"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateUser(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	repo.On("GetByEmail", mock.Anything, "collector@nic.in").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.Email == "collector@nic.in" && u.Role == RoleDistrict && u.IsActive
	})).Return(nil)

	user, err := svc.Create(context.Background(), &CreateUserRequest{
		Name:  "District Collector",
		Email: "Collector@NIC.in",
		Role:  RoleDistrict,
	})
	require.NoError(t, err)

	// Email is normalized to lower case on the way in.
	assert.Equal(t, "collector@nic.in", user.Email)
	repo.AssertExpectations(t)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	repo.On("GetByEmail", mock.Anything, "collector@nic.in").Return(&User{ID: uuid.New()}, nil)

	_, err := svc.Create(context.Background(), &CreateUserRequest{
		Name:  "District Collector",
		Email: "collector@nic.in",
		Role:  RoleDistrict,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Contains(t, apperr.FieldsOf(err), "email")
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), &CreateUserRequest{
		Name:  "Someone",
		Email: "someone@nic.in",
		Role:  "supervisor",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestGetByEmailNotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	repo.On("GetByEmail", mock.Anything, "ghost@nic.in").Return(nil, nil)

	_, err := svc.GetByEmail(context.Background(), "ghost@nic.in")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeactivateUser(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&User{ID: id, IsActive: true, Role: RoleAgency}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return !u.IsActive
	})).Return(nil)

	inactive := false
	user, err := svc.Update(context.Background(), id, &UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	repo.AssertExpectations(t)
}
