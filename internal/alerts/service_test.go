package alerts

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

func (m *MockRepository) Create(ctx context.Context, a *Alert) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Alert), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]Alert, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Alert), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, a *Alert) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateAlert(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	projectID := uuid.New()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *Alert) bool {
		return *a.ProjectID == projectID && a.Severity == SeverityCritical && a.Status == StatusOpen
	})).Return(nil)

	alert, err := svc.Create(context.Background(), &CreateAlertRequest{
		ProjectID: &projectID,
		Title:     "UC overdue",
		Message:   "utilization certificate pending past 90 days",
		Severity:  "Critical",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, alert.Status)
	repo.AssertExpectations(t)
}

func TestCreateAlertRejectsUnknownSeverity(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), &CreateAlertRequest{
		Title:    "UC overdue",
		Severity: "Fatal",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestAlertWithoutProjectIsGlobal(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *Alert) bool {
		return a.ProjectID == nil
	})).Return(nil)

	alert, err := svc.Create(context.Background(), &CreateAlertRequest{
		Title:    "quarterly reporting window open",
		Severity: "Info",
	})
	require.NoError(t, err)
	assert.Nil(t, alert.ProjectID)
}

func TestAcknowledgeAlert(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&Alert{ID: id, Status: StatusOpen}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(a *Alert) bool {
		return a.Status == StatusAcknowledged
	})).Return(nil)

	status := string(StatusAcknowledged)
	alert, err := svc.Update(context.Background(), id, &UpdateAlertRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, StatusAcknowledged, alert.Status)
}

func TestUpdateAlertNotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, nil)

	status := string(StatusResolved)
	_, err := svc.Update(context.Background(), id, &UpdateAlertRequest{Status: &status})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
