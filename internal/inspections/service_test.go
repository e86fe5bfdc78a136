package inspections

import (
	"context"
	"testing"
	"time"

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

func (m *MockRepository) Create(ctx context.Context, i *Inspection) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Inspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Inspection), args.Error(1)
}

func (m *MockRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]Inspection, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]Inspection), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, i *Inspection) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateInspection(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	projectID := uuid.New()
	date := time.Now()
	rating := 4

	repo.On("Create", mock.Anything, mock.MatchedBy(func(i *Inspection) bool {
		return i.ProjectID == projectID && i.Inspector == "District Collector" && *i.Rating == 4
	})).Return(nil)

	inspection, err := svc.Create(context.Background(), projectID, &CreateInspectionRequest{
		Inspector: "District Collector",
		Date:      &date,
		Findings:  "boundary wall incomplete",
		Rating:    &rating,
	})
	require.NoError(t, err)

	// Status defaults to Scheduled when omitted.
	assert.Equal(t, StatusScheduled, inspection.Status)
	repo.AssertExpectations(t)
}

func TestCreateInspectionValidation(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	date := time.Now()
	badRating := 6
	_, err := svc.Create(context.Background(), uuid.New(), &CreateInspectionRequest{
		Inspector: "DC",
		Date:      &date,
		Rating:    &badRating,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Create(context.Background(), uuid.New(), &CreateInspectionRequest{
		Date: &date,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUpdateInspectionStatus(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&Inspection{
		ID:     id,
		Status: StatusScheduled,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(i *Inspection) bool {
		return i.Status == StatusFlagged && i.Findings == "funds diverted"
	})).Return(nil)

	status := string(StatusFlagged)
	findings := "funds diverted"
	inspection, err := svc.Update(context.Background(), id, &UpdateInspectionRequest{
		Status:   &status,
		Findings: &findings,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusFlagged, inspection.Status)
	repo.AssertExpectations(t)
}

func TestGetInspectionNotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, nil)

	_, err := svc.Get(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteInspection(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, zap.NewNop())

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&Inspection{ID: id}, nil)
	repo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}
