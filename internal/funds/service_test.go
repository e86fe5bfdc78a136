package funds

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/internal/hierarchy"
	"pm-ajay/monitoring-backend/pkg/apperr"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, tx *Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Transaction), args.Error(1)
}

func (m *MockRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]Transaction, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]Transaction), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Transaction), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, tx *Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRecalculator is a mock implementation of the Recalculator interface
type MockRecalculator struct {
	mock.Mock
}

func (m *MockRecalculator) Recalculate(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func datePtr(t time.Time) *time.Time { return &t }

func TestRecordDerivesHopFromLevel(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStats := new(MockRecalculator)
	service := NewService(mockRepo, mockStats, zap.NewNop())
	ctx := context.Background()
	projectID := uuid.New()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*funds.Transaction")).Return(nil)
	mockStats.On("Recalculate", ctx, projectID).Return(nil)

	tx, err := service.Record(ctx, &projectID, &RecordRequest{
		Amount:    decimal.NewFromInt(200_000),
		FromLevel: "Agency",
		Date:      datePtr(time.Now()),
		Status:    "Completed",
	})

	require.NoError(t, err)
	assert.Equal(t, hierarchy.LevelGround, tx.ToLevel)
	assert.Equal(t, hierarchy.TypeUtilization, tx.Type)
	assert.Equal(t, UCPending, tx.UCStatus)
	mockRepo.AssertExpectations(t)
	mockStats.AssertExpectations(t)
}

func TestRecordGlobalSkipsRecalculation(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStats := new(MockRecalculator)
	service := NewService(mockRepo, mockStats, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*funds.Transaction")).Return(nil)

	tx, err := service.Record(ctx, nil, &RecordRequest{
		Amount:    decimal.NewFromInt(5_000_000),
		FromLevel: "Ministry",
		Date:      datePtr(time.Now()),
	})

	require.NoError(t, err)
	assert.Nil(t, tx.ProjectID)
	assert.Equal(t, hierarchy.TypeMinistryAllocation, tx.Type)
	mockStats.AssertNotCalled(t, "Recalculate", mock.Anything, mock.Anything)
}

func TestRecordRejectsGroundOrigin(t *testing.T) {
	service := NewService(new(MockRepository), new(MockRecalculator), zap.NewNop())
	ctx := context.Background()

	_, err := service.Record(ctx, nil, &RecordRequest{
		Amount:    decimal.NewFromInt(100),
		FromLevel: "Ground",
		Date:      datePtr(time.Now()),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestRecordRejectsMismatchedHop(t *testing.T) {
	service := NewService(new(MockRepository), new(MockRecalculator), zap.NewNop())
	ctx := context.Background()

	_, err := service.Record(ctx, nil, &RecordRequest{
		Amount:    decimal.NewFromInt(100),
		FromLevel: "Ministry",
		ToLevel:   "Agency",
		Date:      datePtr(time.Now()),
	})
	require.Error(t, err)
	assert.Contains(t, apperr.FieldsOf(err), "to_level")

	_, err = service.Record(ctx, nil, &RecordRequest{
		Amount:    decimal.NewFromInt(100),
		FromLevel: "Ministry",
		Type:      "Utilization",
		Date:      datePtr(time.Now()),
	})
	require.Error(t, err)
	assert.Contains(t, apperr.FieldsOf(err), "type")
}

func TestRecordRejectsNonPositiveAmount(t *testing.T) {
	service := NewService(new(MockRepository), new(MockRecalculator), zap.NewNop())
	ctx := context.Background()

	_, err := service.Record(ctx, nil, &RecordRequest{
		Amount:    decimal.Zero,
		FromLevel: "State",
		Date:      datePtr(time.Now()),
	})
	require.Error(t, err)
	assert.Contains(t, apperr.FieldsOf(err), "amount")
}

func TestRecordNormalizesUTR(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockRecalculator), zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*funds.Transaction")).Return(nil)

	tx, err := service.Record(ctx, nil, &RecordRequest{
		Amount:    decimal.NewFromInt(100),
		FromLevel: "State",
		Date:      datePtr(time.Now()),
		UTR:       "  utr123abc ",
	})
	require.NoError(t, err)
	require.NotNil(t, tx.UTR)
	assert.Equal(t, "UTR123ABC", *tx.UTR)

	_, err = service.Record(ctx, nil, &RecordRequest{
		Amount:    decimal.NewFromInt(100),
		FromLevel: "State",
		Date:      datePtr(time.Now()),
		UTR:       "utr-123",
	})
	require.Error(t, err)
	assert.Contains(t, apperr.FieldsOf(err), "utr")
}

func TestUpdateTriggersRecalculationForOwnedTransaction(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStats := new(MockRecalculator)
	service := NewService(mockRepo, mockStats, zap.NewNop())
	ctx := context.Background()
	projectID := uuid.New()
	txID := uuid.New()

	existing := &Transaction{
		ID:        txID,
		ProjectID: &projectID,
		Amount:    decimal.NewFromInt(100),
		FromLevel: hierarchy.LevelDistrict,
		ToLevel:   hierarchy.LevelAgency,
		Type:      hierarchy.TypeDistrictAllocation,
		Date:      time.Now(),
		Status:    StatusPending,
		UCStatus:  UCPending,
	}

	mockRepo.On("GetByID", ctx, txID).Return(existing, nil)
	mockRepo.On("Update", ctx, mock.AnythingOfType("*funds.Transaction")).Return(nil)
	mockStats.On("Recalculate", ctx, projectID).Return(nil)

	status := "Completed"
	tx, err := service.Update(ctx, txID, &UpdateRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, tx.Status)
	mockStats.AssertExpectations(t)
}

func TestUpdateNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockRecalculator), zap.NewNop())
	ctx := context.Background()
	txID := uuid.New()

	mockRepo.On("GetByID", ctx, txID).Return(nil, nil)

	_, err := service.Update(ctx, txID, &UpdateRequest{})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteTriggersRecalculation(t *testing.T) {
	mockRepo := new(MockRepository)
	mockStats := new(MockRecalculator)
	service := NewService(mockRepo, mockStats, zap.NewNop())
	ctx := context.Background()
	projectID := uuid.New()
	txID := uuid.New()

	mockRepo.On("GetByID", ctx, txID).Return(&Transaction{ID: txID, ProjectID: &projectID}, nil)
	mockRepo.On("Delete", ctx, txID).Return(nil)
	mockStats.On("Recalculate", ctx, projectID).Return(nil)

	require.NoError(t, service.Delete(ctx, txID))
	mockStats.AssertExpectations(t)
}

func TestListScopesByProject(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, new(MockRecalculator), zap.NewNop())
	ctx := context.Background()
	projectID := uuid.New()

	mockRepo.On("ListByProject", ctx, projectID).Return([]Transaction{{ID: uuid.New()}}, nil)
	mockRepo.On("ListAll", ctx).Return([]Transaction{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	scoped, err := service.List(ctx, &projectID)
	require.NoError(t, err)
	assert.Len(t, scoped, 1)

	all, err := service.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
