package documents

import (
	"context"
	"os"
	"path/filepath"
	"strings"
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

func (m *MockRepository) Create(ctx context.Context, d *Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Document), args.Error(1)
}

func (m *MockRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]Document, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]Document), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, d *Document) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService(t *testing.T, maxSize int64) (*Service, *MockRepository, *DiskStore) {
	t.Helper()
	store, err := NewDiskStore(t.TempDir(), maxSize)
	require.NoError(t, err)
	repo := new(MockRepository)
	return NewService(repo, store, zap.NewNop()), repo, store
}

func TestUpload(t *testing.T) {
	svc, repo, store := newTestService(t, 1<<20)
	projectID := uuid.New()

	repo.On("Create", mock.Anything, mock.MatchedBy(func(d *Document) bool {
		return d.ProjectID == projectID && d.Name == "uc-q1.pdf" && d.FileSize == 11
	})).Return(nil)

	doc, err := svc.Upload(context.Background(), UploadRequest{
		ProjectID:    projectID,
		Name:         "uc-q1.pdf",
		DocumentType: TypeUtilizationCertificate,
		ContentType:  "application/pdf",
		Content:      strings.NewReader("hello world"),
	})
	require.NoError(t, err)

	assert.Equal(t, TypeUtilizationCertificate, doc.DocumentType)
	assert.Equal(t, int64(11), doc.FileSize)
	assert.Equal(t, ".pdf", filepath.Ext(doc.StoredName))

	data, err := os.ReadFile(filepath.Join(store.Dir(), doc.StoredName))
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
	repo.AssertExpectations(t)
}

func TestUploadDefaultsTypeToOther(t *testing.T) {
	svc, repo, _ := newTestService(t, 1<<20)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	doc, err := svc.Upload(context.Background(), UploadRequest{
		ProjectID: uuid.New(),
		Name:      "notes.txt",
		Content:   strings.NewReader("x"),
	})
	require.NoError(t, err)
	assert.Equal(t, TypeOther, doc.DocumentType)
}

func TestUploadRejectsUnknownType(t *testing.T) {
	svc, _, _ := newTestService(t, 1<<20)

	_, err := svc.Upload(context.Background(), UploadRequest{
		ProjectID:    uuid.New(),
		Name:         "notes.txt",
		DocumentType: "Invoice",
		Content:      strings.NewReader("x"),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc, repo, store := newTestService(t, 10)

	_, err := svc.Upload(context.Background(), UploadRequest{
		ProjectID: uuid.New(),
		Name:      "big.bin",
		Content:   strings.NewReader(strings.Repeat("a", 11)),
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpload, apperr.KindOf(err))

	// Nothing should be left on disk and no metadata written.
	entries, readErr := os.ReadDir(store.Dir())
	require.NoError(t, readErr)
	assert.Empty(t, entries)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUploadAtExactLimit(t *testing.T) {
	svc, repo, _ := newTestService(t, 10)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	doc, err := svc.Upload(context.Background(), UploadRequest{
		ProjectID: uuid.New(),
		Name:      "exact.bin",
		Content:   strings.NewReader(strings.Repeat("a", 10)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), doc.FileSize)
}

func TestUploadRemovesFileWhenMetadataFails(t *testing.T) {
	svc, repo, store := newTestService(t, 1<<20)

	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := svc.Upload(context.Background(), UploadRequest{
		ProjectID: uuid.New(),
		Name:      "orphan.pdf",
		Content:   strings.NewReader("x"),
	})
	require.Error(t, err)

	entries, readErr := os.ReadDir(store.Dir())
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestDeleteRemovesStoredFile(t *testing.T) {
	svc, repo, store := newTestService(t, 1<<20)

	storedName, _, err := store.Save("report.pdf", strings.NewReader("content"))
	require.NoError(t, err)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&Document{ID: id, StoredName: storedName}, nil)
	repo.On("Delete", mock.Anything, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))

	_, statErr := os.Stat(filepath.Join(store.Dir(), storedName))
	assert.True(t, os.IsNotExist(statErr))
	repo.AssertExpectations(t)
}

func TestDeleteNotFound(t *testing.T) {
	svc, repo, _ := newTestService(t, 1<<20)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, nil)

	err := svc.Delete(context.Background(), id)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUpdateMetadata(t *testing.T) {
	svc, repo, _ := newTestService(t, 1<<20)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(&Document{
		ID:           id,
		Name:         "old.pdf",
		DocumentType: TypeOther,
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(d *Document) bool {
		return d.Name == "sanction-order.pdf" && d.DocumentType == TypeSanctionOrder
	})).Return(nil)

	name := "sanction-order.pdf"
	docType := string(TypeSanctionOrder)
	doc, err := svc.Update(context.Background(), id, &UpdateDocumentRequest{
		Name:         &name,
		DocumentType: &docType,
	})
	require.NoError(t, err)
	assert.Equal(t, TypeSanctionOrder, doc.DocumentType)
	repo.AssertExpectations(t)
}
