package documents

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/pkg/apperr"
	"pm-ajay/monitoring-backend/pkg/validate"
)

// UploadRequest carries one multipart upload into the service.
type UploadRequest struct {
	ProjectID    uuid.UUID
	Name         string
	Description  string
	DocumentType DocumentType
	ContentType  string
	Content      io.Reader
	UploadedBy   *uuid.UUID
}

type UpdateDocumentRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DocumentType *string `json:"document_type" validate:"omitempty,oneof=UtilizationCertificate SanctionOrder ProgressReport SitePhoto Other"`
}

// Service provides document upload and metadata CRUD.
type Service struct {
	repo   Repository
	store  *DiskStore
	logger *zap.Logger
}

// NewService creates a new documents service
func NewService(repo Repository, store *DiskStore, logger *zap.Logger) *Service {
	return &Service{repo: repo, store: store, logger: logger}
}

func (s *Service) Upload(ctx context.Context, req UploadRequest) (*Document, error) {
	if req.Name == "" {
		return nil, apperr.Upload("file is required")
	}

	docType := req.DocumentType
	if docType == "" {
		docType = TypeOther
	}
	switch docType {
	case TypeUtilizationCertificate, TypeSanctionOrder, TypeProgressReport, TypeSitePhoto, TypeOther:
	default:
		return nil, apperr.Validation("invalid document type", map[string]string{
			"document_type": "must be one of UtilizationCertificate, SanctionOrder, ProgressReport, SitePhoto, Other",
		})
	}

	storedName, size, err := s.store.Save(req.Name, req.Content)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		ID:           uuid.New(),
		ProjectID:    req.ProjectID,
		Name:         req.Name,
		Description:  req.Description,
		DocumentType: docType,
		StoredName:   storedName,
		FileSize:     size,
		ContentType:  req.ContentType,
		UploadedBy:   req.UploadedBy,
		UploadedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		// The metadata write failed; do not leave the file orphaned.
		if rmErr := s.store.Remove(storedName); rmErr != nil {
			s.logger.Warn("failed to remove orphaned upload",
				zap.String("stored_name", storedName), zap.Error(rmErr))
		}
		return nil, apperr.Internal("failed to save document metadata", err)
	}

	s.logger.Info("document uploaded",
		zap.String("document_id", doc.ID.String()),
		zap.String("project_id", doc.ProjectID.String()),
		zap.Int64("size", size))
	return doc, nil
}

func (s *Service) List(ctx context.Context, projectID uuid.UUID) ([]Document, error) {
	docs, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, apperr.Internal("failed to list documents", err)
	}
	return docs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load document", err)
	}
	if doc == nil {
		return nil, apperr.NotFound("document", id.String())
	}
	return doc, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateDocumentRequest) (*Document, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		doc.Name = *req.Name
	}
	if req.Description != nil {
		doc.Description = *req.Description
	}
	if req.DocumentType != nil {
		doc.DocumentType = DocumentType(*req.DocumentType)
	}

	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, apperr.Internal("failed to update document", err)
	}
	return doc, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete document", err)
	}
	if err := s.store.Remove(doc.StoredName); err != nil {
		s.logger.Warn("failed to remove stored file",
			zap.String("stored_name", doc.StoredName), zap.Error(err))
	}
	return nil
}
