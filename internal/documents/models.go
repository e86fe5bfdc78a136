package documents

import (
	"time"

	"github.com/google/uuid"
)

type DocumentType string

const (
	TypeUtilizationCertificate DocumentType = "UtilizationCertificate"
	TypeSanctionOrder          DocumentType = "SanctionOrder"
	TypeProgressReport         DocumentType = "ProgressReport"
	TypeSitePhoto              DocumentType = "SitePhoto"
	TypeOther                  DocumentType = "Other"
)

// Document is uploaded file metadata. The file itself lives on local disk
// under the uploads directory and is served statically at /uploads.
type Document struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	ProjectID    uuid.UUID    `json:"project_id" db:"project_id"`
	Name         string       `json:"name" db:"name"`
	Description  string       `json:"description" db:"description"`
	DocumentType DocumentType `json:"document_type" db:"document_type"`
	StoredName   string       `json:"stored_name" db:"stored_name"`
	FileSize     int64        `json:"file_size" db:"file_size"`
	ContentType  string       `json:"content_type" db:"content_type"`
	UploadedBy   *uuid.UUID   `json:"uploaded_by,omitempty" db:"uploaded_by"`
	UploadedAt   time.Time    `json:"uploaded_at" db:"uploaded_at"`
}
