package funds

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/internal/hierarchy"
	"pm-ajay/monitoring-backend/pkg/apperr"
	"pm-ajay/monitoring-backend/pkg/validate"
)

// Recalculator re-derives a project's statistics after a ledger mutation.
type Recalculator interface {
	Recalculate(ctx context.Context, projectID uuid.UUID) error
}

// RecordRequest is the payload for recording a transaction. ToLevel and
// Type may be omitted; they are derived from FromLevel. If supplied they
// must match the hierarchy table.
type RecordRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	FromLevel       string          `json:"from_level" validate:"required,oneof=Ministry State District Agency"`
	ToLevel         string          `json:"to_level"`
	Type            string          `json:"type"`
	Date            *time.Time      `json:"date" validate:"required"`
	Status          string          `json:"status" validate:"omitempty,oneof=Pending Completed Approved Failed"`
	UTR             string          `json:"utr"`
	UCStatus        string          `json:"uc_status" validate:"omitempty,oneof=Pending Submitted Approved"`
	ProofDocumentID *uuid.UUID      `json:"proof_document_id"`
	Remarks         string          `json:"remarks"`
}

// UpdateRequest carries partial edits to a transaction.
type UpdateRequest struct {
	Amount          *decimal.Decimal `json:"amount"`
	FromLevel       *string          `json:"from_level" validate:"omitempty,oneof=Ministry State District Agency"`
	Date            *time.Time       `json:"date"`
	Status          *string          `json:"status" validate:"omitempty,oneof=Pending Completed Approved Failed"`
	UTR             *string          `json:"utr"`
	UCStatus        *string          `json:"uc_status" validate:"omitempty,oneof=Pending Submitted Approved"`
	ProofDocumentID *uuid.UUID       `json:"proof_document_id"`
	Remarks         *string          `json:"remarks"`
}

// Service provides fund ledger operations.
type Service struct {
	repo   Repository
	stats  Recalculator
	logger *zap.Logger
}

// NewService creates a new fund ledger service
func NewService(repo Repository, stats Recalculator, logger *zap.Logger) *Service {
	return &Service{repo: repo, stats: stats, logger: logger}
}

var utrPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// normalizeUTR uppercases and trims a bank reference; anything beyond
// alphanumerics is rejected.
func normalizeUTR(raw string) (string, error) {
	utr := strings.ToUpper(strings.TrimSpace(raw))
	if utr == "" {
		return "", nil
	}
	if !utrPattern.MatchString(utr) {
		return "", apperr.Validation("request validation failed", map[string]string{
			"utr": "must be alphanumeric",
		})
	}
	return utr, nil
}

// Record inserts a transaction. With a project id it joins that project's
// ledger and triggers recalculation; without one it is stored as global.
func (s *Service) Record(ctx context.Context, projectID *uuid.UUID, req *RecordRequest) (*Transaction, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, apperr.Validation("request validation failed", map[string]string{
			"amount": "must be greater than 0",
		})
	}

	fromLevel := hierarchy.Level(req.FromLevel)
	toLevel, txType, err := hierarchy.NextHop(fromLevel)
	if err != nil {
		return nil, apperr.Validation(err.Error(), nil)
	}
	if req.ToLevel != "" && hierarchy.Level(req.ToLevel) != toLevel {
		return nil, apperr.Validation("request validation failed", map[string]string{
			"to_level": "funds from " + req.FromLevel + " must go to " + string(toLevel),
		})
	}
	if req.Type != "" && req.Type != txType {
		return nil, apperr.Validation("request validation failed", map[string]string{
			"type": "transactions from " + req.FromLevel + " must be of type " + txType,
		})
	}

	utr, err := normalizeUTR(req.UTR)
	if err != nil {
		return nil, err
	}

	status := TransactionStatus(req.Status)
	if status == "" {
		status = StatusPending
	}
	ucStatus := UCStatus(req.UCStatus)
	if ucStatus == "" {
		ucStatus = UCPending
	}

	now := time.Now()
	tx := &Transaction{
		ID:              uuid.New(),
		ProjectID:       projectID,
		Amount:          req.Amount,
		FromLevel:       fromLevel,
		ToLevel:         toLevel,
		Type:            txType,
		Date:            *req.Date,
		Status:          status,
		UCStatus:        ucStatus,
		ProofDocumentID: req.ProofDocumentID,
		Remarks:         req.Remarks,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if utr != "" {
		tx.UTR = &utr
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, apperr.Internal("failed to record transaction", err)
	}

	s.logger.Info("fund transaction recorded",
		zap.String("transaction_id", tx.ID.String()),
		zap.String("type", tx.Type),
		zap.String("amount", tx.Amount.String()))

	if err := s.recalculate(ctx, tx.ProjectID); err != nil {
		return nil, err
	}
	return tx, nil
}

// List returns a project's transactions, or the whole ledger when no
// project is given, newest first.
func (s *Service) List(ctx context.Context, projectID *uuid.UUID) ([]Transaction, error) {
	var (
		txs []Transaction
		err error
	)
	if projectID != nil {
		txs, err = s.repo.ListByProject(ctx, *projectID)
	} else {
		txs, err = s.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, apperr.Internal("failed to list transactions", err)
	}
	return txs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("failed to load transaction", err)
	}
	if tx == nil {
		return nil, apperr.NotFound("transaction", id.String())
	}
	return tx, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Transaction, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	tx, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, apperr.Validation("request validation failed", map[string]string{
				"amount": "must be greater than 0",
			})
		}
		tx.Amount = *req.Amount
	}
	if req.FromLevel != nil {
		toLevel, txType, err := hierarchy.NextHop(hierarchy.Level(*req.FromLevel))
		if err != nil {
			return nil, apperr.Validation(err.Error(), nil)
		}
		tx.FromLevel = hierarchy.Level(*req.FromLevel)
		tx.ToLevel = toLevel
		tx.Type = txType
	}
	if req.Date != nil {
		tx.Date = *req.Date
	}
	if req.Status != nil {
		tx.Status = TransactionStatus(*req.Status)
	}
	if req.UTR != nil {
		utr, err := normalizeUTR(*req.UTR)
		if err != nil {
			return nil, err
		}
		if utr == "" {
			tx.UTR = nil
		} else {
			tx.UTR = &utr
		}
	}
	if req.UCStatus != nil {
		tx.UCStatus = UCStatus(*req.UCStatus)
	}
	if req.ProofDocumentID != nil {
		tx.ProofDocumentID = req.ProofDocumentID
	}
	if req.Remarks != nil {
		tx.Remarks = *req.Remarks
	}
	tx.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, tx); err != nil {
		return nil, apperr.Internal("failed to update transaction", err)
	}

	if err := s.recalculate(ctx, tx.ProjectID); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("failed to delete transaction", err)
	}
	return s.recalculate(ctx, tx.ProjectID)
}

func (s *Service) recalculate(ctx context.Context, projectID *uuid.UUID) error {
	if projectID == nil {
		return nil
	}
	if err := s.stats.Recalculate(ctx, *projectID); err != nil {
		return apperr.Internal("failed to recalculate project stats", err)
	}
	return nil
}
