package reports

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pm-ajay/monitoring-backend/pkg/apperr"
)

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// FundFlow builds the fund-flow summary across all hierarchy levels.
func (s *Service) FundFlow(ctx context.Context) (*FundFlowSummary, error) {
	byLevel, err := s.repo.LevelTotals(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to aggregate fund flow by level", err)
	}
	byType, err := s.repo.TypeTotals(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to aggregate fund flow by type", err)
	}
	pendingUCs, err := s.repo.PendingUCCount(ctx)
	if err != nil {
		return nil, apperr.Internal("failed to count pending ucs", err)
	}

	total := decimal.Zero
	count := 0
	for _, tt := range byType {
		total = total.Add(tt.Amount)
		count += tt.Count
	}

	return &FundFlowSummary{
		GeneratedAt:  time.Now(),
		TotalAmount:  total,
		Transactions: count,
		PendingUCs:   pendingUCs,
		ByLevel:      byLevel,
		ByType:       byType,
	}, nil
}

// ExportFundFlow writes the fund-flow workbook to out.
func (s *Service) ExportFundFlow(ctx context.Context, out io.Writer) error {
	summary, err := s.FundFlow(ctx)
	if err != nil {
		return err
	}
	ledger, err := s.repo.Ledger(ctx)
	if err != nil {
		return apperr.Internal("failed to load transaction ledger", err)
	}

	wb := newLedgerWorkbook()
	if err := wb.writeSummary(summary); err != nil {
		return apperr.Internal("failed to build summary sheet", err)
	}
	if err := wb.writeLedger(ledger); err != nil {
		return apperr.Internal("failed to build ledger sheet", err)
	}
	if err := wb.writeTo(out); err != nil {
		return apperr.Internal("failed to write workbook", err)
	}

	s.logger.Info("fund flow export generated", zap.Int("ledger_rows", len(ledger)))
	return nil
}
