package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/apperrors"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/domain"
	portsrepo "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/repositories"
	portssvc "github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/core/ports/services"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/utils"
	"github.com/bnmishra1541981-prog/prime-web-erp-sub001/internal/utils/accounting"
)

// reportingService derives financial statements from ledgers and voucher
// entries. Every report is computed from a fresh read; nothing is cached
// between calls.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository

	// Per-company latest-wins runners, one per report surface. A report
	// computed from a snapshot that a newer request has since superseded
	// is discarded and recomputed rather than returned.
	balanceSheetRunners  sync.Map // companyID -> *ReportRunner[*domain.BalanceSheetReport]
	profitAndLossRunners sync.Map // companyID -> *ReportRunner[*domain.PAndLReport]
	trialBalanceRunners  sync.Map // companyID -> *ReportRunner[*domain.TrialBalanceReport]
}

// runnerFor returns the company's runner from m, creating it on first use.
func runnerFor[T any](m *sync.Map, companyID string) *ReportRunner[T] {
	if r, ok := m.Load(companyID); ok {
		return r.(*ReportRunner[T])
	}
	r, _ := m.LoadOrStore(companyID, NewReportRunner[T]())
	return r.(*ReportRunner[T])
}

// runLatest drives fn through the runner until its result is the newest for
// the company. A superseded result is never returned; the computation is
// repeated against a fresh snapshot instead.
func runLatest[T any](ctx context.Context, r *ReportRunner[T], fn func(ctx context.Context) (T, error)) (T, error) {
	for {
		result, ok, err := r.Run(ctx, fn)
		if err != nil {
			var zero T
			return zero, err
		}
		if ok {
			return result, nil
		}
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
	}
}

// ReportingServiceOption is a functional option for configuring the reporting service.
type ReportingServiceOption func(*reportingService)

// WithReportingCompanyAuthorizer sets the company authorizer for the reporting service.
func WithReportingCompanyAuthorizer(authorizer portssvc.CompanyAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.CompanyAuthorizer = authorizer
	}
}

// NewReportingService creates a new reporting service with the provided options.
func NewReportingService(rr portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: rr,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// BalanceSheet computes the grouped balance sheet as of a date. Income and
// expense ledgers are excluded; the gap between sides becomes the
// profit-or-loss balancing line, and the grand total is spelled out in
// words (Indian numbering) for the footer.
func (s *reportingService) BalanceSheet(ctx context.Context, companyID string, asOf time.Time, userID string) (*domain.BalanceSheetReport, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	runner := runnerFor[*domain.BalanceSheetReport](&s.balanceSheetRunners, companyID)
	return runLatest(ctx, runner, func(ctx context.Context) (*domain.BalanceSheetReport, error) {
		return s.buildBalanceSheet(ctx, companyID, asOf)
	})
}

func (s *reportingService) buildBalanceSheet(ctx context.Context, companyID string, asOf time.Time) (*domain.BalanceSheetReport, error) {
	// Entry lines span every ledger touched by a voucher, so the known-set
	// check must run against the full chart of accounts even though only
	// liability and asset ledgers appear on the statement.
	ledgers, err := s.reportingRepo.ListLedgers(ctx, companyID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	lines, err := s.reportingRepo.ListEntryLinesAsOf(ctx, companyID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries as of %s: %w", asOf.Format("2006-01-02"), err)
	}

	byLedger, err := s.bucketLines(ledgers, lines)
	if err != nil {
		return nil, err
	}

	var liabilities, assets []domain.LedgerBalance
	for _, ledger := range ledgers {
		cls, ok := domain.Classify(ledger.LedgerType)
		if !ok || (cls.Section != domain.SectionLiability && cls.Section != domain.SectionAsset) {
			continue
		}
		balance, err := accounting.EvaluateBalanceAsOf(ledger, byLedger[ledger.LedgerID], asOf)
		if err != nil {
			return nil, err
		}
		lb := domain.LedgerBalance{Ledger: ledger, Balance: balance}
		if cls.Section == domain.SectionLiability {
			liabilities = append(liabilities, lb)
		} else {
			assets = append(assets, lb)
		}
	}

	report := &domain.BalanceSheetReport{
		LiabilityGroups: accounting.GroupBalances(liabilities, domain.SectionLiability, domain.LiabilityGroupOrder),
		AssetGroups:     accounting.GroupBalances(assets, domain.SectionAsset, domain.AssetGroupOrder),
	}
	report.TotalLiabilities = accounting.SumGroups(report.LiabilityGroups)
	report.TotalAssets = accounting.SumGroups(report.AssetGroups)
	report.Balancing = accounting.BalanceSheetFigure(report.TotalLiabilities, report.TotalAssets)
	liabDisplay, _ := accounting.ApplyBalanceSheetFigure(report.TotalLiabilities, report.TotalAssets, report.Balancing)
	report.DisplayTotal = liabDisplay

	words, err := utils.RupeesInWords(report.DisplayTotal.Round(0))
	if err != nil {
		return nil, err
	}
	report.AmountInWords = words

	s.LogInfo(ctx, "Balance sheet generated",
		slog.String("company_id", companyID),
		slog.String("as_of", asOf.Format("2006-01-02")),
		slog.String("display_total", report.DisplayTotal.String()))
	return report, nil
}

// ProfitAndLoss computes the grouped P&L statement over [from, to].
func (s *reportingService) ProfitAndLoss(ctx context.Context, companyID string, from, to time.Time, userID string) (*domain.PAndLReport, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end %s precedes start %s", apperrors.ErrValidation, to.Format("2006-01-02"), from.Format("2006-01-02"))
	}
	runner := runnerFor[*domain.PAndLReport](&s.profitAndLossRunners, companyID)
	return runLatest(ctx, runner, func(ctx context.Context) (*domain.PAndLReport, error) {
		return s.buildProfitAndLoss(ctx, companyID, from, to)
	})
}

func (s *reportingService) buildProfitAndLoss(ctx context.Context, companyID string, from, to time.Time) (*domain.PAndLReport, error) {
	ledgers, err := s.reportingRepo.ListLedgers(ctx, companyID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	lines, err := s.reportingRepo.ListEntryLinesBetween(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries between %s and %s: %w", from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}

	byLedger, err := s.bucketLines(ledgers, lines)
	if err != nil {
		return nil, err
	}

	var income, expense []domain.LedgerBalance
	for _, ledger := range ledgers {
		cls, ok := domain.Classify(ledger.LedgerType)
		if !ok || (cls.Section != domain.SectionIncome && cls.Section != domain.SectionExpense) {
			continue
		}
		balance, err := accounting.EvaluateBalanceBetween(ledger, byLedger[ledger.LedgerID], from, to)
		if err != nil {
			return nil, err
		}
		lb := domain.LedgerBalance{Ledger: ledger, Balance: balance}
		if cls.Section == domain.SectionIncome {
			income = append(income, lb)
		} else {
			expense = append(expense, lb)
		}
	}

	report := &domain.PAndLReport{
		ExpenseGroups: accounting.GroupBalances(expense, domain.SectionExpense, domain.ExpenseGroupOrder),
		IncomeGroups:  accounting.GroupBalances(income, domain.SectionIncome, domain.IncomeGroupOrder),
	}
	report.TotalExpense = accounting.SumGroups(report.ExpenseGroups)
	report.TotalIncome = accounting.SumGroups(report.IncomeGroups)
	report.Balancing = accounting.ProfitAndLossFigure(report.TotalIncome, report.TotalExpense)
	expDisplay, _ := accounting.ApplyProfitAndLossFigure(report.TotalExpense, report.TotalIncome, report.Balancing)
	report.DisplayTotal = expDisplay

	s.LogInfo(ctx, "Profit and loss generated",
		slog.String("company_id", companyID),
		slog.String("from", from.Format("2006-01-02")),
		slog.String("to", to.Format("2006-01-02")),
		slog.String("display_total", report.DisplayTotal.String()))
	return report, nil
}

// TrialBalance computes per-ledger period totals for every ledger of the
// company, with footer sums.
func (s *reportingService) TrialBalance(ctx context.Context, companyID string, from, to time.Time, userID string) (*domain.TrialBalanceReport, error) {
	if err := s.AuthorizeUser(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end %s precedes start %s", apperrors.ErrValidation, to.Format("2006-01-02"), from.Format("2006-01-02"))
	}
	runner := runnerFor[*domain.TrialBalanceReport](&s.trialBalanceRunners, companyID)
	return runLatest(ctx, runner, func(ctx context.Context) (*domain.TrialBalanceReport, error) {
		return s.buildTrialBalance(ctx, companyID, from, to)
	})
}

func (s *reportingService) buildTrialBalance(ctx context.Context, companyID string, from, to time.Time) (*domain.TrialBalanceReport, error) {
	ledgers, err := s.reportingRepo.ListLedgers(ctx, companyID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledgers: %w", err)
	}
	lines, err := s.reportingRepo.ListEntryLinesBetween(ctx, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries between %s and %s: %w", from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}

	report, err := accounting.TrialBalance(ledgers, lines, from, to)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Trial balance generated",
		slog.String("company_id", companyID),
		slog.Int("row_count", len(report.Rows)))
	return &report, nil
}

// bucketLines splits entry lines per ledger. A line referencing a ledger
// outside the given set is a data inconsistency and aborts the report.
func (s *reportingService) bucketLines(ledgers []domain.Ledger, lines []domain.EntryLine) (map[string][]domain.EntryLine, error) {
	known := make(map[string]bool, len(ledgers))
	for _, l := range ledgers {
		known[l.LedgerID] = true
	}
	byLedger := make(map[string][]domain.EntryLine, len(ledgers))
	for _, line := range lines {
		if !known[line.LedgerID] {
			return nil, fmt.Errorf("%w: entry %s references unknown ledger %s", apperrors.ErrDataSource, line.EntryID, line.LedgerID)
		}
		byLedger[line.LedgerID] = append(byLedger[line.LedgerID], line)
	}
	return byLedger, nil
}
