package services

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	incomeWindowDays  = 60
	expenseWindowDays = 30
	recentPerType     = 5
)

type dashboardService struct {
	ledgerRepo portsrepo.LedgerRepository
}

// NewDashboardService creates the aggregator behind GET /dashboard.
func NewDashboardService(ledgerRepo portsrepo.LedgerRepository) portssvc.DashboardSvcFacade {
	return &dashboardService{ledgerRepo: ledgerRepo}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// GetSummary fans the independent sub-queries out concurrently and joins
// them. Any failure fails the whole summary; there is no partial result.
func (s *dashboardService) GetSummary(ctx context.Context, userID string) (*domain.DashboardSummary, error) {
	now := time.Now()
	incomeFloor := now.AddDate(0, 0, -incomeWindowDays)
	expenseFloor := now.AddDate(0, 0, -expenseWindowDays)

	var (
		totalIncome    decimal.Decimal
		totalExpenses  decimal.Decimal
		recentIncome   []domain.LedgerEntry
		recentExpenses []domain.LedgerEntry
		windowIncome   []domain.LedgerEntry
		windowExpenses []domain.LedgerEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalIncome, err = s.ledgerRepo.SumAmounts(gctx, userID, domain.Income, nil)
		return err
	})
	g.Go(func() error {
		var err error
		totalExpenses, err = s.ledgerRepo.SumAmounts(gctx, userID, domain.Expense, nil)
		return err
	})
	g.Go(func() error {
		var err error
		windowIncome, err = s.ledgerRepo.FindEntriesSince(gctx, userID, domain.Income, incomeFloor)
		return err
	})
	g.Go(func() error {
		var err error
		windowExpenses, err = s.ledgerRepo.FindEntriesSince(gctx, userID, domain.Expense, expenseFloor)
		return err
	})
	g.Go(func() error {
		var err error
		recentIncome, err = s.ledgerRepo.FindRecentEntries(gctx, userID, domain.Income, recentPerType)
		return err
	})
	g.Go(func() error {
		var err error
		recentExpenses, err = s.ledgerRepo.FindRecentEntries(gctx, userID, domain.Expense, recentPerType)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &domain.DashboardSummary{
		TotalIncome:            totalIncome,
		TotalExpenses:          totalExpenses,
		TotalBalance:           totalIncome.Sub(totalExpenses),
		Last60DaysIncome:       windowIncome,
		Last60DaysIncomeTotal:  sumEntries(windowIncome),
		Last30DaysExpenses:     windowExpenses,
		Last30DaysExpenseTotal: sumEntries(windowExpenses),
		RecentTransactions:     mergeRecent(recentIncome, recentExpenses),
	}
	return summary, nil
}

func sumEntries(entries []domain.LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// mergeRecent interleaves the per-type recent lists into one list sorted
// descending by date. Each input is already capped at recentPerType, so the
// result never exceeds ten items.
func mergeRecent(income, expenses []domain.LedgerEntry) []domain.LedgerEntry {
	merged := make([]domain.LedgerEntry, 0, len(income)+len(expenses))
	merged = append(merged, income...)
	merged = append(merged, expenses...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date)
	})
	return merged
}
