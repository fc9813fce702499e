package dto

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PeriodSummary is a windowed total plus the raw entries inside the window.
type PeriodSummary struct {
	Total        decimal.Decimal `json:"total"`
	Transactions []EntryResponse `json:"transactions"`
}

// DashboardResponse is the body of GET /dashboard.
type DashboardResponse struct {
	TotalBalance       decimal.Decimal `json:"totalBalance"`
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	Last60DaysIncome   PeriodSummary   `json:"last60DaysIncome"`
	Last30DaysExpenses PeriodSummary   `json:"last30DaysExpenses"`
	RecentTransactions []EntryResponse `json:"recentTransactions"`
}

// ToDashboardResponse converts a domain.DashboardSummary to the response shape.
func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		TotalBalance:  s.TotalBalance,
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		Last60DaysIncome: PeriodSummary{
			Total:        s.Last60DaysIncomeTotal,
			Transactions: ToEntryResponseSlice(s.Last60DaysIncome),
		},
		Last30DaysExpenses: PeriodSummary{
			Total:        s.Last30DaysExpenseTotal,
			Transactions: ToEntryResponseSlice(s.Last30DaysExpenses),
		},
		RecentTransactions: ToEntryResponseSlice(s.RecentTransactions),
	}
}
