package domain

import "github.com/shopspring/decimal"

// DashboardSummary aggregates a user's ledger for the dashboard endpoint.
// Totals default to zero when no entries match; TotalBalance may be negative.
type DashboardSummary struct {
	TotalBalance  decimal.Decimal
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal

	Last60DaysIncomeTotal decimal.Decimal
	Last60DaysIncome      []LedgerEntry

	Last30DaysExpenseTotal decimal.Decimal
	Last30DaysExpenses     []LedgerEntry

	// RecentTransactions merges the most recent entries of both types,
	// sorted descending by date, at most ten items.
	RecentTransactions []LedgerEntry
}
