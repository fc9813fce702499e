package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddIncomeRequest is the body of POST /income/add.
type AddIncomeRequest struct {
	Icon   string          `json:"icon"`
	Source string          `json:"source" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required,nonneg"`
	Date   string          `json:"date" binding:"required"`
}

// AddExpenseRequest is the body of POST /expense/add.
type AddExpenseRequest struct {
	Icon     string          `json:"icon"`
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required,nonneg"`
	Date     string          `json:"date" binding:"required"`
}

// AddEntryRequest is the normalized form both add endpoints reduce to.
type AddEntryRequest struct {
	Icon   string
	Label  string
	Amount decimal.Decimal
	Date   string
}

// EntryResponse is the public view of a ledger entry. Income entries render
// their label as "source", expense entries as "category", matching the two
// request shapes.
type EntryResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Type      string          `json:"type"`
	Icon      string          `json:"icon,omitempty"`
	Source    string          `json:"source,omitempty"`
	Category  string          `json:"category,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToEntryResponse converts a domain.LedgerEntry to its public representation.
func ToEntryResponse(e domain.LedgerEntry) EntryResponse {
	resp := EntryResponse{
		ID:        e.EntryID,
		UserID:    e.UserID,
		Type:      string(e.Type),
		Icon:      e.Icon,
		Amount:    e.Amount,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}
	switch e.Type {
	case domain.Income:
		resp.Source = e.Label
	case domain.Expense:
		resp.Category = e.Label
	}
	return resp
}

// ToEntryResponseSlice converts a slice of domain entries.
func ToEntryResponseSlice(entries []domain.LedgerEntry) []EntryResponse {
	resps := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resps[i] = ToEntryResponse(e)
	}
	return resps
}

// DeleteEntryResponse echoes the removed entry.
type DeleteEntryResponse struct {
	Message string `json:"message"`
}
