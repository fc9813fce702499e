package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType distinguishes the two ledger entry categories. They are
// structurally identical; the type drives which label field clients see.
type EntryType string

const (
	Income  EntryType = "INCOME"
	Expense EntryType = "EXPENSE"
)

// LedgerEntry is a single income or expense record. Entries are immutable
// after creation except for deletion, and always belong to exactly one user.
type LedgerEntry struct {
	EntryID   string          `json:"id"`
	UserID    string          `json:"userId"`
	Type      EntryType       `json:"type"`
	Icon      string          `json:"icon,omitempty"`
	Label     string          `json:"label"` // source for income, category for expense
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"createdAt"`
}
