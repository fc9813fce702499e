package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository wraps persisted income/expense records.
type LedgerRepository interface {
	// SaveEntry inserts a new ledger entry.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// FindEntriesByUser lists a user's entries of one type, newest date first.
	FindEntriesByUser(ctx context.Context, userID string, entryType domain.EntryType) ([]domain.LedgerEntry, error)

	// FindEntriesSince lists a user's entries of one type with date >= since,
	// newest date first.
	FindEntriesSince(ctx context.Context, userID string, entryType domain.EntryType, since time.Time) ([]domain.LedgerEntry, error)

	// FindRecentEntries lists the most recent entries of one type, capped at limit.
	FindRecentEntries(ctx context.Context, userID string, entryType domain.EntryType, limit int) ([]domain.LedgerEntry, error)

	// SumAmounts totals entry amounts of one type, optionally bounded below
	// by since. Zero when no rows match.
	SumAmounts(ctx context.Context, userID string, entryType domain.EntryType, since *time.Time) (decimal.Decimal, error)

	// DeleteEntry removes one entry scoped to its owner. Returns
	// apperrors.ErrNotFound when nothing was deleted.
	DeleteEntry(ctx context.Context, userID string, entryID string) error
}
