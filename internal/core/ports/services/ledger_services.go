package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
)

// LedgerSvcFacade defines the ledger entry operations used by the income and
// expense controllers. Entries are immutable after creation except delete.
type LedgerSvcFacade interface {
	// AddEntry validates and persists a new entry for the user.
	AddEntry(ctx context.Context, userID string, entryType domain.EntryType, req dto.AddEntryRequest) (*domain.LedgerEntry, error)

	// ListEntries returns the user's entries of one type, newest date first.
	ListEntries(ctx context.Context, userID string, entryType domain.EntryType) ([]domain.LedgerEntry, error)

	// DeleteEntry removes one entry owned by the user; apperrors.ErrNotFound
	// when no such entry exists.
	DeleteEntry(ctx context.Context, userID string, entryID string) error
}
