package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/google/uuid"
)

// entryDateLayouts are accepted formats for the entry date field, tried in
// order. Clients usually send bare dates from a date picker.
var entryDateLayouts = []string{"2006-01-02", time.RFC3339}

type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepository
}

// NewLedgerService creates the service behind the income and expense routes.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func parseEntryDate(raw string) (time.Time, error) {
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, raw)
}

func (s *ledgerService) AddEntry(ctx context.Context, userID string, entryType domain.EntryType, req dto.AddEntryRequest) (*domain.LedgerEntry, error) {
	if req.Label == "" {
		return nil, fmt.Errorf("%w: missing required fields", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	date, err := parseEntryDate(req.Date)
	if err != nil {
		return nil, err
	}

	entry := domain.LedgerEntry{
		EntryID:   uuid.NewString(),
		UserID:    userID,
		Type:      entryType,
		Icon:      req.Icon,
		Label:     req.Label,
		Amount:    req.Amount,
		Date:      date,
		CreatedAt: time.Now(),
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, userID string, entryType domain.EntryType) ([]domain.LedgerEntry, error) {
	return s.ledgerRepo.FindEntriesByUser(ctx, userID, entryType)
}

func (s *ledgerService) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	return s.ledgerRepo.DeleteEntry(ctx, userID, entryID)
}
