package mapping

import (
	"database/sql"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/models"
)

// ToModelLedgerEntry converts a domain.LedgerEntry to its persistence model.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	m := models.LedgerEntry{
		EntryID:   d.EntryID,
		UserID:    d.UserID,
		EntryType: string(d.Type),
		Label:     d.Label,
		Amount:    d.Amount,
		Date:      d.Date,
		CreatedAt: d.CreatedAt,
	}
	if d.Icon != "" {
		m.Icon = sql.NullString{String: d.Icon, Valid: true}
	}
	return m
}

// ToDomainLedgerEntry converts a persistence model to a domain.LedgerEntry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	d := domain.LedgerEntry{
		EntryID:   m.EntryID,
		UserID:    m.UserID,
		Type:      domain.EntryType(m.EntryType),
		Label:     m.Label,
		Amount:    m.Amount,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
	if m.Icon.Valid {
		d.Icon = m.Icon.String
	}
	return d
}

// ToDomainLedgerEntrySlice converts a slice of models to domain entries.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
