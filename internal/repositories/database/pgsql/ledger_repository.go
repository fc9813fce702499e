package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker_app/internal/models"
	"github.com/SscSPs/expense_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(db *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

const entryColumns = `entry_id, user_id, entry_type, icon, label, amount, entry_date, created_at`

func collectEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		err := rows.Scan(
			&m.EntryID,
			&m.UserID,
			&m.EntryType,
			&m.Icon,
			&m.Label,
			&m.Amount,
			&m.Date,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", rows.Err())
	}

	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
        INSERT INTO ledger_entries (entry_id, user_id, entry_type, icon, label, amount, entry_date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.UserID,
		m.EntryType,
		m.Icon,
		m.Label,
		m.Amount,
		m.Date,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger entry: %w", err)
	}
	return nil
}

func (r *PgxLedgerRepository) FindEntriesByUser(ctx context.Context, userID string, entryType domain.EntryType) ([]domain.LedgerEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM ledger_entries
        WHERE user_id = $1 AND entry_type = $2
        ORDER BY entry_date DESC;
    `
	rows, err := r.Pool.Query(ctx, query, userID, string(entryType))
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	return collectEntries(rows)
}

func (r *PgxLedgerRepository) FindEntriesSince(ctx context.Context, userID string, entryType domain.EntryType, since time.Time) ([]domain.LedgerEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM ledger_entries
        WHERE user_id = $1 AND entry_type = $2 AND entry_date >= $3
        ORDER BY entry_date DESC;
    `
	rows, err := r.Pool.Query(ctx, query, userID, string(entryType), since)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries since %s: %w", since, err)
	}
	return collectEntries(rows)
}

func (r *PgxLedgerRepository) FindRecentEntries(ctx context.Context, userID string, entryType domain.EntryType, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = 5
	}
	query := `
        SELECT ` + entryColumns + `
        FROM ledger_entries
        WHERE user_id = $1 AND entry_type = $2
        ORDER BY entry_date DESC
        LIMIT $3;
    `
	rows, err := r.Pool.Query(ctx, query, userID, string(entryType), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent ledger entries: %w", err)
	}
	return collectEntries(rows)
}

func (r *PgxLedgerRepository) SumAmounts(ctx context.Context, userID string, entryType domain.EntryType, since *time.Time) (decimal.Decimal, error) {
	// COALESCE keeps the no-rows case at zero instead of NULL.
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM ledger_entries
        WHERE user_id = $1 AND entry_type = $2 AND ($3::timestamptz IS NULL OR entry_date >= $3);
    `
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, userID, string(entryType), since).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum ledger amounts: %w", err)
	}
	return total, nil
}

func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	// Scoped to the owner so one user can never delete another's entry.
	query := `DELETE FROM ledger_entries WHERE entry_id = $1 AND user_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
