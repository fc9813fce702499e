package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the persistence model for the ledger_entries table.
// Income and expense rows share the table, discriminated by EntryType.
type LedgerEntry struct {
	EntryID   string          `db:"entry_id"`
	UserID    string          `db:"user_id"`
	EntryType string          `db:"entry_type"`
	Icon      sql.NullString  `db:"icon"`
	Label     string          `db:"label"`
	Amount    decimal.Decimal `db:"amount"`
	Date      time.Time       `db:"entry_date"`
	CreatedAt time.Time       `db:"created_at"`
}
