package excel

import (
	"bytes"
	"fmt"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of the generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const dateFormat = "2006-01-02"

type sheetSpec struct {
	name        string
	labelHeader string
	filename    string
}

var sheetSpecs = map[domain.EntryType]sheetSpec{
	domain.Income:  {name: "Income", labelHeader: "Source", filename: "income-details.xlsx"},
	domain.Expense: {name: "Expense", labelHeader: "Category", filename: "expense-details.xlsx"},
}

// Filename returns the attachment filename for the given entry type.
func Filename(entryType domain.EntryType) string {
	return sheetSpecs[entryType].filename
}

// EntriesWorkbook serializes ledger entries into a single-sheet xlsx
// workbook, one row per entry plus a header row.
func EntriesWorkbook(entryType domain.EntryType, entries []domain.LedgerEntry) (*bytes.Buffer, error) {
	spec, ok := sheetSpecs[entryType]
	if !ok {
		return nil, fmt.Errorf("unknown entry type %q", entryType)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", spec.name); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{spec.labelHeader, "Amount", "Date"}
	if err := f.SetSheetRow(spec.name, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, entry := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell for row %d: %w", i+2, err)
		}
		row := []interface{}{entry.Label, entry.Amount.InexactFloat64(), entry.Date.Format(dateFormat)}
		if err := f.SetSheetRow(spec.name, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}
