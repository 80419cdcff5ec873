// Package importer reads expense rows from CSV and Excel files and
// feeds them through the record store. Required columns are date,
// amount, category, and description, matched case-insensitively; an
// amount that cannot be interpreted imports as 0.00 rather than
// aborting the file.
package importer

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"kharcha/internal/categorize"
	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
	"kharcha/internal/store"
)

// requiredColumns must all be present for an import to proceed.
var requiredColumns = []string{"date", "amount", "category", "description"}

// Row is one parsed import row.
type Row struct {
	Date        string
	Amount      decimal.Decimal
	Category    models.Category
	Description string
}

// Importer inserts parsed rows through the record store.
type Importer struct {
	store       store.ExpenseStore
	categorizer categorize.Categorizer
}

// New creates an Importer. Rows with a category outside the closed set
// are re-categorized from their description so every persisted record
// stays inside the set.
func New(st store.ExpenseStore) *Importer {
	return &Importer{store: st, categorizer: categorize.KeywordCategorizer{}}
}

// FromCSV imports all rows from a CSV stream. Returns the number of
// records inserted.
func (im *Importer) FromCSV(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrParseFailure, err)
	}
	return im.process(records)
}

// FromExcel imports all rows from the "Expenses" sheet of a workbook.
func (im *Importer) FromExcel(r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrParseFailure, err)
	}
	defer f.Close()

	rows, err := f.GetRows("Expenses")
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrParseFailure, `workbook has no "Expenses" sheet`)
	}
	return im.process(rows)
}

func (im *Importer) process(records [][]string) (int, error) {
	if len(records) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrParseFailure, "file has no header row")
	}

	columns, err := mapColumns(records[0])
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, record := range records[1:] {
		row := parseRow(record, columns, im.categorizer)
		if _, err := im.store.Insert(row.Date, row.Amount, row.Category, row.Description, "", ""); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// mapColumns resolves header names to column indexes, rejecting files
// that miss a required column.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[normalizeHeader(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"missing required columns: "+strings.Join(missing, ", "))
	}
	return columns, nil
}

// normalizeHeader lower-cases a header cell and strips the currency
// suffix exported by this tracker, so its own exports re-import.
func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if cut, _, found := strings.Cut(name, " ("); found {
		name = cut
	}
	return name
}

func parseRow(record []string, columns map[string]int, categorizer categorize.Categorizer) Row {
	cell := func(name string) string {
		i := columns[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	description := cell("description")
	category := models.Category(cell("category"))
	if !category.Valid() {
		category = categorizer.Categorize(description)
	}

	return Row{
		Date:        cell("date"),
		Amount:      parseAmount(cell("amount")),
		Category:    category,
		Description: description,
	}
}

// parseAmount interprets an amount cell, tolerating rupee signs and
// digit grouping. Uninterpretable values import as 0.00.
func parseAmount(raw string) decimal.Decimal {
	cleaned := strings.NewReplacer("₹", "", ",", "", " ", "").Replace(raw)
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount.Round(2)
}
