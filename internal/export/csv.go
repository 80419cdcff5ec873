// Package export renders the record set to CSV and Excel files. The
// column layout is the tracker's canonical one: ID, Date, Amount (₹),
// Category, Description, with amounts rendered in rupee format.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
)

// Header is the canonical export column layout.
var Header = []string{"ID", "Date", "Amount (₹)", "Category", "Description"}

// WriteCSV writes all expenses to w in CSV form.
func WriteCSV(w io.Writer, expenses []models.Expense) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return apperrors.Wrap(apperrors.ErrIOFailure, err)
	}

	for _, expense := range expenses {
		row := []string{
			strconv.FormatUint(uint64(expense.ID), 10),
			expense.Date,
			models.FormatINR(expense.Amount),
			string(expense.Category),
			expense.Description,
		}
		if err := writer.Write(row); err != nil {
			return apperrors.Wrap(apperrors.ErrIOFailure, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	return nil
}
