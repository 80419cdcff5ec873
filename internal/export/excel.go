package export

import (
	"github.com/xuri/excelize/v2"

	"kharcha/internal/analytics"
	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
)

const expensesSheet = "Expenses"

// summarySheets pairs each summary sheet with its aggregation
// granularity.
var summarySheets = []struct {
	name        string
	granularity models.Granularity
	layout      string
}{
	{"Monthly Summary", models.GranularityMonth, "2006-01"},
	{"Weekly Summary", models.GranularityWeek, "2006-01-02"},
	{"Yearly Summary", models.GranularityYear, "2006"},
}

// BuildWorkbook assembles an Excel workbook with the full record set and
// monthly, weekly, and yearly summary sheets.
func BuildWorkbook(expenses []models.Expense) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", expensesSheet); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIOFailure, err)
	}

	if err := writeExpensesSheet(f, expenses); err != nil {
		return nil, err
	}
	for _, sheet := range summarySheets {
		agg, err := analytics.Aggregate(expenses, sheet.granularity)
		if err != nil {
			return nil, err
		}
		if err := writeSummarySheet(f, sheet.name, sheet.layout, agg.Totals); err != nil {
			return nil, err
		}
	}
	if err := styleWorkbook(f); err != nil {
		return nil, err
	}
	return f, nil
}

func writeExpensesSheet(f *excelize.File, expenses []models.Expense) error {
	for col, title := range Header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(expensesSheet, cell, title); err != nil {
			return apperrors.Wrap(apperrors.ErrIOFailure, err)
		}
	}

	for i, expense := range expenses {
		row := i + 2
		values := []interface{}{
			expense.ID,
			expense.Date,
			expense.Amount.InexactFloat64(),
			string(expense.Category),
			expense.Description,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(expensesSheet, cell, value); err != nil {
				return apperrors.Wrap(apperrors.ErrIOFailure, err)
			}
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, name, layout string, totals []models.PeriodTotal) error {
	if _, err := f.NewSheet(name); err != nil {
		return apperrors.Wrap(apperrors.ErrIOFailure, err)
	}

	if err := f.SetCellValue(name, "A1", "Period"); err != nil {
		return apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	if err := f.SetCellValue(name, "B1", "Total Amount"); err != nil {
		return apperrors.Wrap(apperrors.ErrIOFailure, err)
	}

	for i, bucket := range totals {
		row := i + 2
		periodCell, _ := excelize.CoordinatesToCellName(1, row)
		totalCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(name, periodCell, bucket.PeriodStart.Format(layout)); err != nil {
			return apperrors.Wrap(apperrors.ErrIOFailure, err)
		}
		if err := f.SetCellValue(name, totalCell, bucket.Total.InexactFloat64()); err != nil {
			return apperrors.Wrap(apperrors.ErrIOFailure, err)
		}
	}
	return nil
}

func styleWorkbook(f *excelize.File) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"2980B9"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	currencyFormat := "₹#,##0.00"
	currencyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &currencyFormat})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrIOFailure, err)
	}

	for _, sheet := range f.GetSheetList() {
		cols, rowCount, err := sheetExtent(f, sheet)
		if err != nil {
			return err
		}
		if cols == 0 {
			continue
		}

		lastCol, _ := excelize.ColumnNumberToName(cols)
		if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
			return apperrors.Wrap(apperrors.ErrIOFailure, err)
		}
		if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
			return apperrors.Wrap(apperrors.ErrIOFailure, err)
		}

		if sheet == expensesSheet && rowCount > 1 {
			last, _ := excelize.CoordinatesToCellName(3, rowCount)
			if err := f.SetCellStyle(sheet, "C2", last, currencyStyle); err != nil {
				return apperrors.Wrap(apperrors.ErrIOFailure, err)
			}
		}
	}
	return nil
}

func sheetExtent(f *excelize.File, sheet string) (cols, rows int, err error) {
	data, err := f.GetRows(sheet)
	if err != nil {
		return 0, 0, apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	if len(data) == 0 {
		return 0, 0, nil
	}
	return len(data[0]), len(data), nil
}
