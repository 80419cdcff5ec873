package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"

	"kharcha/internal/models"
)

func TestWriteCSV(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, Date: "2024-01-15", Amount: decimal.NewFromFloat(1234.5), Category: models.CategoryFood, Description: "lunch"},
		{ID: 2, Date: "2024-01-16", Amount: decimal.NewFromInt(50), Category: models.CategoryTransport, Description: "bus"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, expenses); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	wantHeader := []string{"ID", "Date", "Amount (₹)", "Category", "Description"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Errorf("header column %d: expected %q, got %q", i, col, rows[0][i])
		}
	}

	if rows[1][2] != "₹1,234.50" {
		t.Errorf("expected formatted amount ₹1,234.50, got %q", rows[1][2])
	}
	if rows[2][3] != "Transport" {
		t.Errorf("expected category Transport, got %q", rows[2][3])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}
