package export

import (
	"testing"

	"github.com/shopspring/decimal"

	"kharcha/internal/models"
)

func TestBuildWorkbook(t *testing.T) {
	expenses := []models.Expense{
		{ID: 1, Date: "2024-01-15", Amount: decimal.NewFromInt(100), Category: models.CategoryFood, Description: "groceries"},
		{ID: 2, Date: "2024-02-10", Amount: decimal.NewFromInt(200), Category: models.CategoryTransport, Description: "fuel"},
	}

	f, err := BuildWorkbook(expenses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	t.Run("sheets", func(t *testing.T) {
		want := map[string]bool{
			"Expenses":        false,
			"Monthly Summary": false,
			"Weekly Summary":  false,
			"Yearly Summary":  false,
		}
		for _, name := range f.GetSheetList() {
			if _, ok := want[name]; ok {
				want[name] = true
			}
		}
		for name, seen := range want {
			if !seen {
				t.Errorf("missing sheet %q", name)
			}
		}
	})

	t.Run("expenses_sheet", func(t *testing.T) {
		rows, err := f.GetRows("Expenses")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d", len(rows))
		}
		if rows[0][0] != "ID" || rows[0][2] != "Amount (₹)" {
			t.Errorf("unexpected header: %v", rows[0])
		}
		if rows[1][1] != "2024-01-15" {
			t.Errorf("expected date 2024-01-15, got %q", rows[1][1])
		}
		if rows[2][3] != "Transport" {
			t.Errorf("expected category Transport, got %q", rows[2][3])
		}
	})

	t.Run("monthly_summary", func(t *testing.T) {
		rows, err := f.GetRows("Monthly Summary")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected header plus 2 buckets, got %d", len(rows))
		}
		if rows[1][0] != "2024-01" {
			t.Errorf("expected period 2024-01, got %q", rows[1][0])
		}
		if rows[2][0] != "2024-02" {
			t.Errorf("expected period 2024-02, got %q", rows[2][0])
		}
	})

	t.Run("yearly_summary", func(t *testing.T) {
		rows, err := f.GetRows("Yearly Summary")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected header plus 1 bucket, got %d", len(rows))
		}
		if rows[1][0] != "2024" {
			t.Errorf("expected period 2024, got %q", rows[1][0])
		}
	})
}

func TestBuildWorkbookEmpty(t *testing.T) {
	f, err := BuildWorkbook(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Expenses")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}
