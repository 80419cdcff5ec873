// Package receipt extracts expense fields from receipt images. OCR is
// an opaque external collaborator behind the TextExtractor interface;
// this package only owns the text-to-fields parsing.
package receipt

import (
	"os/exec"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
)

// TextExtractor turns a receipt image into raw text. Accuracy is the
// collaborator's concern, not ours.
type TextExtractor interface {
	Extract(imagePath string) (string, error)
}

// TesseractExtractor shells out to the tesseract binary with page
// segmentation mode 6 (uniform block of text).
type TesseractExtractor struct {
	Bin string
}

// Extract implements TextExtractor.
func (t TesseractExtractor) Extract(imagePath string) (string, error) {
	bin := t.Bin
	if bin == "" {
		bin = "tesseract"
	}
	out, err := exec.Command(bin, imagePath, "stdout", "--psm", "6").Output()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	return string(out), nil
}

// Fields are the expense details recovered from receipt text. Absent
// fields stay empty; Category is always a member of the closed set when
// a description was found.
type Fields struct {
	Amount      string          `json:"amount,omitempty"`
	AmountValue decimal.Decimal `json:"amount_value,omitempty"`
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description,omitempty"`
	Category    models.Category `json:"category,omitempty"`
}

var (
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Total|Amount)[^\d]*(\d{1,3}(?:,\d{3})*\.\d{2})`),
		regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})*\.\d{2})`),
	}
	isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	dmyDatePattern = regexp.MustCompile(`\d{2}-\d{2}-\d{4}`)
)

// categoryHints maps receipt vocabulary to category guesses, checked in
// order.
var categoryHints = []struct {
	category models.Category
	words    []string
}{
	{models.CategoryFood, []string{"restaurant", "cafe", "lunch", "dinner", "meal"}},
	{models.CategoryShopping, []string{"grocery", "supermarket", "mart"}},
	{models.CategoryTransport, []string{"uber", "taxi", "bus", "train", "transport"}},
}

// ParseFields applies the extraction patterns to raw OCR text.
func ParseFields(text string) Fields {
	var fields Fields

	for _, pattern := range amountPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		cleaned := strings.ReplaceAll(match[1], ",", "")
		if amount, err := decimal.NewFromString(cleaned); err == nil {
			fields.AmountValue = amount.Round(2)
			fields.Amount = models.FormatINR(fields.AmountValue)
			break
		}
	}

	if match := isoDatePattern.FindString(text); match != "" {
		fields.Date = match
	} else if match := dmyDatePattern.FindString(text); match != "" {
		fields.Date = match
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) > 0 {
		if len(lines) > 3 {
			lines = lines[:3]
		}
		fields.Description = strings.Join(lines, " ")
		fields.Category = hintCategory(text)
	}

	return fields
}

func hintCategory(text string) models.Category {
	lower := strings.ToLower(text)
	for _, hint := range categoryHints {
		for _, word := range hint.words {
			if strings.Contains(lower, word) {
				return hint.category
			}
		}
	}
	return models.CategoryOther
}
