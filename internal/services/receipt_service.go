package services

import (
	"kharcha/internal/receipt"
)

// receiptService runs receipt images through the OCR collaborator and
// parses the extracted text into expense fields.
type receiptService struct {
	extractor receipt.TextExtractor
}

// NewReceiptService creates a new ReceiptServicer around an extractor.
func NewReceiptService(extractor receipt.TextExtractor) ReceiptServicer {
	return &receiptService{extractor: extractor}
}

// Process extracts text from the image and parses out amount, date,
// description, and a category hint. Extraction failures surface as
// IO_FAILURE; parsing itself never fails.
func (s *receiptService) Process(imagePath string) (*receipt.Fields, error) {
	text, err := s.extractor.Extract(imagePath)
	if err != nil {
		return nil, err
	}
	fields := receipt.ParseFields(text)
	return &fields, nil
}
