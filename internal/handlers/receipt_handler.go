package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/services"
)

// ReceiptHandler handles receipt-capture requests
type ReceiptHandler struct {
	receiptService services.ReceiptServicer
	receiptDir     string
}

// NewReceiptHandler creates a new ReceiptHandler. Uploaded images are
// kept under receiptDir so expenses can reference them later.
func NewReceiptHandler(receiptService services.ReceiptServicer, receiptDir string) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService, receiptDir: receiptDir}
}

// ProcessReceipt accepts a receipt image upload, runs it through the OCR
// collaborator, and returns the extracted expense fields together with
// the stored image path.
func (h *ReceiptHandler) ProcessReceipt(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image upload is required"})
		return
	}

	if err := os.MkdirAll(h.receiptDir, 0o755); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrIOFailure, err))
		return
	}

	ext := filepath.Ext(fileHeader.Filename)
	imagePath := filepath.Join(h.receiptDir, uuid.New().String()+ext)
	if err := c.SaveUploadedFile(fileHeader, imagePath); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrIOFailure, err))
		return
	}

	fields, err := h.receiptService.Process(imagePath)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"receipt_path": imagePath, "fields": fields})
}
