package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/services"
)

// TransferHandler handles export, import, backup, and restore requests
type TransferHandler struct {
	transferService services.TransferServicer
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(transferService services.TransferServicer) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// RestoreRequest represents the request payload for restoring a backup
type RestoreRequest struct {
	BackupPath string `json:"backup_path" binding:"required"`
}

// ExportCSV streams the record set as a CSV attachment
func (h *TransferHandler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.transferService.ExportCSV(&buf); err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="expenses.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel streams the workbook as an attachment
func (h *TransferHandler) ExportExcel(c *gin.Context) {
	workbook, err := h.transferService.ExportExcel()
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer workbook.Close()

	var buf bytes.Buffer
	if err := workbook.Write(&buf); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrIOFailure, err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="expenses.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ImportCSV inserts expenses from an uploaded CSV file
func (h *TransferHandler) ImportCSV(c *gin.Context) {
	h.importUpload(c, h.transferService.ImportCSV)
}

// ImportExcel inserts expenses from an uploaded Excel workbook
func (h *TransferHandler) ImportExcel(c *gin.Context) {
	h.importUpload(c, h.transferService.ImportExcel)
}

func (h *TransferHandler) importUpload(c *gin.Context, importFn func(r io.Reader) (int, error)) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrIOFailure, err))
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrIOFailure, err))
		return
	}

	count, err := importFn(bytes.NewReader(buf.Bytes()))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": count})
}

// Backup copies the database file into the backup directory
func (h *TransferHandler) Backup(c *gin.Context) {
	path, err := h.transferService.Backup()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"backup_path": path})
}

// Restore replaces the database file with a backup copy
func (h *TransferHandler) Restore(c *gin.Context) {
	var req RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.transferService.Restore(req.BackupPath); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Database restored"})
}
