package services

import (
	"io"

	"github.com/xuri/excelize/v2"

	"kharcha/internal/export"
	"kharcha/internal/importer"
	"kharcha/internal/logger"
	"kharcha/internal/store"
)

// transferService moves expense data in and out of the store as files.
type transferService struct {
	store     store.ExpenseStore
	importer  *importer.Importer
	dbPath    string
	backupDir string
}

// NewTransferService creates a new TransferServicer. dbPath is the live
// database file; backupDir receives timestamped backup copies.
func NewTransferService(st store.ExpenseStore, dbPath, backupDir string) TransferServicer {
	return &transferService{
		store:     st,
		importer:  importer.New(st),
		dbPath:    dbPath,
		backupDir: backupDir,
	}
}

// ExportCSV streams the full record set as CSV.
func (s *transferService) ExportCSV(w io.Writer) error {
	expenses, err := s.store.GetAll()
	if err != nil {
		return err
	}
	return export.WriteCSV(w, expenses)
}

// ExportExcel builds the styled workbook with summary sheets.
func (s *transferService) ExportExcel() (*excelize.File, error) {
	expenses, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	return export.BuildWorkbook(expenses)
}

// ImportCSV inserts rows from a CSV stream, returning the count inserted.
func (s *transferService) ImportCSV(r io.Reader) (int, error) {
	count, err := s.importer.FromCSV(r)
	if count > 0 {
		logger.Get().Infof("Imported %d expense(s) from CSV", count)
	}
	return count, err
}

// ImportExcel inserts rows from an Excel workbook.
func (s *transferService) ImportExcel(r io.Reader) (int, error) {
	count, err := s.importer.FromExcel(r)
	if count > 0 {
		logger.Get().Infof("Imported %d expense(s) from Excel", count)
	}
	return count, err
}

// Backup copies the database file into the backup directory.
func (s *transferService) Backup() (string, error) {
	path, err := importer.Backup(s.dbPath, s.backupDir)
	if err != nil {
		return "", err
	}
	logger.Get().Infof("Backup written to %s", path)
	return path, nil
}

// Restore replaces the database file with a backup copy.
func (s *transferService) Restore(backupPath string) error {
	if err := importer.Restore(backupPath, s.dbPath); err != nil {
		return err
	}
	logger.Get().Infof("Database restored from %s", backupPath)
	return nil
}
