package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	apperrors "kharcha/internal/errors"
)

// Backup copies the database file into backupDir under a timestamped
// name and returns the backup path.
func Backup(dbPath, backupDir string) (string, error) {
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", apperrors.Wrap(apperrors.ErrIOFailure, err)
	}

	name := fmt.Sprintf("kharcha-%s-%s.db",
		time.Now().Format("20060102-150405"),
		uuid.New().String()[:8],
	)
	backupPath := filepath.Join(backupDir, name)
	if err := copyFile(dbPath, backupPath); err != nil {
		return "", err
	}
	return backupPath, nil
}

// Restore replaces the database file with a backup copy.
func Restore(backupPath, dbPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return apperrors.WithMessage(apperrors.ErrNotFound, "backup file not found")
	}
	return copyFile(backupPath, dbPath)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	if err := out.Sync(); err != nil {
		return apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	return nil
}
