package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Environment ("production" switches the logger to JSON output)
	Env string

	// Database
	DBPath string

	// Directories
	BackupDir  string
	ReceiptDir string

	// OCR collaborator
	TesseractBin string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		DBPath:       getEnv("DB_PATH", "kharcha.db"),
		BackupDir:    getEnv("BACKUP_DIR", "backups"),
		ReceiptDir:   getEnv("RECEIPT_DIR", "receipts"),
		TesseractBin: getEnv("TESSERACT_BIN", "tesseract"),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
