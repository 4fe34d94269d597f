package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If MOSRUN_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.mosrun/logs/mosrun.log
func GetLogFilePath() string {
	if customPath := os.Getenv("MOSRUN_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "mosrun.log"
	}

	return filepath.Join(homeDir, ".mosrun", "logs", "mosrun.log")
}
