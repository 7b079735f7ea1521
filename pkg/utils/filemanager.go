// =============================================================================
// Seasonal Augmenter - Backup File Manager
// =============================================================================
//
// The augment command rewrites the data file in place. This module keeps a
// copy of the file as it was before each run:
//   - Backups are copied, never moved, into the backup directory
//   - Backup names come from a format string with placeholders
//   - Backups older than the retention period are removed after each backup;
//     only files in the backup directory whose names fit the format are
//     considered
//
// NAMING PLACEHOLDERS:
//   {original}  - data file name without extension
//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
//   {date}      - current date (YYYYMMDD)
//   {time}      - current time (HHMMSS)
//   {uuid}      - a random UUID
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BackupExtension is appended to generated backup names that lack it.
const BackupExtension = ".json"

// =============================================================================
// BACKUP MANAGER
// =============================================================================

// BackupManager copies data files into a backup directory.
type BackupManager struct {
	// Dir is the directory backups are written to.
	Dir string

	// NameFormat is the backup file name format.
	// Example: "{original}_{timestamp}.json"
	NameFormat string

	// Retention is how long backups are kept. Zero keeps them forever.
	Retention time.Duration

	// now returns the current time.
	now func() time.Time
}

// NewBackupManager creates a BackupManager. retentionDays of zero disables
// pruning.
func NewBackupManager(dir, nameFormat string, retentionDays int) *BackupManager {
	return &BackupManager{
		Dir:        dir,
		NameFormat: nameFormat,
		Retention:  time.Duration(retentionDays) * 24 * time.Hour,
		now:        time.Now,
	}
}

// Backup copies filePath into the backup directory and prunes expired
// backups.
//
// RETURNS:
//   - The path of the new backup.
//   - The number of expired backups removed.
//   - An error if the copy or the pruning fails.
func (bm *BackupManager) Backup(filePath string) (string, int, error) {
	if !FileExists(filePath) {
		return "", 0, fmt.Errorf("cannot back up %s: file does not exist", filePath)
	}

	if err := os.MkdirAll(bm.Dir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create backup directory %s: %w", bm.Dir, err)
	}

	original := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	name := GenerateBackupFileName(bm.NameFormat, bm.now(), map[string]string{"original": original})
	backupPath := filepath.Join(bm.Dir, name)

	if err := copyFile(filePath, backupPath); err != nil {
		return "", 0, fmt.Errorf("failed to copy %s to %s: %w", filePath, backupPath, err)
	}

	if bm.Retention <= 0 {
		return backupPath, 0, nil
	}

	prefix := namePrefix(bm.NameFormat, original)
	ext := strings.ToLower(filepath.Ext(name))
	isBackup := func(fileName string) bool {
		return strings.HasPrefix(fileName, prefix) && strings.HasSuffix(strings.ToLower(fileName), ext)
	}

	removed, err := CleanOldBackups(bm.Dir, bm.now().Add(-bm.Retention), backupPath, isBackup)
	if err != nil {
		return backupPath, removed, err
	}
	return backupPath, removed, nil
}

// =============================================================================
// BACKUP FILE NAMING
// =============================================================================

// GenerateBackupFileName expands the placeholders in format.
//
// EXAMPLE:
//   format: "{original}_{timestamp}.json"
//   params: {"original": "synthetic_tesco_data"}
//   output: "synthetic_tesco_data_20251224_143022.json"
func GenerateBackupFileName(format string, now time.Time, params map[string]string) string {
	replacements := map[string]string{
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}
	if strings.Contains(format, "{uuid}") {
		replacements["{uuid}"] = uuid.New().String()
	}

	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if !strings.HasSuffix(strings.ToLower(result), BackupExtension) {
		result += BackupExtension
	}

	return result
}

// =============================================================================
// RETENTION
// =============================================================================

// CleanOldBackups removes files directly inside backupDir that isBackup
// accepts and that were last modified before cutoff. Subdirectories are not
// entered and keep is never removed.
//
// RETURNS:
//   - The number of files removed.
//   - An error if cleaning fails.
func CleanOldBackups(backupDir string, cutoff time.Time, keep string, isBackup func(name string) bool) (int, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return 0, fmt.Errorf("failed to clean backups: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !isBackup(entry.Name()) {
			continue
		}

		path := filepath.Join(backupDir, entry.Name())
		if path == keep {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return removed, fmt.Errorf("failed to clean backups: %w", err)
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("failed to clean backups: %w", err)
		}
		removed++
	}

	return removed, nil
}

// namePrefix returns the fixed text a name generated from format starts
// with: everything before the first placeholder other than {original}.
func namePrefix(format, original string) string {
	expanded := strings.ReplaceAll(format, "{original}", original)
	if i := strings.Index(expanded, "{"); i >= 0 {
		return expanded[:i]
	}
	return strings.TrimSuffix(expanded, filepath.Ext(expanded))
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// copyFile copies a file from src to dst, keeping src's permissions.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	if err != nil {
		return err
	}

	return destFile.Sync()
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
