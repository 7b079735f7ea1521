// =============================================================================
// Seasonal Augmenter - Data File Writer
// =============================================================================
//
// This module writes the dataset back to disk.
//
// OUTPUT FORMAT:
//   - Two-space indentation
//   - Non-ASCII and HTML characters written as-is, not \u-escaped
//   - Key order of every object as it was read
//
// WRITE STRATEGY:
//   The document is written to a temporary file next to the target and then
//   renamed over it, so a failed write leaves the previous file intact.
//
// =============================================================================

package datafile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ginjaninja78/seasonal-augmenter/internal/types"
)

// Indent is the indentation used for saved files.
const Indent = "  "

// Save writes the dataset to filePath, replacing any existing file.
//
// PARAMETERS:
//   - filePath: The destination path. Its directory must exist.
//   - dataset: The dataset to write.
//
// RETURNS:
//   - An error if encoding or writing fails. On error the destination is
//     left untouched.
func Save(filePath string, dataset *types.Dataset) error {
	dir := filepath.Dir(filePath)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpPath := tmp.Name()

	// Remove the temporary file on any failure below.
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	writer := bufio.NewWriter(tmp)
	if err := Encode(writer, dataset); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush data file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close data file: %w", err)
	}

	// Keep the permissions of the file being replaced.
	if info, err := os.Stat(filePath); err == nil {
		if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to set permissions: %w", err)
		}
	} else if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filePath, err)
	}
	committed = true

	return nil
}

// Encode writes the dataset to w in the saved-file format.
func Encode(w io.Writer, dataset *types.Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(dataset); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
