// =============================================================================
// Seasonal Augmenter - Main Entry Point
// =============================================================================
//
// USAGE:
//   augmenter               - Augment the data file with defaults
//   augmenter augment       - Augment the data file
//   augmenter insights      - Print a wrapped summary of the data file
//   augmenter validate      - Check the data file
//   augmenter version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : Cobra command definitions
//   - internal/      : Core logic (dataset model, augment steps, insights)
//   - pkg/           : Shared utilities (backups)
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/seasonal-augmenter/cmd"
)

func main() {
	cmd.Execute()
}
