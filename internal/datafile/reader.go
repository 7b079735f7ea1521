// =============================================================================
// Seasonal Augmenter - Data File Reader
// =============================================================================
//
// This module loads the purchase dataset from its JSON file.
//
// FILE FORMAT:
//   {
//     "Purchase": [[ {purchase}, {purchase}, ... ]],
//     ...other top-level members, kept as-is...
//   }
//
// Loading is all-or-nothing: a missing file, malformed JSON, or a document
// without a purchase list is an error and nothing is returned.
//
// =============================================================================

package datafile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/seasonal-augmenter/internal/types"
)

// Load reads and decodes the dataset at filePath.
//
// PARAMETERS:
//   - filePath: The path to the dataset JSON file.
//
// RETURNS:
//   - The decoded dataset.
//   - An error if the file cannot be opened or decoded, or if it has no
//     purchase list.
func Load(filePath string) (*types.Dataset, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	dataset, err := Decode(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filePath, err)
	}
	return dataset, nil
}

// Decode reads a dataset from r.
func Decode(r io.Reader) (*types.Dataset, error) {
	var dataset types.Dataset
	if err := json.NewDecoder(r).Decode(&dataset); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	// The rest of the pipeline indexes the purchase list directly.
	if _, err := dataset.Purchases(); err != nil {
		return nil, err
	}

	return &dataset, nil
}
