// =============================================================================
// Seasonal Augmenter - Pipeline
// =============================================================================
//
// The Augmenter runs the three steps against a loaded dataset:
//   1. AddStrawberries          (mutates existing baskets)
//   2. AddWine                  (mutates existing baskets)
//   3. AddDecemberTransactions  (appends new baskets)
//
// Loading and saving the file is the caller's job, so the pipeline can run
// against an in-memory dataset in tests and in dry runs.
//
// =============================================================================

package seasonal

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/seasonal-augmenter/internal/logging"
	"github.com/ginjaninja78/seasonal-augmenter/internal/types"
)

// Result summarises one augment run.
type Result struct {
	// ExistingPurchases is the length of the purchase list before the run,
	// null and empty records included.
	ExistingPurchases int

	// StrawberryAdditions is the number of baskets given strawberries.
	StrawberryAdditions int

	// WineAdditions is the number of existing baskets given wine.
	WineAdditions int

	// DecemberPurchases is the number of synthesized baskets.
	DecemberPurchases int

	// TotalPurchases is the length of the purchase list after the run.
	TotalPurchases int
}

// Augmenter runs the augment pipeline.
type Augmenter struct {
	rng    RandomSource
	logger logging.Logger

	// progress receives the human-readable step lines.
	progress io.Writer
}

// New creates an Augmenter drawing from rng. Progress lines go to progress;
// pass nil to discard them.
func New(rng RandomSource, logger logging.Logger, progress io.Writer) *Augmenter {
	if logger == nil {
		logger = logging.Nop()
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Augmenter{rng: rng, logger: logger, progress: progress}
}

// Run augments the dataset in place.
func (a *Augmenter) Run(dataset *types.Dataset) (Result, error) {
	var result Result

	purchases, err := dataset.Purchases()
	if err != nil {
		return result, err
	}
	result.ExistingPurchases = len(purchases)
	fmt.Fprintf(a.progress, "Found %d existing purchases\n", result.ExistingPurchases)

	// =========================================================================
	// STEP 1: STRAWBERRIES
	// =========================================================================

	fmt.Fprintln(a.progress, "\nAdding strawberries with summer spike...")
	result.StrawberryAdditions, err = AddStrawberries(purchases, a.rng)
	if err != nil {
		return result, fmt.Errorf("failed to add strawberries: %w", err)
	}
	fmt.Fprintf(a.progress, "   Added strawberries to %d purchases\n", result.StrawberryAdditions)
	a.logger.Debug("strawberries added", "purchases", result.StrawberryAdditions)

	// =========================================================================
	// STEP 2: WINE
	// =========================================================================

	fmt.Fprintln(a.progress, "\nAdding wine to existing transactions...")
	result.WineAdditions, err = AddWine(purchases, a.rng)
	if err != nil {
		return result, fmt.Errorf("failed to add wine: %w", err)
	}
	fmt.Fprintf(a.progress, "   Added wine to %d purchases\n", result.WineAdditions)
	a.logger.Debug("wine added", "purchases", result.WineAdditions)

	// =========================================================================
	// STEP 3: DECEMBER TRANSACTIONS
	// =========================================================================

	fmt.Fprintln(a.progress, "\nAdding December transactions with wine spike...")
	result.DecemberPurchases, err = AddDecemberTransactions(dataset, a.rng)
	if err != nil {
		return result, err
	}
	fmt.Fprintf(a.progress, "   Added %d December purchases\n", result.DecemberPurchases)
	a.logger.Debug("december purchases synthesized", "purchases", result.DecemberPurchases)

	purchases, err = dataset.Purchases()
	if err != nil {
		return result, err
	}
	result.TotalPurchases = len(purchases)

	return result, nil
}
