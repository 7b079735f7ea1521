// =============================================================================
// Seasonal Augmenter - Augment Command
// =============================================================================
//
// This file defines the 'augment' command, which runs the seasonal pipeline
// against the data file and rewrites it in place.
//
// COMMAND USAGE:
//   augmenter augment [flags]
//
// FLAGS:
//   --data       : Data file to augment (overrides data_file)
//   --seed       : Random seed; 0 seeds from the clock (overrides seed)
//   --dry-run    : Run every step but leave the data file untouched
//   --no-backup  : Skip the backup copy
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Load the data file
//   3. Check it and log any findings
//   4. Add strawberries, add wine, add December purchases
//   5. Back up the original file
//   6. Save the augmented dataset over the original
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/seasonal-augmenter/internal/datafile"
	"github.com/ginjaninja78/seasonal-augmenter/internal/seasonal"
	"github.com/ginjaninja78/seasonal-augmenter/internal/validation"
	"github.com/ginjaninja78/seasonal-augmenter/pkg/utils"
)

// augmentOptions holds the augment command's flags.
type augmentOptions struct {
	dataFile string
	seed     uint64
	seedSet  bool
	dryRun   bool
	noBackup bool
}

var augmentFlags augmentOptions

// augmentCmd represents the 'augment' command.
var augmentCmd = &cobra.Command{
	Use:   "augment",
	Short: "Add seasonal products and December shops to the data file",
	Long: `The augment command loads the purchase dataset, plants the seasonal
patterns and writes the dataset back to the same file.

Steps:
  - Strawberries are added to 80% of June to August baskets and 15% of the rest
  - Wine is added to 10% of existing baskets, in any month
  - Twenty December baskets with wine are appended

Every added item raises the basket's net value by its line total and the
gross value by the line total plus a markup. Records without a usable
timestamp, and null or empty records, are left alone.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		opts := augmentFlags
		opts.seedSet = cmd.Flags().Changed("seed")
		return runAugment(cmd, opts)
	},
}

func init() {
	rootCmd.AddCommand(augmentCmd)

	augmentCmd.Flags().StringVar(
		&augmentFlags.dataFile,
		"data",
		"",
		"Data file to augment (default from config)",
	)

	augmentCmd.Flags().Uint64Var(
		&augmentFlags.seed,
		"seed",
		0,
		"Random seed; 0 seeds from the clock",
	)

	augmentCmd.Flags().BoolVar(
		&augmentFlags.dryRun,
		"dry-run",
		false,
		"Run the steps without writing the data file",
	)

	augmentCmd.Flags().BoolVar(
		&augmentFlags.noBackup,
		"no-backup",
		false,
		"Do not back up the data file before saving",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runAugment orchestrates the augment pipeline.
func runAugment(cmd *cobra.Command, opts augmentOptions) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	dataPath := cfg.DataFile
	if opts.dataFile != "" {
		dataPath = opts.dataFile
	}
	seed := cfg.Seed
	if opts.seedSet {
		seed = opts.seed
	}

	// =========================================================================
	// STEP 1: LOAD
	// =========================================================================

	fmt.Fprintln(out, "Loading Tesco data...")
	dataset, err := datafile.Load(dataPath)
	if err != nil {
		return err
	}

	// =========================================================================
	// STEP 2: CHECK
	// =========================================================================
	// Findings are reported, not enforced. A basket the augmenter cannot
	// parse still fails the run when a step reaches it.

	purchases, err := dataset.Purchases()
	if err != nil {
		return err
	}
	checker := validation.NewValidatorWithOptions(validation.ValidationOptions{SkipConsistency: true})
	check := checker.ValidateAll(purchases)
	logger.Debug("data file checked",
		"purchases", check.PurchasesValidated,
		"errors", check.ErrorCount,
		"warnings", check.WarningCount,
	)
	if check.ErrorCount > 0 {
		logger.Warn("data file has malformed records; run 'augmenter validate' for details",
			"errors", check.ErrorCount)
	}

	// =========================================================================
	// STEP 3: AUGMENT
	// =========================================================================

	if seed == 0 {
		logger.Debug("seeding from the clock")
	} else {
		logger.Debug("using fixed seed", "seed", seed)
	}

	augmenter := seasonal.New(seasonal.NewSource(seed), logger, out)
	result, err := augmenter.Run(dataset)
	if err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Fprintln(out, "\nDry run: data file left unchanged.")
		printTotals(cmd, result)
		return nil
	}

	// =========================================================================
	// STEP 4: BACKUP
	// =========================================================================

	if cfg.BackupEnabled() && !opts.noBackup {
		backups := utils.NewBackupManager(cfg.Backup.Dir, cfg.Backup.NameFormat, cfg.Backup.RetentionDays)
		backupPath, removed, err := backups.Backup(dataPath)
		if err != nil {
			return fmt.Errorf("failed to back up data file: %w", err)
		}
		logger.Info("backup written", "path", backupPath)
		if removed > 0 {
			logger.Info("expired backups removed", "count", removed)
		}
	}

	// =========================================================================
	// STEP 5: SAVE
	// =========================================================================

	fmt.Fprintln(out, "\nSaving updated data...")
	if err := datafile.Save(dataPath, dataset); err != nil {
		return err
	}

	printTotals(cmd, result)
	return nil
}

func printTotals(cmd *cobra.Command, result seasonal.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nComplete! Total purchases: %d\n", result.TotalPurchases)
	fmt.Fprintf(out, "   Strawberry additions: %d\n", result.StrawberryAdditions)
	fmt.Fprintf(out, "   Wine additions (Jan-Oct): %d\n", result.WineAdditions)
	fmt.Fprintf(out, "   December wine transactions: %d\n", result.DecemberPurchases)
}
