// =============================================================================
// Seasonal Augmenter - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks every purchase in
// the data file without changing it.
//
// COMMAND USAGE:
//   augmenter validate [--data PATH] [--strict]
//
// EXIT STATUS:
//   Non-zero when any error is found (or any warning, with --strict).
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/seasonal-augmenter/internal/datafile"
	"github.com/ginjaninja78/seasonal-augmenter/internal/validation"
)

// errValidationFailed is returned when the data file has findings that fail
// the run.
var errValidationFailed = errors.New("validation failed")

var (
	validateDataFile string
	validateStrict   bool
	validateLog      string
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the data file for malformed or inconsistent purchases",
	Long: `The validate command checks every purchase record:

  - null or empty records and malformed timestamps (warnings)
  - basket net and gross values that are not decimals (errors)
  - gross values below the net value (errors)
  - net values that differ from the sum of the line items (warnings)
  - line item prices and quantities that are not decimals (errors)`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		dataPath := cfg.DataFile
		if validateDataFile != "" {
			dataPath = validateDataFile
		}

		dataset, err := datafile.Load(dataPath)
		if err != nil {
			return err
		}
		purchases, err := dataset.Purchases()
		if err != nil {
			return err
		}

		validator := validation.NewValidatorWithOptions(validation.ValidationOptions{
			TreatWarningsAsErrors: validateStrict,
		})
		result := validator.ValidateAll(purchases)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, validation.FormatErrors(result.Errors))
		fmt.Fprintf(out, "Checked %d purchases: %d error(s), %d warning(s)\n",
			result.PurchasesValidated, result.ErrorCount, result.WarningCount)

		if validateLog != "" {
			if err := validation.WriteErrorLog(result.Errors, validateLog); err != nil {
				return err
			}
			logger.Info("findings written", "path", validateLog)
		}

		if !result.IsValid {
			return fmt.Errorf("%s: %w", dataPath, errValidationFailed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateDataFile, "data", "", "Data file to check (default from config)")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Fail on warnings as well as errors")
	validateCmd.Flags().StringVar(&validateLog, "log", "", "Also write the findings to this file")
}
