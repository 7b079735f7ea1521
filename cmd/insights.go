// =============================================================================
// Seasonal Augmenter - Insights Command
// =============================================================================
//
// This file defines the 'insights' command, which prints a year-in-review
// summary of the data file and optionally exports it to a workbook.
//
// COMMAND USAGE:
//   augmenter insights [--data PATH] [--xlsx PATH]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/seasonal-augmenter/internal/datafile"
	"github.com/ginjaninja78/seasonal-augmenter/internal/insights"
	"github.com/ginjaninja78/seasonal-augmenter/internal/report"
)

var (
	insightsDataFile string
	insightsXLSX     string
)

// insightsCmd represents the 'insights' command.
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Print a wrapped summary of the data file",
	Long: `The insights command summarises the purchase history: spend, trips,
favourite store and products, shopping habits, and the product with the
strongest seasonal spike.

With --xlsx (or insights.xlsx_output in the config) the summary is also
written to an Excel workbook.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}

		dataPath := cfg.DataFile
		if insightsDataFile != "" {
			dataPath = insightsDataFile
		}
		xlsxPath := cfg.Insights.XLSXOutput
		if insightsXLSX != "" {
			xlsxPath = insightsXLSX
		}

		dataset, err := datafile.Load(dataPath)
		if err != nil {
			return err
		}

		summary, err := insights.Analyze(dataset, cfg.Insights.TopProducts)
		if err != nil {
			return fmt.Errorf("failed to analyze %s: %w", dataPath, err)
		}
		logger.Debug("insights computed", "trips", summary.TotalTrips, "spike", summary.SpikeProduct)

		if err := insights.Write(cmd.OutOrStdout(), summary); err != nil {
			return err
		}

		if xlsxPath == "" {
			return nil
		}
		if err := report.WriteWorkbook(xlsxPath, summary); err != nil {
			return err
		}
		logger.Info("workbook written", "path", xlsxPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)

	insightsCmd.Flags().StringVar(&insightsDataFile, "data", "", "Data file to summarise (default from config)")
	insightsCmd.Flags().StringVar(&insightsXLSX, "xlsx", "", "Also write the summary to this XLSX workbook")
}
