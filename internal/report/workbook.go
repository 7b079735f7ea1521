// =============================================================================
// Seasonal Augmenter - Wrapped Workbook Export
// =============================================================================
//
// Writes the wrapped insights to an XLSX workbook with three sheets:
//
//   | Sheet          | Contents                                           |
//   |----------------|----------------------------------------------------|
//   | Summary        | one "Metric | Value" row per headline statistic    |
//   | Top Products   | rank, product name and units bought                |
//   | Monthly Spike  | units of the spike product per month, plus a chart |
//
// Money is written as numbers with a "£0.00" number format so the sheet can
// be summed in a spreadsheet without parsing text.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/seasonal-augmenter/internal/insights"
)

// Sheet names.
const (
	SummarySheet     = "Summary"
	TopProductsSheet = "Top Products"
	SpikeSheet       = "Monthly Spike"
)

// moneyFormat is the custom number format applied to money cells.
const moneyFormat = "£#,##0.00"

// WriteWorkbook saves ins as an XLSX workbook at filePath.
func WriteWorkbook(filePath string, ins *insights.Insights) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, name := range []string{TopProductsSheet, SpikeSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	if err := writeSummary(f, styles, ins); err != nil {
		return err
	}
	if err := writeTopProducts(f, styles, ins); err != nil {
		return err
	}
	if err := writeSpike(f, styles, ins); err != nil {
		return err
	}

	f.SetActiveSheet(0)

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", filePath, err)
	}
	return nil
}

type sheetStyles struct {
	header int
	money  int
}

func newStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
	})
	if err != nil {
		return s, fmt.Errorf("failed to create header style: %w", err)
	}

	format := moneyFormat
	s.money, err = f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return s, fmt.Errorf("failed to create money style: %w", err)
	}
	return s, nil
}

// writeHeader writes a bold header row and sizes the columns.
func writeHeader(f *excelize.File, styles sheetStyles, sheet string, headers []interface{}, width float64) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, styles.header); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, width)
}

func writeSummary(f *excelize.File, styles sheetStyles, ins *insights.Insights) error {
	if err := writeHeader(f, styles, SummarySheet, []interface{}{"Metric", "Value"}, 24); err != nil {
		return err
	}

	busiest := ""
	if ins.BusiestMonth != 0 {
		busiest = ins.BusiestMonth.String()
	}

	rows := [][]interface{}{
		{"Customer", ins.CustomerName},
		{"Total spent", ins.TotalSpent.InexactFloat64()},
		{"Average basket", ins.AverageBasket.InexactFloat64()},
		{"Biggest shop", ins.BiggestShop.InexactFloat64()},
		{"Total savings", ins.TotalSavings.InexactFloat64()},
		{"Trips", ins.TotalTrips},
		{"Favourite store", ins.FavoriteStore},
		{"Favourite store visits", ins.FavoriteStoreCount},
		{"Favourite payment", ins.FavoritePayment},
		{"Top product", ins.TopProduct},
		{"Top product units", ins.TopProductCount},
		{"Products bought", ins.TotalProducts},
		{"Unique products", ins.UniqueProducts},
		{"Chocolate", ins.ChocolateCount},
		{"Busiest month", busiest},
		{"Favourite day", ins.FavoriteDay.String()},
		{"Personality", ins.ShoppingPersonality},
		{"Night owl trips", ins.NightOwlTrips},
		{"Summer flavour", ins.SummerFlavor},
		{"Seasonal spike", ins.SpikeProduct},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+2, err)
		}
	}

	// Rows 3 to 6 hold the money values.
	if err := f.SetCellStyle(SummarySheet, "B3", "B6", styles.money); err != nil {
		return fmt.Errorf("failed to style money cells: %w", err)
	}
	return nil
}

func writeTopProducts(f *excelize.File, styles sheetStyles, ins *insights.Insights) error {
	if err := writeHeader(f, styles, TopProductsSheet, []interface{}{"Rank", "Product", "Units"}, 20); err != nil {
		return err
	}

	for i, p := range ins.TopProducts {
		row := []interface{}{i + 1, p.Name, p.Quantity}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(TopProductsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write product row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeSpike(f *excelize.File, styles sheetStyles, ins *insights.Insights) error {
	if err := writeHeader(f, styles, SpikeSheet, []interface{}{"Month", "Units"}, 14); err != nil {
		return err
	}
	if ins.SpikeProduct == "" {
		return f.SetCellValue(SpikeSheet, "A2", "No product sold enough units to show a spike")
	}

	for i, d := range ins.SpikeData {
		row := []interface{}{d.Month.String(), d.Count}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SpikeSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write spike row %d: %w", i+2, err)
		}
	}

	last := len(ins.SpikeData) + 1
	ref := func(col string) string {
		return fmt.Sprintf("'%s'!$%s$2:$%s$%d", SpikeSheet, col, col, last)
	}

	err := f.AddChart(SpikeSheet, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       ins.SpikeProduct,
			Categories: ref("A"),
			Values:     ref("B"),
		}},
		Title: []excelize.RichTextRun{{Text: fmt.Sprintf("%s by month", ins.SpikeProduct)}},
	})
	if err != nil {
		return fmt.Errorf("failed to add spike chart: %w", err)
	}
	return nil
}
