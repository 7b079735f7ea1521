package insights

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ginjaninja78/seasonal-augmenter/internal/types"
)

// spikeEmoji is the glyph the monthly chart is drawn with.
const spikeEmoji = "🍷"

// Write renders the summary as plain text.
func Write(w io.Writer, ins *Insights) error {
	name := ins.CustomerName
	if name == "" {
		name = "shopper"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "=== Your Tesco Wrapped 2025 ===\n\n")
	fmt.Fprintf(&b, "You spent:          £%s (£%s per trip)\n", types.FormatMoney(ins.TotalSpent), types.FormatMoney(ins.AverageBasket))
	fmt.Fprintf(&b, "Trips:              %d\n", ins.TotalTrips)
	fmt.Fprintf(&b, "Go-to store:        %s (%d visits)\n", ins.FavoriteStore, ins.FavoriteStoreCount)
	fmt.Fprintf(&b, "Top product:        %s (%d bought)\n", ins.TopProduct, ins.TopProductCount)
	fmt.Fprintf(&b, "Busiest month:      %s\n", monthName(ins))
	fmt.Fprintf(&b, "Favourite day:      %s (%s)\n", ins.FavoriteDay, ins.ShoppingPersonality)
	if ins.SummerFlavor != "" {
		fmt.Fprintf(&b, "Summer flavour:     %s (%d bought June-August)\n", ins.SummerFlavor, ins.SummerFlavorCount)
	}
	if ins.ChocolateCount > 0 {
		fmt.Fprintf(&b, "Chocolate:          %d bars and treats\n", ins.ChocolateCount)
	}
	if ins.NightOwlTrips > 0 {
		fmt.Fprintf(&b, "Night owl trips:    %d after %d:00\n", ins.NightOwlTrips, NightOwlHour)
	}
	fmt.Fprintf(&b, "Clubcard savings:   £%s\n", types.FormatMoney(ins.TotalSavings))
	fmt.Fprintf(&b, "Biggest splurge:    £%s\n", types.FormatMoney(ins.BiggestShop))
	fmt.Fprintf(&b, "Unique products:    %d of %d items\n", ins.UniqueProducts, ins.TotalProducts)
	fmt.Fprintf(&b, "Favourite payment:  %s\n", strings.ReplaceAll(ins.FavoritePayment, "_", " "))

	if len(ins.TopProducts) > 0 {
		fmt.Fprintf(&b, "\nTop %d products:\n", len(ins.TopProducts))
		for i, p := range ins.TopProducts {
			fmt.Fprintf(&b, "  %d. %s (%d)\n", i+1, p.Name, p.Quantity)
		}
	}

	if ins.SpikeProduct != "" {
		fmt.Fprintf(&b, "\nSeasonal spike: %s peaks in %s\n", ins.SpikeProduct, ins.SpikeMonth)
		b.WriteString(SpikeChart(ins.SpikeData))
	}

	fmt.Fprintf(&b, "\nSee you at the checkouts, %s!\n", name)

	_, err := io.WriteString(w, b.String())
	return err
}

// SpikeChart draws one row per month with a glyph for every three units,
// capped at ten glyphs.
func SpikeChart(data []MonthCount) string {
	var b strings.Builder
	for _, d := range data {
		bar := ""
		if d.Count > 0 {
			n := int(math.Ceil(float64(d.Count) / 3))
			bar = strings.Repeat(spikeEmoji, min(max(n, 1), 10))
		}
		fmt.Fprintf(&b, "  %s %4d %s\n", d.Month.String()[:3], d.Count, bar)
	}
	return b.String()
}

func monthName(ins *Insights) string {
	if ins.BusiestMonth == 0 {
		return "n/a"
	}
	return ins.BusiestMonth.String()
}
