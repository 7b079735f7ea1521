// =============================================================================
// Seasonal Augmenter - Wrapped Insights
// =============================================================================
//
// This module summarises a dataset into a year-in-review: spend, trips,
// favourite store and products, shopping habits, and the product whose
// monthly sales vary the most (the seasonal spike the augmenter plants).
//
// RECORD HANDLING:
//   - null and empty records are ignored entirely
//   - records with a malformed timestamp count towards spend, stores and
//     products but not towards any time-of-year statistic
//   - malformed amounts and quantities contribute zero
//
// TIES:
//   Every "favourite" and "top" pick goes to the key seen LAST among those
//   with the highest count; rankings keep first-seen order among equals.
//
// =============================================================================

package insights

import (
	"encoding/json"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/seasonal-augmenter/internal/types"
)

const (
	// profileMember is the top-level member holding the customer profile.
	profileMember = "Customer Profile And Contact Data"

	// NightOwlHour is the hour from which a trip counts as late-night.
	NightOwlHour = 22

	// SpikeMinimumUnits is how many units a product must sell in total to
	// be considered for spike detection.
	SpikeMinimumUnits = 10
)

// Personalities.
const (
	WeekendWarrior = "Weekend Warrior"
	WeekdayRegular = "Weekday Regular"
)

// ProductCount is a product and the number of units bought.
type ProductCount struct {
	Name     string
	Quantity int
}

// MonthCount is the number of units bought in a month.
type MonthCount struct {
	Month time.Month
	Count int
}

// Insights is the wrapped summary of a dataset.
type Insights struct {
	CustomerName string

	TotalSpent    decimal.Decimal
	TotalSavings  decimal.Decimal
	AverageBasket decimal.Decimal
	BiggestShop   decimal.Decimal
	TotalTrips    int

	FavoriteStore      string
	FavoriteStoreCount int
	FavoritePayment    string

	TopProduct      string
	TopProductCount int
	TopProducts     []ProductCount
	TotalProducts   int
	UniqueProducts  int
	ChocolateCount  int

	BusiestMonth        time.Month
	FavoriteDay         time.Weekday
	ShoppingPersonality string
	NightOwlTrips       int

	SummerFlavor      string
	SummerFlavorCount int

	SpikeProduct   string
	SpikeMonth     time.Month
	SpikeVariation float64
	SpikeData      []MonthCount
}

// Analyze computes the wrapped summary. topN bounds the TopProducts list.
func Analyze(dataset *types.Dataset, topN int) (*Insights, error) {
	purchases, err := dataset.Purchases()
	if err != nil {
		return nil, err
	}

	ins := &Insights{
		CustomerName: customerName(dataset),
		TotalSpent:   decimal.Zero,
		TotalSavings: decimal.Zero,
		BiggestShop:  decimal.Zero,
	}

	stores := newCounter()
	payments := newCounter()
	products := newCounter()
	summer := newCounter()
	months := newCounter()
	monthly := make(map[string]*[12]int)
	var weekdays [7]int

	for _, purchase := range purchases {
		if purchase.IsEmpty() {
			continue
		}
		ins.TotalTrips++

		if net, err := purchase.Net(); err == nil {
			ins.TotalSpent = ins.TotalSpent.Add(net)
			if net.GreaterThan(ins.BiggestShop) {
				ins.BiggestShop = net
			}
		}
		if savings, err := purchase.Savings(); err == nil {
			ins.TotalSavings = ins.TotalSavings.Add(savings)
		}

		stores.add(purchase.StoreName, 1)
		if len(purchase.PaymentType) > 0 {
			payments.add(purchase.PaymentType[0].Type, 1)
		}

		ts, timeErr := purchase.Time()
		if timeErr == nil {
			months.add(ts.Month().String(), 1)
			weekdays[ts.Weekday()]++
			if ts.Hour() >= NightOwlHour {
				ins.NightOwlTrips++
			}
		}

		for i := range purchase.Product {
			item := &purchase.Product[i]
			qty := quantity(item)

			ins.TotalProducts += qty
			products.add(item.Name, qty)
			if isChocolate(item.Name) {
				ins.ChocolateCount += qty
			}

			if timeErr != nil {
				continue
			}
			if ts.Month() >= time.June && ts.Month() <= time.August {
				summer.add(item.Name, qty)
			}
			series, ok := monthly[item.Name]
			if !ok {
				series = new([12]int)
				monthly[item.Name] = series
			}
			series[ts.Month()-1] += qty
		}
	}

	if ins.TotalTrips > 0 {
		ins.AverageBasket = ins.TotalSpent.Div(decimal.NewFromInt(int64(ins.TotalTrips)))
	}

	ins.FavoriteStore, ins.FavoriteStoreCount = stores.top()
	ins.FavoritePayment, _ = payments.top()
	ins.TopProduct, ins.TopProductCount = products.top()
	ins.TopProducts = products.ranked(topN)
	ins.UniqueProducts = len(products.order)
	ins.SummerFlavor, ins.SummerFlavorCount = summer.top()

	if busiest, _ := months.top(); busiest != "" {
		ins.BusiestMonth = monthByName(busiest)
	}

	favorite := 0
	for day := range weekdays {
		if weekdays[day] >= weekdays[favorite] {
			favorite = day
		}
	}
	ins.FavoriteDay = time.Weekday(favorite)

	weekend := weekdays[time.Saturday] + weekdays[time.Sunday]
	if weekend > ins.TotalTrips-weekend {
		ins.ShoppingPersonality = WeekendWarrior
	} else {
		ins.ShoppingPersonality = WeekdayRegular
	}

	detectSpike(ins, products.order, monthly)

	return ins, nil
}

// detectSpike finds the product with the highest coefficient of variation
// across the twelve months, among products with enough units sold.
func detectSpike(ins *Insights, names []string, monthly map[string]*[12]int) {
	for _, name := range names {
		series, ok := monthly[name]
		if !ok {
			continue
		}

		total := 0
		for _, v := range series {
			total += v
		}
		if total < SpikeMinimumUnits {
			continue
		}

		mean := float64(total) / 12
		variance := 0.0
		for _, v := range series {
			variance += (float64(v) - mean) * (float64(v) - mean)
		}
		variance /= 12
		cv := math.Sqrt(variance) / mean

		if cv <= ins.SpikeVariation {
			continue
		}

		ins.SpikeVariation = cv
		ins.SpikeProduct = name
		ins.SpikeData = make([]MonthCount, 12)
		peak := 0
		for i, v := range series {
			ins.SpikeData[i] = MonthCount{Month: time.Month(i + 1), Count: v}
			if v > series[peak] {
				peak = i
			}
		}
		ins.SpikeMonth = time.Month(peak + 1)
	}
}

func quantity(item *types.Product) int {
	qty, err := item.Qty()
	if err != nil {
		return 0
	}
	return int(qty.IntPart())
}

func isChocolate(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "chocolate") || strings.Contains(lower, "choc ")
}

func monthByName(name string) time.Month {
	for m := time.January; m <= time.December; m++ {
		if m.String() == name {
			return m
		}
	}
	return 0
}

// customerName reads the first name from the customer profile, if any.
func customerName(dataset *types.Dataset) string {
	raw, ok := dataset.Member(profileMember)
	if !ok {
		return ""
	}

	var profile struct {
		OnlineAccount struct {
			FirstName string `json:"first name"`
		} `json:"Online Account"`
	}
	if err := json.Unmarshal(raw, &profile); err != nil {
		return ""
	}
	return profile.OnlineAccount.FirstName
}

// =============================================================================
// ORDERED COUNTER
// =============================================================================

// counter tallies keys and remembers the order they were first seen in.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string, n int) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// top returns the key with the highest count; the last-seen key wins ties.
func (c *counter) top() (string, int) {
	best, bestCount := "", 0
	for i, key := range c.order {
		if i == 0 || c.counts[key] >= bestCount {
			best, bestCount = key, c.counts[key]
		}
	}
	return best, bestCount
}

// ranked returns up to n keys by descending count, first-seen first among
// equals.
func (c *counter) ranked(n int) []ProductCount {
	out := make([]ProductCount, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, ProductCount{Name: key, Quantity: c.counts[key]})
	}
	slices.SortStableFunc(out, func(a, b ProductCount) int {
		return b.Quantity - a.Quantity
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
