// =============================================================================
// Seasonal Augmenter - Seasonal Injectors
// =============================================================================
//
// The injectors walk the existing purchase list and append a seasonal line
// item to some baskets, rewriting the basket values to match.
//
// SKIP RULES (both injectors):
//   - null or empty records
//   - records whose timestamp is missing or not "YYYY-MM-DD HH:MM:SS"
//   Skipped records are never touched and are not errors.
//
// BASKET UPDATE:
//   net   += price × quantity
//   gross += price × quantity + markup   (markup once per basket, not per unit)
//
// =============================================================================

package seasonal

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/seasonal-augmenter/internal/types"
)

// =============================================================================
// STRAWBERRY RULES
// =============================================================================

// SummerMonths are the months strawberries sell best.
var SummerMonths = []time.Month{time.June, time.July, time.August}

const (
	// StrawberrySummerProbability is the chance a summer basket gets
	// strawberries.
	StrawberrySummerProbability = 0.80

	// StrawberryOffSeasonProbability is the chance any other basket does.
	StrawberryOffSeasonProbability = 0.15
)

// strawberrySummerQuantities and their weights: two punnets is twice as
// likely as one or three.
var (
	strawberrySummerQuantities = []int{1, 2, 3}
	strawberrySummerWeights    = []int{1, 2, 1}
)

// StrawberryMarkup is added to the gross value of a basket that gets
// strawberries.
var StrawberryMarkup = types.MustMoney("0.10")

// =============================================================================
// WINE RULES
// =============================================================================

// WineProbability is the chance any basket gets a bottle, whatever the month.
const WineProbability = 0.10

// WineMarkup is added to the gross value of a basket that gets wine.
var WineMarkup = types.MustMoney("0.15")

// =============================================================================
// INJECTORS
// =============================================================================

// AddStrawberries appends strawberries to purchases in place and returns how
// many baskets were changed.
//
// Summer baskets (June to August) get strawberries with probability 0.80, in
// a quantity of 1, 2 or 3 weighted 1:2:1. Other baskets get a single punnet
// with probability 0.15.
func AddStrawberries(purchases []*types.Purchase, rng RandomSource) (int, error) {
	added := 0

	for i, purchase := range purchases {
		month, ok := purchaseMonth(purchase)
		if !ok {
			continue
		}

		quantity := 0
		if slices.Contains(SummerMonths, month) {
			if !chance(rng, StrawberrySummerProbability) {
				continue
			}
			quantity = strawberrySummerQuantities[weightedIndex(rng, strawberrySummerWeights)]
		} else {
			if !chance(rng, StrawberryOffSeasonProbability) {
				continue
			}
			quantity = 1
		}

		if err := inject(purchase, Strawberries, quantity, StrawberryMarkup); err != nil {
			return added, fmt.Errorf("purchase %d: %w", i, err)
		}
		added++
	}

	return added, nil
}

// AddWine appends a bottle of prosecco to purchases in place with a flat
// probability of 0.10 and returns how many baskets were changed.
func AddWine(purchases []*types.Purchase, rng RandomSource) (int, error) {
	added := 0

	for i, purchase := range purchases {
		if _, ok := purchaseMonth(purchase); !ok {
			continue
		}

		if !chance(rng, WineProbability) {
			continue
		}

		if err := inject(purchase, Prosecco, 1, WineMarkup); err != nil {
			return added, fmt.Errorf("purchase %d: %w", i, err)
		}
		added++
	}

	return added, nil
}

// purchaseMonth returns the month of an eligible purchase. ok is false for
// records the injectors skip.
func purchaseMonth(purchase *types.Purchase) (time.Month, bool) {
	if purchase.IsEmpty() {
		return 0, false
	}
	ts, err := purchase.Time()
	if err != nil {
		return 0, false
	}
	return ts.Month(), true
}

// inject appends quantity units of item to the purchase and rewrites its
// basket values. The purchase is left unchanged on error.
func inject(purchase *types.Purchase, item CatalogueItem, quantity int, markup decimal.Decimal) error {
	net, err := purchase.Net()
	if err != nil {
		return fmt.Errorf("invalid basketValueNet %q: %w", purchase.BasketValueNet, err)
	}
	gross, err := purchase.Gross()
	if err != nil {
		return fmt.Errorf("invalid basketValueGross %q: %w", purchase.BasketValueGross, err)
	}

	if err := purchase.AppendProduct(item.LineItem(quantity)); err != nil {
		return err
	}

	cost := item.Price.Mul(decimal.NewFromInt(int64(quantity)))
	purchase.SetBasketValues(net.Add(cost), gross.Add(cost).Add(markup))
	return nil
}
