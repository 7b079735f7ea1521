// =============================================================================
// Seasonal Augmenter - December Transaction Synthesizer
// =============================================================================
//
// Builds one new wine-heavy basket for every entry in DecemberDates and
// appends them to the dataset.
//
// BASKET CONTENTS:
//   1. Store: uniform over DecemberStores
//   2. Bottles: 1-4, weighted 2:5:4:2, each uniform over DecemberWines
//   3. Groceries: with probability 0.5, 1-3 items uniform over
//      DecemberGroceries (repeats allowed)
//   Every line item has quantity 1.
//
// BASKET VALUES:
//   net     = total
//   gross   = total + 0.20
//   savings = 5% of total
//   All rounded to two decimal places. Payment is a single contactless
//   Mastercard debit for the net amount.
//
// =============================================================================

package seasonal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/seasonal-augmenter/internal/types"
)

var (
	decemberBottleCounts  = []int{1, 2, 3, 4}
	decemberBottleWeights = []int{2, 5, 4, 2}
)

const (
	// DecemberGroceryProbability is the chance a December basket also holds
	// everyday groceries.
	DecemberGroceryProbability = 0.5

	// DecemberMaxGroceries is the most grocery items a December basket holds.
	DecemberMaxGroceries = 3
)

var (
	// DecemberMarkup is added to the gross value of a December basket.
	DecemberMarkup = types.MustMoney("0.20")

	// DecemberSavingsRate is the share of the total recorded as savings.
	DecemberSavingsRate = types.MustMoney("0.05")
)

// Fixed fields of every synthesized basket.
const (
	decemberPurchaseType    = "instore"
	decemberPaymentType     = "MASTERCARD_DEBIT"
	decemberPaymentCategory = "Contactless"
)

// AddDecemberTransactions appends one synthesized basket per December date
// to the dataset and returns how many were created.
func AddDecemberTransactions(dataset *types.Dataset, rng RandomSource) (int, error) {
	records := make([]*types.Purchase, 0, len(DecemberDates))
	for _, date := range DecemberDates {
		records = append(records, NewDecemberPurchase(date, rng))
	}

	if err := dataset.AppendPurchases(records...); err != nil {
		return 0, fmt.Errorf("failed to append December purchases: %w", err)
	}
	return len(records), nil
}

// NewDecemberPurchase builds a single synthesized basket stamped with date.
func NewDecemberPurchase(date string, rng RandomSource) *types.Purchase {
	store := DecemberStores[rng.IntN(len(DecemberStores))]

	var products []types.Product
	total := decimal.Zero

	bottles := decemberBottleCounts[weightedIndex(rng, decemberBottleWeights)]
	for range bottles {
		wine := DecemberWines[rng.IntN(len(DecemberWines))]
		products = append(products, wine.LineItem(1))
		total = total.Add(wine.Price)
	}

	if chance(rng, DecemberGroceryProbability) {
		groceries := 1 + rng.IntN(DecemberMaxGroceries)
		for range groceries {
			item := DecemberGroceries[rng.IntN(len(DecemberGroceries))]
			products = append(products, item.LineItem(1))
			total = total.Add(item.Price)
		}
	}

	net := types.FormatMoney(total)
	gross := types.FormatMoney(total.Add(DecemberMarkup))
	// Half-cent savings round away from zero (22.50 gives 1.13).
	savings := types.FormatMoney(total.Mul(DecemberSavingsRate))

	return &types.Purchase{
		BasketValueGross:     gross,
		PurchaseType:         decemberPurchaseType,
		OverallBasketSavings: savings,
		StoreID:              store.ID,
		StoreAddress:         store.Address,
		PaymentType: []types.Payment{{
			Type:     decemberPaymentType,
			Category: decemberPaymentCategory,
			Amount:   net,
		}},
		TimeStamp:      date,
		BasketValueNet: net,
		Says:           types.NotApplicable,
		StoreName:      store.Name,
		StoreFormat:    store.Format,
		Product:        products,
	}
}
