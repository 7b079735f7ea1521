// =============================================================================
// Seasonal Augmenter - Product and Store Catalogue
// =============================================================================
//
// Fixed products, prices, stores and dates used by the augment steps.
// Prices are decimals; they are formatted to strings only when a line item
// or basket value is written.
//
// =============================================================================

package seasonal

import (
	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/seasonal-augmenter/internal/types"
)

// ChannelInStore is the sales channel of every line item this package adds.
const ChannelInStore = "instore"

// CatalogueItem is a product the augmenter can put in a basket.
type CatalogueItem struct {
	Name           string
	Price          decimal.Decimal
	WeightInGrams  string
	VolumeInLitres string
}

// LineItem builds an in-store line item for quantity units of the item.
func (c CatalogueItem) LineItem(quantity int) types.Product {
	return types.Product{
		Name:           c.Name,
		Quantity:       decimal.NewFromInt(int64(quantity)).String(),
		Channel:        ChannelInStore,
		WeightInGrams:  c.WeightInGrams,
		Price:          types.FormatMoney(c.Price),
		VolumeInLitres: c.VolumeInLitres,
	}
}

// =============================================================================
// SEASONAL PRODUCTS
// =============================================================================

// Strawberries are added to existing baskets, mostly in summer.
var Strawberries = CatalogueItem{
	Name:           "Tesco British Strawberries 400G",
	Price:          types.MustMoney("2.75"),
	WeightInGrams:  "400",
	VolumeInLitres: types.NotApplicable,
}

// Prosecco is added to existing baskets all year round.
var Prosecco = CatalogueItem{
	Name:           "Tesco Finest Prosecco 75Cl",
	Price:          types.MustMoney("7.00"),
	WeightInGrams:  types.NotApplicable,
	VolumeInLitres: "0.75",
}

// Champagne is only sold in synthesized December baskets.
var Champagne = CatalogueItem{
	Name:           "Tesco Finest Champagne 75Cl",
	Price:          types.MustMoney("15.00"),
	WeightInGrams:  types.NotApplicable,
	VolumeInLitres: "0.75",
}

// RedWine is only sold in synthesized December baskets.
var RedWine = CatalogueItem{
	Name:           "Tesco Finest Red Wine 75Cl",
	Price:          types.MustMoney("8.50"),
	WeightInGrams:  types.NotApplicable,
	VolumeInLitres: "0.75",
}

// DecemberWines are the bottles a December basket is filled with.
var DecemberWines = []CatalogueItem{Prosecco, Champagne, RedWine}

// DecemberGroceries are the everyday items some December baskets also get.
var DecemberGroceries = []CatalogueItem{
	{Name: "Tesco Cherry Tomatoes 330G", Price: types.MustMoney("2.00"), WeightInGrams: "330", VolumeInLitres: types.NotApplicable},
	{Name: "Tesco Finest Sourdough Bread 400G", Price: types.MustMoney("2.20"), WeightInGrams: "400", VolumeInLitres: types.NotApplicable},
	{Name: "Tesco British Free Range Eggs 6 Pack", Price: types.MustMoney("2.85"), WeightInGrams: types.NotApplicable, VolumeInLitres: types.NotApplicable},
	{Name: "Tesco Fresh Milk Semi-Skimmed 2.27L", Price: types.MustMoney("1.60"), WeightInGrams: types.NotApplicable, VolumeInLitres: "2.27"},
}

// =============================================================================
// STORES
// =============================================================================

// DecemberStores are the shops synthesized December baskets are bought in.
var DecemberStores = []types.Store{
	{ID: "5121", Name: "LONDON KENSINGTON EXT", Format: "Extra", Address: "Cromwell Road,LONDON,GREATER LONDON"},
	{ID: "5247", Name: "LONDON CAMDEN EXP", Format: "Express", Address: "117-125 Camden High Street,LONDON,GREATER LONDON"},
}

// =============================================================================
// DECEMBER DATES
// =============================================================================

// DecemberDates are the timestamps of the synthesized December baskets, one
// basket per entry.
var DecemberDates = []string{
	"2025-12-01 18:30:00", "2025-12-05 19:00:00", "2025-12-07 14:20:00",
	"2025-12-10 17:45:00", "2025-12-12 20:10:00", "2025-12-14 16:30:00",
	"2025-12-15 11:00:00", "2025-12-17 19:30:00", "2025-12-18 18:00:00",
	"2025-12-19 20:45:00", "2025-12-20 12:30:00", "2025-12-21 15:00:00",
	"2025-12-22 17:20:00", "2025-12-23 10:30:00", "2025-12-23 18:45:00",
	"2025-12-24 09:00:00", "2025-12-24 16:30:00", "2025-12-27 14:00:00",
	"2025-12-29 19:00:00", "2025-12-31 11:30:00",
}
