// =============================================================================
// Seasonal Augmenter - Shared Types
// =============================================================================
//
// This package contains the dataset model shared by every module:
//   - datafile   : loads and saves the Dataset
//   - seasonal   : mutates and appends Purchase records
//   - validation : checks Purchase records
//   - insights   : summarises Purchase records
//
// WIRE FORMAT:
//   Every object remembers the order of its keys and any member this package
//   does not model, so a load followed by a save reproduces the file apart
//   from whitespace. Monetary values stay strings on the wire and are parsed
//   into decimals only when they are read or rewritten.
//
// =============================================================================

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the layout of Purchase.TimeStamp.
const TimestampLayout = "2006-01-02 15:04:05"

// NotApplicable is the sentinel used for weight and volume fields that do not
// apply to a product.
const NotApplicable = "NA"

// ErrNoPurchases is returned when a dataset has no purchase list.
var ErrNoPurchases = errors.New("dataset has no purchase list")

// =============================================================================
// DATASET
// =============================================================================

// Dataset is the top-level document. Purchases live under the "Purchase" key
// as a one-element list whose sole element is the purchase list.
type Dataset struct {
	// Purchase holds the nested purchase lists exactly as they appear on disk.
	Purchase [][]*Purchase

	fields objectFields
}

var datasetKeys = []string{"Purchase"}

// Purchases returns the purchase list the augmenter works on.
func (d *Dataset) Purchases() ([]*Purchase, error) {
	if len(d.Purchase) == 0 {
		return nil, ErrNoPurchases
	}
	return d.Purchase[0], nil
}

// AppendPurchases adds records to the end of the purchase list.
func (d *Dataset) AppendPurchases(records ...*Purchase) error {
	if len(d.Purchase) == 0 {
		return ErrNoPurchases
	}
	d.Purchase[0] = append(d.Purchase[0], records...)
	return nil
}

// Member returns the raw value of a top-level key this package does not
// model, such as the customer profile.
func (d *Dataset) Member(key string) (json.RawMessage, bool) {
	raw, ok := d.fields.extra[key]
	return raw, ok
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	keys, raw, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	d.fields = objectFields{keys: keys, extra: make(map[string]json.RawMessage), decoded: true}
	for _, key := range keys {
		if key == "Purchase" {
			if err := json.Unmarshal(raw[key], &d.Purchase); err != nil {
				return fmt.Errorf("dataset: Purchase: %w", err)
			}
			continue
		}
		d.fields.extra[key] = raw[key]
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Dataset) MarshalJSON() ([]byte, error) {
	return encodeObject(d.fields, datasetKeys, map[string]any{
		"Purchase": d.Purchase,
	})
}

// =============================================================================
// PURCHASE RECORD
// =============================================================================

// Purchase is a single basket.
type Purchase struct {
	BasketValueGross     string
	PurchaseType         string
	OverallBasketSavings string
	StoreID              string
	StoreAddress         string
	PaymentType          []Payment
	TimeStamp            string
	BasketValueNet       string
	Says                 string
	StoreName            string
	StoreFormat          string
	Product              []Product

	fields objectFields
}

// purchaseKeys is the canonical key order used for records built in code.
var purchaseKeys = []string{
	"basketValueGross",
	"purchaseType",
	"overallBasketSavings",
	"storeId",
	"storeAddress",
	"paymentType",
	"timeStamp",
	"basketValueNet",
	"says",
	"storeName",
	"storeFormat",
	"product",
}

func (p *Purchase) members() map[string]any {
	return map[string]any{
		"basketValueGross":     &p.BasketValueGross,
		"purchaseType":         &p.PurchaseType,
		"overallBasketSavings": &p.OverallBasketSavings,
		"storeId":              &p.StoreID,
		"storeAddress":         &p.StoreAddress,
		"paymentType":          &p.PaymentType,
		"timeStamp":            &p.TimeStamp,
		"basketValueNet":       &p.BasketValueNet,
		"says":                 &p.Says,
		"storeName":            &p.StoreName,
		"storeFormat":          &p.StoreFormat,
		"product":              &p.Product,
	}
}

// IsEmpty reports whether the record was decoded from an object with no
// members.
func (p *Purchase) IsEmpty() bool {
	return p == nil || (p.fields.decoded && len(p.fields.keys) == 0)
}

// Time parses the record's timestamp.
func (p *Purchase) Time() (time.Time, error) {
	if p.TimeStamp == "" {
		return time.Time{}, errors.New("missing timestamp")
	}
	// time.Parse accepts fractional seconds the layout does not name.
	if len(p.TimeStamp) != len(TimestampLayout) {
		return time.Time{}, fmt.Errorf("timestamp %q does not match %q", p.TimeStamp, TimestampLayout)
	}
	return time.Parse(TimestampLayout, p.TimeStamp)
}

// Net parses the basket net value.
func (p *Purchase) Net() (decimal.Decimal, error) {
	return ParseMoney(p.BasketValueNet)
}

// Gross parses the basket gross value.
func (p *Purchase) Gross() (decimal.Decimal, error) {
	return ParseMoney(p.BasketValueGross)
}

// Savings parses the overall basket savings.
func (p *Purchase) Savings() (decimal.Decimal, error) {
	return ParseMoney(p.OverallBasketSavings)
}

// SetBasketValues rewrites the net and gross values with two decimal places.
func (p *Purchase) SetBasketValues(net, gross decimal.Decimal) {
	p.BasketValueNet = FormatMoney(net)
	p.BasketValueGross = FormatMoney(gross)
	p.fields.own("basketValueNet")
	p.fields.own("basketValueGross")
}

// HasProductList reports whether the product member is absent or a list of
// line items. A null or malformed member is kept raw and cannot be appended
// to.
func (p *Purchase) HasProductList() bool {
	_, raw := p.fields.extra["product"]
	return !raw
}

// AppendProduct adds a line item to the end of the product list.
func (p *Purchase) AppendProduct(item Product) error {
	if !p.HasProductList() {
		return errors.New("product member is not a list of line items")
	}
	p.Product = append(p.Product, item)
	p.fields.own("product")
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Purchase) UnmarshalJSON(data []byte) error {
	fields, err := decodeMembers(data, p.members())
	if err != nil {
		return fmt.Errorf("purchase: %w", err)
	}
	p.fields = fields
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p *Purchase) MarshalJSON() ([]byte, error) {
	return encodeObject(p.fields, purchaseKeys, p.members())
}

// =============================================================================
// PRODUCT LINE ITEM
// =============================================================================

// Product is one line item of a basket.
type Product struct {
	Name           string
	Quantity       string
	Channel        string
	WeightInGrams  string
	Price          string
	VolumeInLitres string

	fields objectFields
}

var productKeys = []string{
	"name",
	"quantity",
	"channel",
	"weightInGrams",
	"price",
	"volumeInLitres",
}

func (p *Product) members() map[string]any {
	return map[string]any{
		"name":           &p.Name,
		"quantity":       &p.Quantity,
		"channel":        &p.Channel,
		"weightInGrams":  &p.WeightInGrams,
		"price":          &p.Price,
		"volumeInLitres": &p.VolumeInLitres,
	}
}

// UnitPrice parses the product's unit price.
func (p *Product) UnitPrice() (decimal.Decimal, error) {
	return ParseMoney(p.Price)
}

// Qty parses the product's quantity.
func (p *Product) Qty() (decimal.Decimal, error) {
	if p.Quantity == "" {
		return decimal.Zero, errors.New("missing quantity")
	}
	return decimal.NewFromString(p.Quantity)
}

// LineTotal returns unit price times quantity.
func (p *Product) LineTotal() (decimal.Decimal, error) {
	price, err := p.UnitPrice()
	if err != nil {
		return decimal.Zero, fmt.Errorf("price: %w", err)
	}
	qty, err := p.Qty()
	if err != nil {
		return decimal.Zero, fmt.Errorf("quantity: %w", err)
	}
	return price.Mul(qty), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Product) UnmarshalJSON(data []byte) error {
	fields, err := decodeMembers(data, p.members())
	if err != nil {
		return fmt.Errorf("product: %w", err)
	}
	p.fields = fields
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Product) MarshalJSON() ([]byte, error) {
	return encodeObject(p.fields, productKeys, p.members())
}

// =============================================================================
// PAYMENT ENTRY
// =============================================================================

// Payment is one tender used to pay for a basket.
type Payment struct {
	Type     string
	Category string
	Amount   string

	fields objectFields
}

var paymentKeys = []string{"type", "category", "amount"}

func (p *Payment) members() map[string]any {
	return map[string]any{
		"type":     &p.Type,
		"category": &p.Category,
		"amount":   &p.Amount,
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Payment) UnmarshalJSON(data []byte) error {
	fields, err := decodeMembers(data, p.members())
	if err != nil {
		return fmt.Errorf("payment: %w", err)
	}
	p.fields = fields
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Payment) MarshalJSON() ([]byte, error) {
	return encodeObject(p.fields, paymentKeys, p.members())
}

// =============================================================================
// STORE
// =============================================================================

// Store identifies the shop a basket was bought in.
type Store struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Format  string `yaml:"format"`
	Address string `yaml:"address"`
}
