package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDataset = `{
  "Customer Profile And Contact Data": {"Online Account": {"first name": "Sam"}},
  "Purchase": [[
    {
      "timeStamp": "2025-07-15 12:00:00",
      "basketValueNet": "10.00",
      "basketValueGross": "10.50",
      "loyaltyPoints": 12,
      "storeName": "Fish & Chips <Express>",
      "product": [
        {"name": "Crème fraîche", "quantity": "1", "price": "1.20", "batch": null}
      ]
    },
    {},
    null
  ]]
}`

func TestDatasetRoundTripPreservesOrderAndUnknownMembers(t *testing.T) {
	var ds Dataset
	require.NoError(t, json.Unmarshal([]byte(sampleDataset), &ds))

	out, err := marshalUnescaped(ds)
	require.NoError(t, err)

	// Compare against the compacted input: whitespace is the only difference.
	var want, got any
	require.NoError(t, json.Unmarshal([]byte(sampleDataset), &want))
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, want, got)

	assert.Contains(t, string(out), `"timeStamp":"2025-07-15 12:00:00","basketValueNet":"10.00","basketValueGross":"10.50","loyaltyPoints":12`)
	assert.Contains(t, string(out), `Fish & Chips <Express>`)
	assert.Contains(t, string(out), `"batch":null`)
	assert.Contains(t, string(out), `},{},null]]`)
}

func TestDatasetPurchases(t *testing.T) {
	var ds Dataset
	require.NoError(t, json.Unmarshal([]byte(sampleDataset), &ds))

	purchases, err := ds.Purchases()
	require.NoError(t, err)
	require.Len(t, purchases, 3)

	assert.False(t, purchases[0].IsEmpty())
	assert.True(t, purchases[1].IsEmpty())
	assert.True(t, purchases[2].IsEmpty())

	raw, ok := ds.Member("Customer Profile And Contact Data")
	require.True(t, ok)
	assert.Contains(t, string(raw), "Sam")
}

func TestDatasetWithoutPurchaseList(t *testing.T) {
	var ds Dataset
	require.NoError(t, json.Unmarshal([]byte(`{"Other": 1}`), &ds))

	_, err := ds.Purchases()
	assert.ErrorIs(t, err, ErrNoPurchases)
	assert.ErrorIs(t, ds.AppendPurchases(&Purchase{}), ErrNoPurchases)
}

func TestPurchaseSettersAppendMissingKeys(t *testing.T) {
	var p Purchase
	require.NoError(t, json.Unmarshal([]byte(`{"timeStamp":"2025-01-01 09:00:00","basketValueNet":"1.00","basketValueGross":"1.10"}`), &p))

	p.SetBasketValues(decimal.RequireFromString("3.75"), decimal.RequireFromString("3.95"))
	require.NoError(t, p.AppendProduct(Product{Name: "Milk", Quantity: "1", Price: "2.75"}))

	out, err := json.Marshal(&p)
	require.NoError(t, err)
	assert.Equal(t,
		`{"timeStamp":"2025-01-01 09:00:00","basketValueNet":"3.75","basketValueGross":"3.95","product":[{"name":"Milk","quantity":"1","channel":"","weightInGrams":"","price":"2.75","volumeInLitres":""}]}`,
		string(out))
}

func TestPurchaseRejectsAppendToMalformedProductList(t *testing.T) {
	var p Purchase
	require.NoError(t, json.Unmarshal([]byte(`{"product":"none"}`), &p))

	err := p.AppendProduct(Product{Name: "Milk"})
	assert.Error(t, err)

	out, err := json.Marshal(&p)
	require.NoError(t, err)
	assert.Equal(t, `{"product":"none"}`, string(out))
}

func TestPurchaseBuiltInCodeUsesCanonicalOrder(t *testing.T) {
	p := &Purchase{
		BasketValueGross: "7.20",
		TimeStamp:        "2025-12-01 18:30:00",
		BasketValueNet:   "7.00",
		PaymentType:      []Payment{{Type: "MASTERCARD_DEBIT", Category: "Contactless", Amount: "7.00"}},
		Product:          []Product{},
	}

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t,
		`{"basketValueGross":"7.20","purchaseType":"","overallBasketSavings":"","storeId":"","storeAddress":"","paymentType":[{"type":"MASTERCARD_DEBIT","category":"Contactless","amount":"7.00"}],"timeStamp":"2025-12-01 18:30:00","basketValueNet":"7.00","says":"","storeName":"","storeFormat":"","product":[]}`,
		string(out))
}

func TestPurchaseTime(t *testing.T) {
	tests := []struct {
		name    string
		stamp   string
		wantErr bool
	}{
		{name: "valid", stamp: "2025-06-01 08:15:00"},
		{name: "missing", stamp: "", wantErr: true},
		{name: "date only", stamp: "2025-06-01", wantErr: true},
		{name: "garbage", stamp: "yesterday", wantErr: true},
		{name: "fractional seconds", stamp: "2025-06-01 08:15:00.5", wantErr: true},
		{name: "trailing zone", stamp: "2025-06-01 08:15:00Z", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Purchase{TimeStamp: tt.stamp}
			ts, err := p.Time()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 6, int(ts.Month()))
		})
	}
}

func TestProductLineTotal(t *testing.T) {
	p := Product{Price: "2.75", Quantity: "3"}
	total, err := p.LineTotal()
	require.NoError(t, err)
	assert.Equal(t, "8.25", FormatMoney(total))

	_, err = (&Product{Price: "abc", Quantity: "1"}).LineTotal()
	assert.Error(t, err)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.43", FormatMoney(decimal.RequireFromString("0.425")))
	assert.Equal(t, "15.50", FormatMoney(decimal.RequireFromString("15.5")))
	assert.Equal(t, "0.00", FormatMoney(decimal.Zero))
}

func TestHasProductList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "list", body: `{"product":[{"name":"Milk"}]}`, want: true},
		{name: "absent", body: `{"timeStamp":"2025-06-01 08:15:00"}`, want: true},
		{name: "null", body: `{"product":null}`, want: false},
		{name: "object", body: `{"product":{"name":"Milk"}}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Purchase
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.want, p.HasProductList())
			if !tt.want {
				assert.Error(t, p.AppendProduct(Product{Name: "Milk"}))
			}
		})
	}
}
