package insights

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/seasonal-augmenter/internal/types"
)

const wrappedFixture = `{
  "Customer Profile And Contact Data": {"Online Account": {"first name": "Jess"}},
  "Purchase": [[
    {"timeStamp": "2025-07-05 10:00:00", "storeName": "A", "basketValueNet": "10.00", "overallBasketSavings": "1.00",
     "paymentType": [{"type": "VISA", "category": "Card", "amount": "10.00"}],
     "product": [{"name": "Strawberries", "quantity": "3"}, {"name": "Dark Chocolate Bar", "quantity": "1"}]},
    {"timeStamp": "2025-07-06 23:00:00", "storeName": "B", "basketValueNet": "20.00", "overallBasketSavings": "0.50",
     "paymentType": [{"type": "MASTERCARD_DEBIT", "category": "Contactless", "amount": "20.00"}],
     "product": [{"name": "Strawberries", "quantity": "2"}]},
    {"timeStamp": "2025-12-24 09:00:00", "storeName": "A", "basketValueNet": "30.00",
     "paymentType": [{"type": "MASTERCARD_DEBIT", "category": "Contactless", "amount": "30.00"}],
     "product": [{"name": "Prosecco", "quantity": "1"}]},
    {},
    null,
    {"timeStamp": "sometime", "storeName": "B", "basketValueNet": "5.00",
     "product": [{"name": "Milk", "quantity": "1"}]}
  ]]
}`

func load(t *testing.T, body string) *types.Dataset {
	t.Helper()
	var ds types.Dataset
	require.NoError(t, json.Unmarshal([]byte(body), &ds))
	return &ds
}

func TestAnalyze(t *testing.T) {
	ins, err := Analyze(load(t, wrappedFixture), 3)
	require.NoError(t, err)

	assert.Equal(t, "Jess", ins.CustomerName)
	assert.Equal(t, 4, ins.TotalTrips)
	assert.Equal(t, "65.00", types.FormatMoney(ins.TotalSpent))
	assert.Equal(t, "16.25", types.FormatMoney(ins.AverageBasket))
	assert.Equal(t, "30.00", types.FormatMoney(ins.BiggestShop))
	assert.Equal(t, "1.50", types.FormatMoney(ins.TotalSavings))

	// A and B tie on two visits; the later-seen store wins.
	assert.Equal(t, "B", ins.FavoriteStore)
	assert.Equal(t, 2, ins.FavoriteStoreCount)
	assert.Equal(t, "MASTERCARD_DEBIT", ins.FavoritePayment)

	assert.Equal(t, "Strawberries", ins.TopProduct)
	assert.Equal(t, 5, ins.TopProductCount)
	assert.Equal(t, []ProductCount{
		{Name: "Strawberries", Quantity: 5},
		{Name: "Dark Chocolate Bar", Quantity: 1},
		{Name: "Prosecco", Quantity: 1},
	}, ins.TopProducts)
	assert.Equal(t, 8, ins.TotalProducts)
	assert.Equal(t, 4, ins.UniqueProducts)
	assert.Equal(t, 1, ins.ChocolateCount)

	assert.Equal(t, time.July, ins.BusiestMonth)
	assert.Equal(t, time.Saturday, ins.FavoriteDay)
	assert.Equal(t, WeekdayRegular, ins.ShoppingPersonality)
	assert.Equal(t, 1, ins.NightOwlTrips)

	assert.Equal(t, "Strawberries", ins.SummerFlavor)
	assert.Equal(t, 5, ins.SummerFlavorCount)

	// Nothing sells ten units, so no spike.
	assert.Empty(t, ins.SpikeProduct)
	assert.Nil(t, ins.SpikeData)
}

func TestAnalyzeDetectsSpike(t *testing.T) {
	var records []string
	for m := 1; m <= 12; m++ {
		records = append(records, fmt.Sprintf(
			`{"timeStamp":"2025-%02d-03 12:00:00","storeName":"A","basketValueNet":"1.00","product":[{"name":"Bread","quantity":"1"}]}`, m))
	}
	records = append(records,
		`{"timeStamp":"2025-12-20 12:00:00","storeName":"A","basketValueNet":"70.00","product":[{"name":"Wine","quantity":"10"}]}`,
		`{"timeStamp":"2025-07-20 12:00:00","storeName":"A","basketValueNet":"14.00","product":[{"name":"Wine","quantity":"2"}]}`,
	)
	body := `{"Purchase":[[` + strings.Join(records, ",") + `]]}`

	ins, err := Analyze(load(t, body), 5)
	require.NoError(t, err)

	assert.Equal(t, "Wine", ins.SpikeProduct)
	assert.Equal(t, time.December, ins.SpikeMonth)
	assert.Greater(t, ins.SpikeVariation, 1.0)
	require.Len(t, ins.SpikeData, 12)
	assert.Equal(t, MonthCount{Month: time.July, Count: 2}, ins.SpikeData[6])
	assert.Equal(t, MonthCount{Month: time.December, Count: 10}, ins.SpikeData[11])
	assert.Equal(t, "", ins.CustomerName)
}

func TestAnalyzeWithoutPurchaseList(t *testing.T) {
	_, err := Analyze(&types.Dataset{}, 5)
	assert.ErrorIs(t, err, types.ErrNoPurchases)
}

func TestAnalyzeEmptyList(t *testing.T) {
	ins, err := Analyze(load(t, `{"Purchase":[[]]}`), 5)
	require.NoError(t, err)
	assert.Zero(t, ins.TotalTrips)
	assert.True(t, ins.AverageBasket.IsZero())
	assert.Empty(t, ins.TopProducts)
	assert.Equal(t, time.Month(0), ins.BusiestMonth)
}

func TestWrite(t *testing.T) {
	ins, err := Analyze(load(t, wrappedFixture), 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, ins))
	out := buf.String()

	assert.Contains(t, out, "You spent:          £65.00 (£16.25 per trip)")
	assert.Contains(t, out, "Go-to store:        B (2 visits)")
	assert.Contains(t, out, "Busiest month:      July")
	assert.Contains(t, out, "Favourite payment:  MASTERCARD DEBIT")
	assert.Contains(t, out, "  1. Strawberries (5)")
	assert.Contains(t, out, "See you at the checkouts, Jess!")
	assert.NotContains(t, out, "Seasonal spike")
}

func TestSpikeChart(t *testing.T) {
	chart := SpikeChart([]MonthCount{
		{Month: time.January, Count: 0},
		{Month: time.February, Count: 1},
		{Month: time.March, Count: 10},
		{Month: time.April, Count: 40},
	})

	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  Jan    0 ", lines[0])
	assert.Equal(t, 1, strings.Count(lines[1], spikeEmoji))
	assert.Equal(t, 4, strings.Count(lines[2], spikeEmoji))
	assert.Equal(t, 10, strings.Count(lines[3], spikeEmoji))
}
