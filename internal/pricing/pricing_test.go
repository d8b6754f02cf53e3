package pricing_test

import (
	"testing"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCatalog() []catalog.Item {
	return []catalog.Item{
		{ID: 1, Name: "Widget", UnitPrice: price("10.00")},
		{ID: 2, Name: "Gadget", UnitPrice: price("3.33")},
		{ID: 3, Name: "Gizmo", UnitPrice: price("74.25")},
	}
}

func TestQuote_SingleItemTwice(t *testing.T) {
	lines, summary := pricing.Quote(map[int64]int32{1: 2}, testCatalog())

	require.Len(t, lines, 1)
	assert.Equal(t, "Widget", lines[0].Item.Name)
	assert.Equal(t, int32(2), lines[0].Quantity)

	res := summary.Format()
	assert.Equal(t, "20.00", res.Subtotal)
	assert.Equal(t, "1.40", res.Tax)
	assert.Equal(t, "21.40", res.GrandTotal)
}

func TestQuote_EmptyCart(t *testing.T) {
	lines, summary := pricing.Quote(map[int64]int32{}, testCatalog())

	assert.Empty(t, lines)

	res := summary.Format()
	assert.Equal(t, "0.00", res.Subtotal)
	assert.Equal(t, "0.00", res.Tax)
	assert.Equal(t, "0.00", res.GrandTotal)
}

func TestQuote_StaleIDsDroppedSilently(t *testing.T) {
	lines, summary := pricing.Quote(map[int64]int32{1: 1, 99: 4}, testCatalog())

	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].Item.ID)
	assert.Equal(t, "10.00", summary.Format().Subtotal)
}

func TestQuote_SubtotalIsExactSum(t *testing.T) {
	items := map[int64]int32{1: 3, 2: 7, 3: 2}
	lines, summary := pricing.Quote(items, testCatalog())

	require.Len(t, lines, 3)

	expected := decimal.Zero
	for _, l := range lines {
		expected = expected.Add(l.Item.UnitPrice.Mul(decimal.NewFromInt32(l.Quantity)))
	}
	assert.True(t, summary.Subtotal.Equal(expected),
		"subtotal %s != exact sum %s", summary.Subtotal, expected)
}

// Tax and grand total derive from the unrounded subtotal; rounding happens
// only at Format time.
func TestQuote_RoundingOnlyAtPresentation(t *testing.T) {
	// 3.33 * 3 = 9.99; tax 0.6993 rounds to 0.70; grand 10.6893 to 10.69.
	_, summary := pricing.Quote(map[int64]int32{2: 3}, testCatalog())

	assert.True(t, summary.Tax.Equal(price("0.6993")), "tax kept unrounded, got %s", summary.Tax)
	assert.True(t, summary.GrandTotal.Equal(price("10.6893")))

	res := summary.Format()
	assert.Equal(t, "9.99", res.Subtotal)
	assert.Equal(t, "0.70", res.Tax)
	assert.Equal(t, "10.69", res.GrandTotal)
}

func TestQuote_TaxMatchesFixedRate(t *testing.T) {
	for _, items := range []map[int64]int32{
		{1: 1},
		{2: 5},
		{1: 2, 3: 3},
	} {
		_, summary := pricing.Quote(items, testCatalog())

		wantTax := summary.Subtotal.Mul(pricing.TaxRate)
		assert.True(t, summary.Tax.Equal(wantTax))
		assert.True(t, summary.GrandTotal.Equal(summary.Subtotal.Add(summary.Tax)))
	}
}

func TestQuote_LinesOrderedByItemID(t *testing.T) {
	lines, _ := pricing.Quote(map[int64]int32{3: 1, 1: 1, 2: 1}, testCatalog())

	require.Len(t, lines, 3)
	assert.Equal(t, int64(1), lines[0].Item.ID)
	assert.Equal(t, int64(2), lines[1].Item.ID)
	assert.Equal(t, int64(3), lines[2].Item.ID)
}
