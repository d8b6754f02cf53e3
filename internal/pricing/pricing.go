package pricing

import (
	"sort"

	"go-storefront-api/internal/catalog"

	"github.com/shopspring/decimal"
)

// TaxRate is the fixed storefront tax rate (7%).
var TaxRate = decimal.NewFromInt(7).Div(decimal.NewFromInt(100))

// Line pairs a catalog item with its selected quantity. LineTotal is kept at
// full precision; rounding happens only when a line is formatted.
type Line struct {
	Item      catalog.Item
	Quantity  int32
	LineTotal decimal.Decimal
}

// Summary holds the unrounded totals for a quote.
type Summary struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// SummaryResponse is the presentation form: each amount rounded to exactly
// two fractional digits.
type SummaryResponse struct {
	Subtotal   string `json:"subtotal"`
	Tax        string `json:"tax"`
	GrandTotal string `json:"grandTotal"`
}

func (s Summary) Format() SummaryResponse {
	return SummaryResponse{
		Subtotal:   s.Subtotal.StringFixed(2),
		Tax:        s.Tax.StringFixed(2),
		GrandTotal: s.GrandTotal.StringFixed(2),
	}
}

// Quote derives cart lines and totals from the current selections and
// catalog. Selections whose id no longer resolves in the catalog are dropped
// silently: the catalog may have changed since the item was picked, and that
// is a normal condition, not an error. Totals accumulate at full precision;
// nothing is rounded per line. An empty cart quotes to zero totals, which is
// a valid displayable state.
func Quote(items map[int64]int32, catalogItems []catalog.Item) ([]Line, Summary) {
	ids := make([]int64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	lines := make([]Line, 0, len(ids))
	subtotal := decimal.Zero

	for _, id := range ids {
		it, ok := catalog.Lookup(catalogItems, id)
		if !ok {
			continue
		}

		qty := items[id]
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt32(qty))
		lines = append(lines, Line{
			Item:      it,
			Quantity:  qty,
			LineTotal: lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}

	tax := subtotal.Mul(TaxRate)
	return lines, Summary{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}
