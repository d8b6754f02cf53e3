package order

import (
	"fmt"
	"strings"
	"time"

	"go-storefront-api/internal/checkout"
	"go-storefront-api/internal/pricing"

	"github.com/google/uuid"
)

const cardMaskPrefix = "**** **** **** "

// MaskCardNumber obscures everything but the last four digits.
func MaskCardNumber(cardNumber string) string {
	last4 := cardNumber
	if len(cardNumber) > 4 {
		last4 = cardNumber[len(cardNumber)-4:]
	}
	return cardMaskPrefix + last4
}

func newOrderNumber() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().Unix(), strings.ToUpper(uuid.NewString()[:4]))
}

// Build assembles the immutable order record from an already-validated form
// and an already-priced cart. It re-checks nothing and cannot fail: the form
// passed the checkout validator and the lines are non-empty by the time it
// is called. Amounts are fixed to two decimals here, at record time, from
// the unrounded summary.
func Build(form checkout.BuyerForm, lines []pricing.Line, summary pricing.Summary) Order {
	items := make([]LineItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, LineItem{
			ProductID: l.Item.ID,
			Name:      l.Item.Name,
			UnitPrice: l.Item.UnitPrice.StringFixed(2),
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal.StringFixed(2),
		})
	}

	return Order{
		ID:          uuid.NewString(),
		OrderNumber: newOrderNumber(),
		PlacedAt:    time.Now().UTC(),
		Lines:       items,
		Subtotal:    summary.Subtotal.StringFixed(2),
		Tax:         summary.Tax.StringFixed(2),
		GrandTotal:  summary.GrandTotal.StringFixed(2),
		Buyer: Buyer{
			FullName:   form.FullName,
			Email:      form.Email,
			CardNumber: MaskCardNumber(form.CardNumber),
			Address1:   form.Address1,
			Address2:   form.Address2,
			City:       form.City,
			State:      form.State,
			Zip:        form.Zip,
		},
	}
}
