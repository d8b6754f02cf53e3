package order

import "time"

// Buyer carries the confirmed shipping and payment details. CardNumber is
// already masked by the time a Buyer exists.
type Buyer struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	CardNumber string `json:"cardNumber"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
}

type LineItem struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int32  `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

// Order is the immutable record produced by a successful checkout. It is
// assembled in one shot and never mutated afterwards; amounts are strings
// fixed to two decimals.
type Order struct {
	ID          string     `json:"id"`
	OrderNumber string     `json:"orderNumber"`
	PlacedAt    time.Time  `json:"placedAt"`
	Lines       []LineItem `json:"lines"`
	Subtotal    string     `json:"subtotal"`
	Tax         string     `json:"tax"`
	GrandTotal  string     `json:"grandTotal"`
	Buyer       Buyer      `json:"buyer"`
}
