package cart

import "go-storefront-api/internal/pricing"

type CartItemResponse struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int32  `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

type CartDetailResponse struct {
	Items   []CartItemResponse      `json:"items"`
	Summary pricing.SummaryResponse `json:"summary"`
}

type CartCountResponse struct {
	Count int32 `json:"count"`
}
