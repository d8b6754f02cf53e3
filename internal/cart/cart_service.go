package cart

import (
	"context"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/pricing"
)

// CatalogSource is the slice of the catalog service the cart needs.
type CatalogSource interface {
	Items(ctx context.Context) ([]catalog.Item, error)
}

type Service interface {
	// Detail recomputes lines and totals from the current cart and catalog.
	// Requires a loaded catalog; selections with no catalog match are
	// omitted, not reported.
	Detail(ctx context.Context, store *Store) (CartDetailResponse, error)

	Count(store *Store) CartCountResponse
	Increment(store *Store, productID int64)
	Decrement(store *Store, productID int64)
	Clear(store *Store)
}

type service struct {
	catalogSvc CatalogSource
}

func NewService(catalogSvc CatalogSource) Service {
	if catalogSvc == nil {
		panic("catalog source cannot be nil")
	}
	return &service{catalogSvc: catalogSvc}
}

func (s *service) Detail(ctx context.Context, store *Store) (CartDetailResponse, error) {
	catalogItems, err := s.catalogSvc.Items(ctx)
	if err != nil {
		return CartDetailResponse{}, err
	}

	lines, summary := pricing.Quote(store.Items(), catalogItems)

	items := make([]CartItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartItemResponse{
			ProductID: l.Item.ID,
			Name:      l.Item.Name,
			UnitPrice: l.Item.UnitPrice.StringFixed(2),
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal.StringFixed(2),
		})
	}

	return CartDetailResponse{
		Items:   items,
		Summary: summary.Format(),
	}, nil
}

func (s *service) Count(store *Store) CartCountResponse {
	return CartCountResponse{Count: store.Count()}
}

func (s *service) Increment(store *Store, productID int64) {
	store.Add(productID)
}

func (s *service) Decrement(store *Store, productID int64) {
	store.Remove(productID)
}

func (s *service) Clear(store *Store) {
	store.Clear()
}
