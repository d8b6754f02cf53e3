package order

import (
	"context"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/checkout"
	"go-storefront-api/internal/pricing"
	"go-storefront-api/internal/session"

	"go.uber.org/zap"
)

// CatalogSource is the slice of the catalog service checkout needs.
type CatalogSource interface {
	Items(ctx context.Context) ([]catalog.Item, error)
}

// Publisher announces finished orders downstream. Publishing is
// best-effort: checkout never fails because of it.
type Publisher interface {
	OrderPlaced(ctx context.Context, o Order) error
}

type Service interface {
	// Checkout validates the buyer form, prices the session's cart, builds
	// the immutable order, clears the cart and moves the session flow to
	// confirmation.
	Checkout(ctx context.Context, sess *session.State, form checkout.BuyerForm) (Order, error)
}

type Deps struct {
	CatalogSvc CatalogSource
	Validator  *checkout.Validator
	Publisher  Publisher
	Logger     *zap.Logger
}

type service struct {
	catalogSvc CatalogSource
	validator  *checkout.Validator
	publisher  Publisher
	logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.CatalogSvc == nil {
		panic("catalog source cannot be nil")
	}
	if deps.Validator == nil {
		panic("checkout validator cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		catalogSvc: deps.CatalogSvc,
		validator:  deps.Validator,
		publisher:  deps.Publisher,
		logger:     deps.Logger.Named("order.service"),
	}
}

func (s *service) Checkout(ctx context.Context, sess *session.State, form checkout.BuyerForm) (Order, error) {
	logger := s.logger.With(zap.String("session_id", sess.ID))

	// Pricing and order building only operate on a loaded catalog.
	catalogItems, err := s.catalogSvc.Items(ctx)
	if err != nil {
		logger.Warn("checkout blocked: catalog unavailable", zap.Error(err))
		return Order{}, err
	}

	if result := s.validator.Validate(form); !result.Valid() {
		logger.Debug("checkout form rejected", zap.Int("violations", len(result)))
		return Order{}, NewValidationError(result)
	}

	selections := sess.Cart.Items()
	if len(selections) == 0 {
		return Order{}, ErrCartEmpty
	}

	// Selections whose item vanished from the catalog are dropped here; a
	// cart left with nothing resolvable counts as empty.
	lines, summary := pricing.Quote(selections, catalogItems)
	if len(lines) == 0 {
		return Order{}, ErrCartEmpty
	}

	ord := Build(form, lines, summary)

	// Sequencing check before any side effect: checkout is only legal from
	// the cart view. The selections survive a rejected attempt.
	if err := sess.Flow.CompleteOrder(ord); err != nil {
		logger.Warn("checkout attempted outside cart view")
		return Order{}, err
	}
	sess.Cart.Clear()

	logger.Info("order placed",
		zap.String("order_number", ord.OrderNumber),
		zap.Int("lines", len(ord.Lines)),
		zap.String("grand_total", ord.GrandTotal),
	)

	if s.publisher != nil {
		if err := s.publisher.OrderPlaced(ctx, ord); err != nil {
			logger.Warn("order.placed publish failed", zap.String("order_number", ord.OrderNumber), zap.Error(err))
		}
	}

	return ord, nil
}
