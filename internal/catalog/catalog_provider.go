package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Item is one purchasable catalog entry. Items are immutable; the provider
// owns them for its whole lifetime.
type Item struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	ImageRef  string          `json:"image"`
}

// Provider supplies the full list of purchasable items. A failed fetch must
// return an error, never a partial or fabricated list.
type Provider interface {
	Fetch(ctx context.Context) ([]Item, error)
}

// ========================
// remote provider
// ========================

type HTTPProvider struct {
	url    string
	client *http.Client
}

func NewHTTPProvider(url string) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPProvider) Fetch(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", res.StatusCode)
	}

	var items []Item
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return items, nil
}

// ========================
// bundled provider
// ========================

//go:embed products.json
var bundled embed.FS

// StaticProvider serves the product list bundled with the binary. Used when
// no remote catalog URL is configured.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Fetch(_ context.Context) ([]Item, error) {
	raw, err := bundled.ReadFile("products.json")
	if err != nil {
		return nil, fmt.Errorf("read bundled catalog: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode bundled catalog: %w", err)
	}

	return items, nil
}
