package console

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"mcp-quickclick/pkg/domain"
)

// variationChannels are the integration channels the console tracks
// per-product variations for. Updates always reset both to empty arrays; the
// console rejects records that omit them.
var variationChannels = [...]string{"eaa", "pos"}

// upstreamProduct is the full wire shape of a console product. Fields the
// domain does not expose are kept as raw JSON so a read-modify-write carries
// them forward byte-identical.
type upstreamProduct struct {
	ID          int                          `json:"id"`
	Name        string                       `json:"name"`
	Amount      int                          `json:"amount"`
	Description string                       `json:"description"`
	CategoryID  int                          `json:"categoryId"`
	IsVisibled  int                          `json:"isVisibled"`
	Code        string                       `json:"code"`
	Image       string                       `json:"image"`
	Stock       json.RawMessage              `json:"stock"`
	StockReset  json.RawMessage              `json:"stockReset"`
	Calories    json.RawMessage              `json:"calories"`
	Variations  map[string][]json.RawMessage `json:"variations"`
}

func (c *Client) productsPath() string {
	return fmt.Sprintf("/eaa/console/menus/%d/products", c.menuID)
}

func (c *Client) productPath(id int) string {
	return fmt.Sprintf("%s/%d", c.productsPath(), id)
}

func toDomainProduct(up upstreamProduct) domain.Product {
	return domain.Product{
		ID:          up.ID,
		Name:        up.Name,
		Price:       up.Amount,
		Description: up.Description,
		CategoryID:  up.CategoryID,
		IsAvailable: up.IsVisibled != 0,
	}
}

func visibilityFlag(available bool) int {
	if available {
		return 1
	}
	return 0
}

func emptyVariations() map[string][]json.RawMessage {
	variations := make(map[string][]json.RawMessage, len(variationChannels))
	for _, channel := range variationChannels {
		variations[channel] = []json.RawMessage{}
	}
	return variations
}

// fetchProduct reads the authoritative record and refreshes the availability
// cache entry for it as a side effect.
func (c *Client) fetchProduct(ctx context.Context, id int) (upstreamProduct, error) {
	var up upstreamProduct
	if err := c.do(ctx, http.MethodGet, c.productPath(id), nil, &up); err != nil {
		return upstreamProduct{}, err
	}
	c.storeAvailability(id, up.IsVisibled != 0)
	return up, nil
}

// GetProduct returns one product, translating the console visibility flag to
// a boolean and refreshing the availability cache for this id.
func (c *Client) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	up, err := c.fetchProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	return toDomainProduct(up), nil
}

// ListProducts returns the catalog, optionally filtered by a substring match
// on the product name. Each product's availability is resolved through the
// cache; uncached or stale entries are refreshed concurrently with one
// per-product fetch each, and any failed refresh fails the whole listing.
func (c *Client) ListProducts(ctx context.Context, name string) ([]domain.Product, error) {
	var ups []upstreamProduct
	if err := c.do(ctx, http.MethodGet, c.productsPath(), nil, &ups); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(ups))
	for _, up := range ups {
		if name != "" && !strings.Contains(strings.ToLower(up.Name), strings.ToLower(name)) {
			continue
		}
		products = append(products, toDomainProduct(up))
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range products {
		if available, ok := c.cachedAvailability(products[i].ID); ok {
			products[i].IsAvailable = available
			continue
		}
		g.Go(func() error {
			refreshed, err := c.GetProduct(gctx, products[i].ID)
			if err != nil {
				return err
			}
			products[i].IsAvailable = refreshed.IsAvailable
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return products, nil
}

// productCreate is the creation payload. The console requires every field to
// be present, so fields the domain does not expose are sent with fixed
// defaults.
type productCreate struct {
	Name        string                       `json:"name"`
	Amount      int                          `json:"amount"`
	Description string                       `json:"description"`
	CategoryID  int                          `json:"categoryId"`
	IsVisibled  int                          `json:"isVisibled"`
	Code        string                       `json:"code"`
	Image       string                       `json:"image"`
	Stock       json.RawMessage              `json:"stock"`
	StockReset  json.RawMessage              `json:"stockReset"`
	Calories    json.RawMessage              `json:"calories"`
	TempFile    json.RawMessage              `json:"tempFile"`
	Variations  map[string][]json.RawMessage `json:"variations"`
}

// CreateProduct creates a new product. No read precedes the call.
func (c *Client) CreateProduct(ctx context.Context, in domain.ProductCreate) error {
	return c.do(ctx, http.MethodPost, c.productsPath(), productCreate{
		Name:        in.Name,
		Amount:      in.Price,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		IsVisibled:  visibilityFlag(in.IsAvailable),
		Variations:  emptyVariations(),
	}, nil)
}

// UpdateProduct applies a partial update as an explicit read-merge-write: the
// console update endpoint requires a full record, so the current record is
// fetched first and every field the caller did not supply is carried forward
// unchanged. Variations are always reset to empty arrays for both channels.
// The availability cache entry is rewritten after a successful PUT so an
// immediately-following read sees the update.
func (c *Client) UpdateProduct(ctx context.Context, in domain.ProductUpdate) (domain.Product, error) {
	merged, err := c.fetchProduct(ctx, in.ID)
	if err != nil {
		return domain.Product{}, err
	}

	if in.Name != nil {
		merged.Name = *in.Name
	}
	if in.Price != nil {
		merged.Amount = *in.Price
	}
	if in.Description != nil {
		merged.Description = *in.Description
	}
	if in.IsAvailable != nil {
		merged.IsVisibled = visibilityFlag(*in.IsAvailable)
	}
	merged.Variations = emptyVariations()

	if err := c.do(ctx, http.MethodPut, c.productPath(in.ID), merged, nil); err != nil {
		return domain.Product{}, err
	}

	c.storeAvailability(in.ID, merged.IsVisibled != 0)
	return toDomainProduct(merged), nil
}
