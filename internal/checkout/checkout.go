// Package checkout builds deep links into the upstream store's web
// cart. Checkout is a handoff, not a processed transaction: the link is
// opened in an external browsing context and the web store takes over.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	cartdomain "github.com/lina-design/storefront/internal/cart/domain"
)

// Builder constructs web-cart links for one store.
type Builder struct {
	storeBaseURL string
}

// NewBuilder creates a Builder for the store's public web URL.
func NewBuilder(storeBaseURL string) *Builder {
	return &Builder{storeBaseURL: strings.TrimRight(storeBaseURL, "/")}
}

// BuyNowURL links straight to the web cart with a single product in it.
func (b *Builder) BuyNowURL(productID string, quantity int) string {
	if quantity < 1 {
		quantity = 1
	}
	return fmt.Sprintf("%s/carrinho/produto/%s/quantidade/%d",
		b.storeBaseURL, url.PathEscape(productID), quantity)
}

// CartURL links to the web cart preloaded with the whole ledger, one
// id:quantity pair per entry.
func (b *Builder) CartURL(entries []cartdomain.Entry) string {
	pairs := make([]string, 0, len(entries))
	for _, entry := range entries {
		pairs = append(pairs, fmt.Sprintf("%s:%d", entry.ID, entry.Quantity))
	}
	if len(pairs) == 0 {
		return b.storeBaseURL + "/carrinho"
	}

	query := url.Values{}
	query.Set("itens", strings.Join(pairs, ","))
	return b.storeBaseURL + "/carrinho?" + query.Encode()
}
