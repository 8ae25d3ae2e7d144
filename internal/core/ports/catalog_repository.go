package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
)

// CatalogRepository is the contract to the catalog collaborator: item
// snapshot resolution and stock mutation.
type CatalogRepository interface {
	// FindItemsByIDs resolves catalog items in one batch. Items that do not
	// exist are simply absent from the result; the caller decides whether a
	// missing item is an error.
	FindItemsByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.Item, error)

	// DecrementStock subtracts the given quantity from an item's stock.
	// When conditional is true the decrement only applies while the
	// remaining stock stays non-negative, and a shortfall is a conflict
	// error. When false the stock may go negative.
	DecrementStock(ctx context.Context, itemID kernel.UUID, quantity int, conditional bool) error
}
