package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
)

// Directory is a read-only view of the identity collaborator: shop records
// and the roster of couriers. The core trusts it without re-verifying
// credentials.
type Directory interface {
	// GetShop retrieves a shop record by its identifier.
	GetShop(ctx context.Context, id kernel.UUID) (catalog.Shop, error)

	// GetShopsByIDs resolves shop records in one batch, keyed by shop id.
	// Missing shops are absent from the map.
	GetShopsByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]catalog.Shop, error)

	// ListCourierIDs enumerates every participant with the courier role,
	// with no availability filtering. Presence is applied at dispatch time.
	ListCourierIDs(ctx context.Context) ([]kernel.UUID, error)
}
