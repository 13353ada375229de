package ports

import (
	"context"

	"storefront/internal/core/domain/model/menu"
)

// MenuCatalog provides read-only access to the pre-loaded dish catalog.
type MenuCatalog interface {
	// Menu returns the full catalog.
	Menu(ctx context.Context) (menu.Menu, error)
}
