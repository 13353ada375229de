package queries

import (
	"context"

	"storefront/internal/core/domain/model/menu"
	"storefront/internal/core/ports"
)

// GetMenuQueryHandler serves the menu from the configured catalog.
// The catalog is read-only so this handler never touches the database.
type GetMenuQueryHandler struct {
	catalog ports.MenuCatalog
}

// NewGetMenuQueryHandler creates a handler backed by the given catalog.
func NewGetMenuQueryHandler(catalog ports.MenuCatalog) GetMenuQueryHandler {
	return GetMenuQueryHandler{catalog: catalog}
}

// Handle executes the query and returns the full menu.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (menu.Menu, error) {
	if err := query.Validate(); err != nil {
		return menu.Menu{}, err
	}
	return h.catalog.Menu(ctx)
}
