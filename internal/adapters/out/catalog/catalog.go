// Package catalog serves the dish catalog from an embedded JSON document.
// The menu changes only with a deployment, so it ships inside the binary
// and is decoded once at startup.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"storefront/internal/core/domain/model/menu"
)

//go:embed menu.json
var rawMenu []byte

// EmbeddedMenuCatalog implements ports.MenuCatalog over the embedded menu.
type EmbeddedMenuCatalog struct {
	menu menu.Menu
}

// NewEmbeddedMenuCatalog decodes the embedded menu document.
// Returns an error when the document is malformed or empty.
func NewEmbeddedMenuCatalog() (*EmbeddedMenuCatalog, error) {
	var m menu.Menu
	if err := json.Unmarshal(rawMenu, &m); err != nil {
		return nil, fmt.Errorf("decode embedded menu: %w", err)
	}
	if len(m.Categories) == 0 {
		return nil, fmt.Errorf("embedded menu has no categories")
	}
	return &EmbeddedMenuCatalog{menu: m}, nil
}

// Menu returns the full catalog.
func (c *EmbeddedMenuCatalog) Menu(_ context.Context) (menu.Menu, error) {
	return c.menu, nil
}
