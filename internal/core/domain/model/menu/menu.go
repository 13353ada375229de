// Package menu contains the read-only catalog served to storefront clients.
//
// The catalog is pre-loaded, static data: categories of dishes with pricing
// and option metadata. The ordering core never reads this structure while
// handling an order; clients compute the final unit price and selected
// supplements from it before submission.
package menu

// Menu is the full catalog, grouped by category.
type Menu struct {
	Categories []Category `json:"categories"`
}

// Category groups dishes under a display name ("Entrees", "Plats", ...).
type Category struct {
	Name   string `json:"name"`
	Dishes []Dish `json:"dishes"`
}

// MeatOption is a protein choice offered for a dish.
type MeatOption struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Supplement is an optional paid add-on offered for a dish.
type Supplement struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Dish is one catalog entry. Simple dishes carry Price; dishes with a meat
// choice carry BasePrice plus an optional AdditionalMeatPrice surcharge.
// Bubble-tea style entries use Syrups, Poppings, and ExtraPoppingPrice.
type Dish struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	Description         string       `json:"description"`
	Price               *float64     `json:"price,omitempty"`
	BasePrice           *float64     `json:"basePrice,omitempty"`
	AdditionalMeatPrice *float64     `json:"additionalMeatPrice,omitempty"`
	Image               string       `json:"image,omitempty"`
	MeatOptions         []MeatOption `json:"meatOptions,omitempty"`
	DefaultIngredients  []string     `json:"defaultIngredients,omitempty"`
	Supplements         []Supplement `json:"supplements,omitempty"`
	SpicyOptions        []string     `json:"spicyOptions,omitempty"`
	Syrups              []string     `json:"syrups,omitempty"`
	Poppings            []string     `json:"poppings,omitempty"`
	ExtraPoppingPrice   *float64     `json:"extraPoppingPrice,omitempty"`
}
