package entities

// Product is a catalog entry. Price is in the smallest currency unit.
// IsWishlisted is derived from the wishlist whenever a store hands a product out.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Brand        string   `json:"brand"`
	Price        int64    `json:"price"`
	ImageURL     string   `json:"imageUrl"`
	Rating       float64  `json:"rating"`
	Category     string   `json:"category"`
	Description  *string  `json:"description,omitempty"`
	Colors       []string `json:"colors,omitempty"`
	IsWishlisted bool     `json:"isWishlisted"`
}

// Clone returns a deep copy of the product.
func (p Product) Clone() Product {
	if p.Colors != nil {
		p.Colors = append([]string(nil), p.Colors...)
	}
	return p
}

// CloneProducts deep-copies a product list, preserving nil.
func CloneProducts(products []Product) []Product {
	if products == nil {
		return nil
	}
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}
	return out
}

type Category struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Icon     string  `json:"icon"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// Collection embeds product snapshots taken when the collection was built.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
	Products    []Product `json:"products"`
}

func (c Collection) Clone() Collection {
	c.Products = CloneProducts(c.Products)
	return c
}
