package models

// Product is a catalog item. Products are seeded at startup; end users
// have no mutation path.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	OldPrice    *float64 `json:"oldPrice,omitempty"`
	Category    string   `json:"category"`
	Subcategory *string  `json:"subcategory,omitempty"`
	ImageURL    string   `json:"imageUrl"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Stock       int      `json:"stock"`
	Features    []string `json:"features,omitempty"`
	Badges      []string `json:"badges,omitempty"`
	IsNew       bool     `json:"isNew"`
	IsFeatured  bool     `json:"isFeatured"`
}

// OnSale reports whether the product carries a discount, i.e. an old
// price strictly greater than the current one.
func (p Product) OnSale() bool {
	return p.OldPrice != nil && *p.OldPrice > p.Price
}

// ProductWithQuantity is the per-request projection of a cart line:
// the full product joined with the quantity held in the cart. Never
// persisted.
type ProductWithQuantity struct {
	Product
	Quantity int `json:"quantity"`
}

// ProductInput carries the fields accepted when creating a product.
type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	OldPrice    *float64 `json:"oldPrice,omitempty" validate:"omitempty,gt=0"`
	Category    string   `json:"category" validate:"required"`
	Subcategory *string  `json:"subcategory,omitempty"`
	ImageURL    string   `json:"imageUrl" validate:"required"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount int      `json:"reviewCount" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Features    []string `json:"features,omitempty"`
	Badges      []string `json:"badges,omitempty"`
	IsNew       bool     `json:"isNew"`
	IsFeatured  bool     `json:"isFeatured"`
}
