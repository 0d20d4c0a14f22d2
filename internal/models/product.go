package models

// Product is a catalog entry as stored and served by the JSON API.
type Product struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	OriginalPrice string `json:"original_price,omitempty"`
	Category      string `json:"category"`
	Image         string `json:"image"`
	Description   string `json:"description"`
	Dimensions    string `json:"dimensions"`
	Material      string `json:"material"`
	Bestseller    bool   `json:"bestseller"`
	Available     bool   `json:"available"`
}

// ProductFields is the full set of writable fields submitted by the admin form.
// Update overwrites every one of them.
type ProductFields struct {
	Name          string
	Price         string
	OriginalPrice string
	Category      string
	Image         string
	Description   string
	Dimensions    string
	Material      string
	Bestseller    bool
	Available     bool
}

// Fields returns the writable part of p.
func (p Product) Fields() ProductFields {
	return ProductFields{
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Image:         p.Image,
		Description:   p.Description,
		Dimensions:    p.Dimensions,
		Material:      p.Material,
		Bestseller:    p.Bestseller,
		Available:     p.Available,
	}
}

// WithID builds a product with the given id.
func (f ProductFields) WithID(id string) Product {
	return Product{
		ID:            id,
		Name:          f.Name,
		Price:         f.Price,
		OriginalPrice: f.OriginalPrice,
		Category:      f.Category,
		Image:         f.Image,
		Description:   f.Description,
		Dimensions:    f.Dimensions,
		Material:      f.Material,
		Bestseller:    f.Bestseller,
		Available:     f.Available,
	}
}
