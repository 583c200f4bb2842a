package models

// Product mirrors the catalog wire format. The backend assigns the id; the
// storefront never writes one.
type Product struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Steel         string   `json:"steel"`
	BladeLengthCM float64  `json:"blade_length_cm"`
	Price         float64  `json:"price"`
	Stock         int      `json:"stock"`
	Rating        float64  `json:"rating"`
	Images        []string `json:"images"`
}

// CreateProductRequest is a Product without an id, used on the seeding path.
type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Steel         string   `json:"steel"`
	BladeLengthCM float64  `json:"blade_length_cm" validate:"gte=0"`
	Price         float64  `json:"price" validate:"gte=0"`
	Stock         int      `json:"stock" validate:"gte=0"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	Images        []string `json:"images"`
}

type ProductListResponse struct {
	Items []*Product `json:"items"`
}
