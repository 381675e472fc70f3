package models

// Product is a catalog listing row. IDs are assigned by the external
// data-loading process, not generated here; rating is stored as a number
// (the canonical form for the >= filter).
type Product struct {
	ID       int     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title    string  `json:"title"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url" gorm:"column:image_url"`
	Rating   float64 `json:"rating"`
}

// TableName maps Product to the products table.
func (Product) TableName() string { return "products" }

// PrimeProduct is a prime-deal listing. Same shape as Product plus the
// richer merchandising fields; kept as an independent table with no
// relation back to products.
type PrimeProduct struct {
	ID           int     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title        string  `json:"title"`
	Style        string  `json:"style"`
	Brand        string  `json:"brand"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url" gorm:"column:image_url"`
	Description  string  `json:"description"`
	TotalReviews int     `json:"total_reviews"`
	Rating       float64 `json:"rating"`
	Availability string  `json:"availability"`
}

// TableName maps PrimeProduct to the prime_deals table.
func (PrimeProduct) TableName() string { return "prime_deals" }

// SimilarProduct is a denormalized product summary embedded in a detail
// record. These are copies taken at load time, not references into the
// products table.
type SimilarProduct struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Style        string  `json:"style"`
	Brand        string  `json:"brand"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"image_url"`
	Description  string  `json:"description"`
	TotalReviews int     `json:"total_reviews"`
	Rating       float64 `json:"rating"`
	Availability string  `json:"availability"`
}

// ProductDetails is the full detail record for a single product id,
// including its embedded similar-product summaries.
type ProductDetails struct {
	ID              int              `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title           string           `json:"title"`
	Brand           string           `json:"brand"`
	Price           float64          `json:"price"`
	ImageURL        string           `json:"image_url" gorm:"column:image_url"`
	Description     string           `json:"description"`
	TotalReviews    int              `json:"total_reviews"`
	Rating          float64          `json:"rating"`
	Availability    string           `json:"availability"`
	SimilarProducts []SimilarProduct `json:"similar_products" gorm:"serializer:json"`
}

// TableName maps ProductDetails to the product_details table.
func (ProductDetails) TableName() string { return "product_details" }
