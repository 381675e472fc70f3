package repositories

import (
	"github.com/adityamathur98/ecommerce-backend/internal/models"
)

// CatalogRepository defines read access to the product catalog.
type CatalogRepository interface {
	FindProducts(query CatalogQuery) ([]models.Product, error)
	GetAllPrimeDeals() ([]models.PrimeProduct, error)
	GetProductDetails(id int) (*models.ProductDetails, error)
}
