package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adityamathur98/ecommerce-backend/internal/models"
)

// ErrProductNotFound is returned when no detail record exists for an id.
var ErrProductNotFound = errors.New("product not found")

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// FindProducts retrieves the products matching the translated query. When
// the query carries no ordering, rows come back in store order.
func (r *GORMCatalogRepository) FindProducts(query CatalogQuery) ([]models.Product, error) {
	var products []models.Product
	if err := query.Scope(r.db).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

// GetAllPrimeDeals retrieves the whole prime_deals table, unfiltered.
func (r *GORMCatalogRepository) GetAllPrimeDeals() ([]models.PrimeProduct, error) {
	var deals []models.PrimeProduct
	if err := r.db.Find(&deals).Error; err != nil {
		return nil, fmt.Errorf("failed to get prime deals: %w", err)
	}
	return deals, nil
}

// GetProductDetails retrieves the detail record for a product id.
func (r *GORMCatalogRepository) GetProductDetails(id int) (*models.ProductDetails, error) {
	var details models.ProductDetails
	if err := r.db.First(&details, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get details for product %d: %w", id, err)
	}
	return &details, nil
}
