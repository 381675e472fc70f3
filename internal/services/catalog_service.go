package services

import (
	"github.com/adityamathur98/ecommerce-backend/internal/models"
	"github.com/adityamathur98/ecommerce-backend/internal/repositories"
)

// CatalogService handles read access to the product catalog.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListProducts returns the products matching a translated listing query.
func (s *CatalogService) ListProducts(query repositories.CatalogQuery) ([]models.Product, error) {
	return s.repo.FindProducts(query)
}

// ListPrimeDeals returns every prime-deal product, unfiltered.
func (s *CatalogService) ListPrimeDeals() ([]models.PrimeProduct, error) {
	return s.repo.GetAllPrimeDeals()
}

// GetProductDetails returns the detail record for a product id, including
// its similar-products list.
func (s *CatalogService) GetProductDetails(id int) (*models.ProductDetails, error) {
	return s.repo.GetProductDetails(id)
}
