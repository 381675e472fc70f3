package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/adityamathur98/ecommerce-backend/internal/models"
	"github.com/adityamathur98/ecommerce-backend/internal/repositories"
	"github.com/adityamathur98/ecommerce-backend/internal/services"
)

// CatalogHandler handles the read-only catalog routes. All of them sit
// behind the auth middleware.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// RegisterRoutes registers the catalog routes on the given (protected) router.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/prime-deals", h.HandleListPrimeDeals)
	router.Get("/product/:id", h.HandleProductDetails)
}

// HandleListProducts translates the query string into a catalog query and
// returns the matching products.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	query := repositories.ParseCatalogQuery(c.Queries())

	products, err := h.catalogService.ListProducts(query)
	if err != nil {
		log.Printf("Error fetching products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(products)
}

// HandleListPrimeDeals returns the whole prime-deals collection.
func (h *CatalogHandler) HandleListPrimeDeals(c *fiber.Ctx) error {
	deals, err := h.catalogService.ListPrimeDeals()
	if err != nil {
		log.Printf("Error fetching prime deals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal Server Error",
		})
	}
	if deals == nil {
		deals = []models.PrimeProduct{}
	}
	return c.JSON(deals)
}

// HandleProductDetails returns the detail record for a numeric product id.
// The 404/500 bodies use the status_code/error_msg shape the storefront
// expects on this route.
func (h *CatalogHandler) HandleProductDetails(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status_code": fiber.StatusNotFound,
			"error_msg":   "Product Not Found",
		})
	}

	details, err := h.catalogService.GetProductDetails(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status_code": fiber.StatusNotFound,
				"error_msg":   "Product Not Found",
			})
		}
		log.Printf("Error fetching details for product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status_code": fiber.StatusInternalServerError,
			"error_msg":   "Internal Server Error",
		})
	}

	return c.JSON(details)
}
