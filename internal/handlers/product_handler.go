package handlers

import (
	"log"

	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products. It does HTTP binding
// only: route parameters and bodies in, JSON out.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. The bycat
// route is registered before /:id so "bycat" is not swallowed as an id.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/product")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/bycat/:catId?", h.HandleGetProductsByCategory)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
}

// HandleGetProducts returns every product as a JSON array.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.GetProducts())
}

// HandleGetProductByID returns one product. A malformed id still yields a 200;
// the body is the sentinel string the service hands back.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	return c.JSON(h.service.GetProductByID(c.Params("id")))
}

// HandleGetProductsByCategory returns the products of one category.
func (h *ProductHandler) HandleGetProductsByCategory(c *fiber.Ctx) error {
	catID := c.Params("catId")
	if catID == "" {
		// No early return here: the status ends up 400 but the service call
		// below still runs and its result is what the client receives.
		c.Status(fiber.StatusBadRequest)
	}
	return c.JSON(h.service.GetProductsByCatID(catID))
}

// HandleCreateProduct inserts a new product from the request body.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var form models.NewProductForm
	if err := c.BodyParser(&form); err != nil {
		log.Printf("Error parsing new product body: %v", err)
		// Same fall-through as the bycat route: the empty form fails
		// validation downstream and the sentinel body goes out with the 400.
		c.Status(fiber.StatusBadRequest)
	}
	return c.JSON(h.service.AddNewProduct(form))
}
