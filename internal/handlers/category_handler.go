package handlers

import (
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/category")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
}

// HandleGetCategories returns every category as a JSON array.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.GetCategories())
}

// HandleGetCategoryByID returns one category, or the sentinel string on a
// malformed id.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	return c.JSON(h.service.GetCategoryByID(c.Params("id")))
}
