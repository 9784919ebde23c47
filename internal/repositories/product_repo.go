package repositories

import (
	"catalog/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// Methods return bare values: a nil/empty result stands for both "no such
// record" and "storage failed"; failures are only visible on the server log.
type ProductRepository interface {
	GetAll() []models.Product
	GetByID(id int) *models.Product
	GetByCategoryID(catID int) []models.Product
	Create(product *models.Product) *models.Product
}
