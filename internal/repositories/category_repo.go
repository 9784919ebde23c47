package repositories

import (
	"catalog/internal/models"
)

// CategoryRepository defines the interface for category data access. Same
// contract as ProductRepository: nil/empty on failure, details on the log.
type CategoryRepository interface {
	GetAll() []models.Category
	GetByID(id int) *models.Category
}
