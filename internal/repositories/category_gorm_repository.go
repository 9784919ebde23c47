package repositories

import (
	"errors"
	"log"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves every row of the category table.
func (r *GORMCategoryRepository) GetAll() []models.Category {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		log.Printf("category repository: GetAll: %v", err)
		return nil
	}
	return categories
}

// GetByID retrieves a single category by its id.
func (r *GORMCategoryRepository) GetByID(id int) *models.Category {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("category repository: GetByID %d: %v", id, err)
		}
		return nil
	}
	return &category
}
