package repositories

import (
	"errors"
	"log"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves every row of the product table.
func (r *GORMProductRepository) GetAll() []models.Product {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		log.Printf("product repository: GetAll: %v", err)
		return nil
	}
	return products
}

// GetByID retrieves a single product by its id. A missing row and a storage
// failure both come back as nil; only the latter is logged.
func (r *GORMProductRepository) GetByID(id int) *models.Product {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("product repository: GetByID %d: %v", id, err)
		}
		return nil
	}
	return &product
}

// GetByCategoryID retrieves all products belonging to a category.
func (r *GORMProductRepository) GetByCategoryID(catID int) []models.Product {
	var products []models.Product
	if err := r.db.Find(&products, "category_id = ?", catID).Error; err != nil {
		log.Printf("product repository: GetByCategoryID %d: %v", catID, err)
		return nil
	}
	return products
}

// Create inserts a new product and returns the stored row with its assigned id.
// Any id on the incoming value is discarded; the database owns id assignment.
func (r *GORMProductRepository) Create(product *models.Product) *models.Product {
	product.ID = 0
	if err := r.db.Create(product).Error; err != nil {
		log.Printf("product repository: Create: %v", err)
		return nil
	}
	return product
}
