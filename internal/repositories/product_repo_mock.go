package repositories

import (
	"sort"
	"sync"

	"catalog/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[int]models.Product
	nextID   int
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[int]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products ordered by id.
func (r *MockProductRepository) GetAll() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList
}

// GetByID returns a product by its id, or nil when it does not exist.
func (r *MockProductRepository) GetByID(id int) *models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil
	}
	return &product
}

// GetByCategoryID returns all products in the given category.
func (r *MockProductRepository) GetByCategoryID(catID int) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0)
	for _, p := range r.products {
		if p.CategoryID == catID {
			productList = append(productList, p)
		}
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList
}

// Create adds a new product, assigning the next id regardless of the incoming one.
func (r *MockProductRepository) Create(product *models.Product) *models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return product
}
