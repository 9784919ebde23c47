package services

import (
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/validation"
)

// InvalidCategoryID is the sentinel body for malformed category ids.
const InvalidCategoryID = "Invalid category id"

// CategoryService exposes the read-only category surface backing the product
// insert flow.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetCategories retrieves all categories.
func (s *CategoryService) GetCategories() []models.Category {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category, or the sentinel string when the
// raw id is not a positive integer.
func (s *CategoryService) GetCategoryByID(rawID string) any {
	id, ok := validation.ValidateID(rawID)
	if !ok {
		return InvalidCategoryID
	}
	return s.repo.GetByID(id)
}
