package repositories_test

import (
	"fmt"
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens a fresh in-memory SQLite database, one per test so data
// does not leak between them.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestGORMProductRepository_GetByIDEmptyStore(t *testing.T) {
	repo := repositories.NewGORMProductRepository(openTestDB(t))

	// Not-found is an ordinary nil, never a panic or error.
	assert.Nil(t, repo.GetByID(999))
}

func TestGORMProductRepository_CreateAssignsID(t *testing.T) {
	repo := repositories.NewGORMProductRepository(openTestDB(t))

	created := repo.Create(&models.Product{
		ID:                 777, // client-supplied ids must be ignored
		CategoryID:         1,
		ProductName:        "Widget",
		ProductDescription: "A widget",
		ProductStock:       10,
		ProductPrice:       9.99,
	})

	assert.NotNil(t, created)
	assert.Greater(t, created.ID, 0)
	assert.NotEqual(t, 777, created.ID)

	stored := repo.GetByID(created.ID)
	assert.NotNil(t, stored)
	assert.Equal(t, "Widget", stored.ProductName)
	assert.Equal(t, 9.99, stored.ProductPrice)
}

func TestGORMProductRepository_GetAll(t *testing.T) {
	repo := repositories.NewGORMProductRepository(openTestDB(t))

	repo.Create(&models.Product{CategoryID: 1, ProductName: "A", ProductDescription: "a", ProductStock: 1, ProductPrice: 1})
	repo.Create(&models.Product{CategoryID: 2, ProductName: "B", ProductDescription: "b", ProductStock: 2, ProductPrice: 2})

	products := repo.GetAll()
	assert.Len(t, products, 2)
}

func TestGORMProductRepository_GetByCategoryID(t *testing.T) {
	repo := repositories.NewGORMProductRepository(openTestDB(t))

	repo.Create(&models.Product{CategoryID: 1, ProductName: "A", ProductDescription: "a", ProductStock: 1, ProductPrice: 1})
	repo.Create(&models.Product{CategoryID: 2, ProductName: "B", ProductDescription: "b", ProductStock: 2, ProductPrice: 2})
	repo.Create(&models.Product{CategoryID: 2, ProductName: "C", ProductDescription: "c", ProductStock: 3, ProductPrice: 3})

	inCat := repo.GetByCategoryID(2)
	assert.Len(t, inCat, 2)
	for _, p := range inCat {
		assert.Equal(t, 2, p.CategoryID)
	}

	assert.Empty(t, repo.GetByCategoryID(42))
}

func TestGORMCategoryRepository(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewGORMCategoryRepository(db)

	assert.Nil(t, repo.GetByID(1))

	db.Create(&models.Category{CategoryName: "Books", CategoryDescription: "Printed matter"})
	db.Create(&models.Category{CategoryName: "Games", CategoryDescription: "Board and video"})

	categories := repo.GetAll()
	assert.Len(t, categories, 2)

	books := repo.GetByID(categories[0].ID)
	assert.NotNil(t, books)
	assert.Equal(t, "Books", books.CategoryName)
}
