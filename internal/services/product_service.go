package services

import (
	"encoding/json"
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/validation"
	"catalog/pkg/rabbitmq"
)

// Sentinel bodies returned to the client when input validation fails. They are
// serialized as ordinary 200 JSON responses, never as 4xx statuses; clients
// have to inspect the body shape.
const (
	InvalidProductID   = "Invalid product id"
	InvalidProductData = "invalid product data"
)

// ProductService orchestrates validation and product data access. It holds no
// business logic beyond input gating.
type ProductService struct {
	repo     repositories.ProductRepository
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. The RabbitMQ client may be
// nil, in which case create events are simply not published.
func NewProductService(repo repositories.ProductRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetProducts retrieves all products.
func (s *ProductService) GetProducts() []models.Product {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product. The raw id comes straight from
// the route parameter; if it is not a positive integer the sentinel string is
// returned instead of a product.
func (s *ProductService) GetProductByID(rawID string) any {
	id, ok := validation.ValidateID(rawID)
	if !ok {
		return InvalidProductID
	}
	return s.repo.GetByID(id)
}

// GetProductsByCatID retrieves all products in a category, with the same
// sentinel-on-invalid-id behavior as GetProductByID.
func (s *ProductService) GetProductsByCatID(rawCatID string) any {
	catID, ok := validation.ValidateID(rawCatID)
	if !ok {
		return InvalidProductID
	}
	return s.repo.GetByCategoryID(catID)
}

// AddNewProduct validates the submitted form and inserts the product. On
// success the stored row (with its database-assigned id) comes back and a
// product.created event is published; on validation failure the sentinel
// string comes back instead.
func (s *ProductService) AddNewProduct(form models.NewProductForm) any {
	product := validation.ValidateNewProduct(form)
	if product == nil {
		return InvalidProductData
	}

	created := s.repo.Create(product)
	if created != nil {
		s.publishProductCreated(created)
	}
	return created
}

// publishProductCreated emits a product.created event. Publish failures are
// logged and ignored; event delivery is best effort and never blocks the
// response.
func (s *ProductService) publishProductCreated(product *models.Product) {
	if s.mqClient == nil {
		return
	}

	body, err := json.Marshal(product)
	if err != nil {
		log.Printf("Failed to marshal product %d to JSON: %v", product.ID, err)
		return
	}
	if err := s.mqClient.Publish(rabbitmq.CatalogExchange, "product.created", body); err != nil {
		log.Printf("Warning: failed to publish product created event for product %d: %v", product.ID, err)
	}
}
