package models

// Product represents a row of the product table. The id is assigned by the
// database on insert; an id of 0 marks a product that has not been persisted yet.
type Product struct {
	ID                 int     `json:"id" gorm:"primaryKey;autoIncrement" validate:"gte=0"`
	CategoryID         int     `json:"category_id" validate:"gte=0"`
	ProductName        string  `json:"product_name" validate:"required"`
	ProductDescription string  `json:"product_description" validate:"required"`
	ProductStock       int     `json:"product_stock" validate:"gte=0"`
	ProductPrice       float64 `json:"product_price" validate:"gte=0"`
}

// TableName keeps GORM on the singular table name used by the schema.
func (Product) TableName() string {
	return "product"
}

// NewProductForm is the request body for creating a product. The numeric fields
// are typed as any because clients send them either as JSON numbers or as
// numeric strings; validation coerces them.
type NewProductForm struct {
	CategoryID         any    `json:"category_id"`
	ProductName        string `json:"product_name"`
	ProductDescription string `json:"product_description"`
	ProductStock       any    `json:"product_stock"`
	ProductPrice       any    `json:"product_price"`
}
