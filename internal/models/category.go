package models

// Category is referenced by Product.CategoryID. It is read-only in this API;
// rows are expected to exist in the database (or be seeded at startup).
type Category struct {
	ID                  int    `json:"id" gorm:"primaryKey;autoIncrement"`
	CategoryName        string `json:"category_name"`
	CategoryDescription string `json:"category_description"`
}

// TableName keeps GORM on the singular table name used by the schema.
func (Category) TableName() string {
	return "category"
}
