package models

import "time"

// Product represents a product record in the catalog.
type Product struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Value     float64   `json:"value" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for Product.
func (Product) TableName() string {
	return "tb_products"
}

// ProductInput is the request body accepted on create and update.
// Value is a pointer so a missing field can be told apart from zero.
type ProductInput struct {
	Name  string   `json:"name" validate:"required,notblank"`
	Value *float64 `json:"value" validate:"required,gt=0"`
}

// ApplyTo copies every input field onto p. The identifier and timestamps are left untouched.
func (in ProductInput) ApplyTo(p *Product) {
	p.Name = in.Name
	if in.Value != nil {
		p.Value = *in.Value
	}
}
