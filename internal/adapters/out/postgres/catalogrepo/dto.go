// Package catalogrepo provides read-only lookup adapters over the
// catalog tables the order workflow depends on: products, customers,
// and the businesses that act as tenants.
package catalogrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents a catalog product row.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID       `gorm:"type:uuid;index"`
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

// CustomerDTO represents a registered customer row.
type CustomerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `gorm:"type:uuid;index"`
	Name     string
}

// TableName specifies the database table name for customers.
func (CustomerDTO) TableName() string {
	return "customers"
}

// BusinessDTO represents a tenant row.
type BusinessDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

// TableName specifies the database table name for businesses.
func (BusinessDTO) TableName() string {
	return "businesses"
}
