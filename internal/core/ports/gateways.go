package ports

import (
	"context"

	"pos/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Product is the catalog projection the order workflow needs: a name to
// snapshot onto line items and the current unit price.
type Product struct {
	ID        kernel.UUID
	Name      string
	UnitPrice decimal.Decimal
}

// Customer is the directory projection used to resolve linked customers.
type Customer struct {
	ID   kernel.UUID
	Name string
}

// CatalogGateway resolves products within a tenant's catalog.
type CatalogGateway interface {
	// GetProduct returns the product with the given id. Returns
	// ObjectNotFoundError when absent or owned by a different tenant.
	GetProduct(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*Product, error)
}

// CustomerGateway resolves registered customers within a tenant.
type CustomerGateway interface {
	// GetCustomer returns the customer with the given id. Returns
	// ObjectNotFoundError when absent or owned by a different tenant.
	GetCustomer(ctx context.Context, tenantID kernel.UUID, id kernel.UUID) (*Customer, error)
}

// TenantGateway verifies that a tenant exists before orders are created
// under it.
type TenantGateway interface {
	// GetTenant returns ObjectNotFoundError when the tenant is unknown.
	GetTenant(ctx context.Context, id kernel.UUID) error
}
