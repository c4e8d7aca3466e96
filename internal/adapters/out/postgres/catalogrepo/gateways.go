package catalogrepo

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/ports"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogGateway implements CatalogGateway over the products table.
type GormCatalogGateway struct {
	db *gorm.DB
}

// NewGormCatalogGateway creates a catalog gateway using the given connection.
func NewGormCatalogGateway(db *gorm.DB) *GormCatalogGateway {
	return &GormCatalogGateway{db: db}
}

// GetProduct returns the product with the given id within the tenant.
func (g *GormCatalogGateway) GetProduct(
	ctx context.Context,
	tenantID kernel.UUID,
	id kernel.UUID,
) (*ports.Product, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := g.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &ports.Product{
		ID:        productID,
		Name:      dto.Name,
		UnitPrice: dto.UnitPrice,
	}, nil
}

// GormCustomerGateway implements CustomerGateway over the customers table.
type GormCustomerGateway struct {
	db *gorm.DB
}

// NewGormCustomerGateway creates a customer gateway using the given connection.
func NewGormCustomerGateway(db *gorm.DB) *GormCustomerGateway {
	return &GormCustomerGateway{db: db}
}

// GetCustomer returns the customer with the given id within the tenant.
func (g *GormCustomerGateway) GetCustomer(
	ctx context.Context,
	tenantID kernel.UUID,
	id kernel.UUID,
) (*ports.Customer, error) {
	if err := errors.Join(tenantID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	err := g.db.WithContext(ctx).
		First(&dto, "id = ? AND tenant_id = ?", id.Bytes(), tenantID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &ports.Customer{
		ID:   customerID,
		Name: dto.Name,
	}, nil
}

// GormTenantGateway implements TenantGateway over the businesses table.
type GormTenantGateway struct {
	db *gorm.DB
}

// NewGormTenantGateway creates a tenant gateway using the given connection.
func NewGormTenantGateway(db *gorm.DB) *GormTenantGateway {
	return &GormTenantGateway{db: db}
}

// GetTenant returns ObjectNotFoundError when the tenant is unknown.
func (g *GormTenantGateway) GetTenant(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var count int64
	err := g.db.WithContext(ctx).Model(&BusinessDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("tenant", id.String())
	}

	return nil
}
