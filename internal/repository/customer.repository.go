package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/wingman/logbook/internal/model"
	"github.com/wingman/logbook/pkg/pg"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

type CustomerRepository struct {
	*pg.DB
}

func NewCustomerRepository(db *pg.DB) *CustomerRepository {
	return &CustomerRepository{
		db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	entity := toCustomerEntity(c)

	if err := r.Write(ctx).WithContext(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toCustomerModel(entity), nil
}

// List returns every customer in insertion order.
func (r *CustomerRepository) List(ctx context.Context) ([]*model.Customer, error) {
	var entities []*CustomerEntity
	if err := r.Read(ctx).WithContext(ctx).Order("customer_id ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toCustomerModels(entities), nil
}

// Search matches q as a case-insensitive substring of name, phone,
// status or the decimal text of amount. An empty query returns all
// customers, same as List.
func (r *CustomerRepository) Search(ctx context.Context, q string) ([]*model.Customer, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return r.List(ctx)
	}

	pattern := "%" + strings.ToLower(q) + "%"

	var entities []*CustomerEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Or("LOWER(phone) LIKE ?", pattern).
		Or("LOWER(status) LIKE ?", pattern).
		Or("LOWER(CAST(amount AS TEXT)) LIKE ?", pattern).
		Order("customer_id ASC").
		Find(&entities).
		Error
	if err != nil {
		return nil, err
	}
	return toCustomerModels(entities), nil
}

// Exists reports whether a customer row is present. It resolves through
// Write(ctx) so that a surrounding unit of work sees its own reads.
func (r *CustomerRepository) Exists(ctx context.Context, customerID int64) error {
	var entity CustomerEntity
	err := r.Write(ctx).WithContext(ctx).
		Select("customer_id").
		Where("customer_id = ?", customerID).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCustomerNotFound
		}
		return err
	}
	return nil
}

// Get returns a single customer by id.
func (r *CustomerRepository) Get(ctx context.Context, customerID int64) (*model.Customer, error) {
	var entity CustomerEntity
	err := r.Read(ctx).WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&entity).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return toCustomerModel(&entity), nil
}
