package customerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/pkg/errs"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer profile to the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *account.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Account(), aggregate)
	return nil
}

// Update saves an existing customer profile to the database.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *account.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("account_username = ?", dto.AccountUsername).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", dto.AccountUsername)
	}

	r.tracker.TrackAggregate(aggregate.Account(), aggregate)
	return nil
}

// GetByAccount retrieves the customer profile owned by the given account.
func (r *GormCustomerRepository) GetByAccount(
	ctx context.Context, accountName string,
) (*account.Customer, error) {
	if accountName == "" {
		return nil, errs.NewValueIsRequiredError("account")
	}

	var dto CustomerDTO
	err := r.db.WithContext(ctx).First(&dto, "account_username = ?", accountName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", accountName)
		}
		return nil, err
	}

	return toDomain(dto)
}
