package accountrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/pkg/errs"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database. A duplicate username violates
// the primary key and surfaces as the driver's uniqueness error.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Username(), aggregate)
	return nil
}

// GetByUsername retrieves an account by username.
func (r *GormAccountRepository) GetByUsername(
	ctx context.Context, username string,
) (*account.Account, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", username)
		}
		return nil, err
	}

	return toDomain(dto)
}
