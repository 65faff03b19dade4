package courierrepo

import (
	"context"
	"errors"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository persists courier partners and contracted rates using
// GORM. It backs the snapshot refresh job; reads load complete partner
// aggregates with their child rows.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Add saves a new courier partner with its coverage, rates and features.
func (r *GormCourierRepository) Add(ctx context.Context, partner *courier.Partner) error {
	if err := partner.Validate(); err != nil {
		return err
	}

	dto := fromDomain(partner)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update replaces an existing courier partner and its child rows.
func (r *GormCourierRepository) Update(ctx context.Context, partner *courier.Partner) error {
	if err := partner.Validate(); err != nil {
		return err
	}

	dto := fromDomain(partner)
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Get retrieves one courier partner by identifier.
func (r *GormCourierRepository) Get(ctx context.Context, id courier.CourierID) (*courier.Partner, error) {
	var dto PartnerDTO
	err := r.db.WithContext(ctx).
		Preload("Coverage").
		Preload("Rates").
		Preload("Features").
		First(&dto, "id = ?", string(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", string(id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every courier partner with its child rows.
func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Partner, error) {
	var dtos []PartnerDTO
	err := r.db.WithContext(ctx).
		Preload("Coverage").
		Preload("Rates").
		Preload("Features").
		Order("id ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	partners := make([]*courier.Partner, 0, len(dtos))
	for _, dto := range dtos {
		partner, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, partner)
	}
	return partners, nil
}

// ReplaceContractRates swaps the whole contracted rate set. Used by seed and
// refresh flows; the rate table is reference data without per-row identity.
func (r *GormCourierRepository) ReplaceContractRates(ctx context.Context, rows []courier.RateRow) error {
	dtos := make([]ContractRateDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, contractRateFromDomain(row))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ContractRateDTO{}).Error; err != nil {
			return err
		}
		if len(dtos) == 0 {
			return nil
		}
		return tx.Create(&dtos).Error
	})
}

// ContractRates retrieves every contracted rate row.
func (r *GormCourierRepository) ContractRates(ctx context.Context) ([]courier.RateRow, error) {
	var dtos []ContractRateDTO
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	rows := make([]courier.RateRow, 0, len(dtos))
	for _, dto := range dtos {
		row, err := contractRateToDomain(dto)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
