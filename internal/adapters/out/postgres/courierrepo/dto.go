// Package courierrepo persists the courier partner master data and the
// contracted rate rows. The repository is the authoritative source the
// in-memory snapshot is refreshed from; the engine itself never queries it on
// the request path.
package courierrepo

import (
	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/geo"
	"shiprates/internal/core/domain/model/kernel"
)

// PartnerDTO represents the database structure for persisting courier
// partners. Coverage areas, per-service base rates and feature flags live in
// child tables keyed by the courier identifier.
type PartnerDTO struct {
	ID        string            `gorm:"type:varchar(64);primaryKey"`
	Name      string            `gorm:"type:varchar(255);not null"`
	Active    bool              `gorm:"not null"`
	CODCharge int64             `gorm:"type:bigint;not null"`
	Coverage  []CoverageAreaDTO `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
	Rates     []ServiceRateDTO  `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
	Features  []FeatureDTO      `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "courier_partners".
func (PartnerDTO) TableName() string {
	return "courier_partners"
}

// CoverageAreaDTO is one coverage area row of a partner.
type CoverageAreaDTO struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	CourierID string `gorm:"type:varchar(64);not null;index"`
	Area      string `gorm:"type:varchar(128);not null"`
}

// TableName overrides GORM's default naming to use "courier_coverage_areas".
func (CoverageAreaDTO) TableName() string {
	return "courier_coverage_areas"
}

// ServiceRateDTO is one per-service default base rate row of a partner.
type ServiceRateDTO struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	CourierID string `gorm:"type:varchar(64);not null;index"`
	Service   string `gorm:"type:varchar(32);not null"`
	Base      int64  `gorm:"type:bigint;not null"`
	PerKg     int64  `gorm:"type:bigint;not null"`
}

// TableName overrides GORM's default naming to use "courier_service_rates".
func (ServiceRateDTO) TableName() string {
	return "courier_service_rates"
}

// FeatureDTO is one feature flag row of a partner.
type FeatureDTO struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	CourierID string `gorm:"type:varchar(64);not null;index"`
	Feature   string `gorm:"type:varchar(128);not null"`
}

// TableName overrides GORM's default naming to use "courier_features".
func (FeatureDTO) TableName() string {
	return "courier_features"
}

// ContractRateDTO is one contracted lane rate row.
type ContractRateDTO struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	CourierID   string  `gorm:"type:varchar(64);not null;index"`
	ZoneFrom    string  `gorm:"type:varchar(64);not null"`
	ZoneTo      string  `gorm:"type:varchar(64);not null"`
	Service     string  `gorm:"type:varchar(32);not null"`
	MinWeightKg float64 `gorm:"type:numeric;not null"`
	MaxWeightKg float64 `gorm:"type:numeric;not null"`
	Base        int64   `gorm:"type:bigint;not null"`
	PerKg       int64   `gorm:"type:bigint;not null"`
}

// TableName overrides GORM's default naming to use "contract_rates".
func (ContractRateDTO) TableName() string {
	return "contract_rates"
}

func fromDomain(partner *courier.Partner) PartnerDTO {
	id := string(partner.ID())

	coverage := make([]CoverageAreaDTO, 0, len(partner.CoverageAreas()))
	for _, area := range partner.CoverageAreas() {
		coverage = append(coverage, CoverageAreaDTO{CourierID: id, Area: area})
	}

	rates := make([]ServiceRateDTO, 0, len(courier.AllServiceTypes()))
	for _, service := range courier.AllServiceTypes() {
		rate, ok := partner.BaseRateFor(service)
		if !ok {
			continue
		}
		rates = append(rates, ServiceRateDTO{
			CourierID: id,
			Service:   service.String(),
			Base:      int64(rate.Base),
			PerKg:     int64(rate.PerKg),
		})
	}

	features := make([]FeatureDTO, 0, len(partner.Features()))
	for _, feature := range partner.Features() {
		features = append(features, FeatureDTO{CourierID: id, Feature: feature})
	}

	return PartnerDTO{
		ID:        id,
		Name:      partner.Name(),
		Active:    partner.IsActive(),
		CODCharge: int64(partner.CODCharge()),
		Coverage:  coverage,
		Rates:     rates,
		Features:  features,
	}
}

func toDomain(dto PartnerDTO) (*courier.Partner, error) {
	coverage := make([]string, 0, len(dto.Coverage))
	for _, area := range dto.Coverage {
		coverage = append(coverage, area.Area)
	}

	rates := make(map[courier.ServiceType]courier.BaseRate, len(dto.Rates))
	for _, rate := range dto.Rates {
		service, err := courier.ParseServiceType(rate.Service)
		if err != nil {
			return nil, err
		}
		rates[service] = courier.BaseRate{
			Base:  kernel.Money(rate.Base),
			PerKg: kernel.Money(rate.PerKg),
		}
	}

	features := make([]string, 0, len(dto.Features))
	for _, feature := range dto.Features {
		features = append(features, feature.Feature)
	}

	return courier.NewPartner(
		courier.CourierID(dto.ID),
		dto.Name,
		dto.Active,
		coverage,
		rates,
		kernel.Money(dto.CODCharge),
		features,
	)
}

func contractRateFromDomain(row courier.RateRow) ContractRateDTO {
	return ContractRateDTO{
		CourierID:   string(row.Courier),
		ZoneFrom:    string(row.From),
		ZoneTo:      string(row.To),
		Service:     row.Service.String(),
		MinWeightKg: row.MinWeightKg,
		MaxWeightKg: row.MaxWeightKg,
		Base:        int64(row.Base),
		PerKg:       int64(row.PerKg),
	}
}

func contractRateToDomain(dto ContractRateDTO) (courier.RateRow, error) {
	service, err := courier.ParseServiceType(dto.Service)
	if err != nil {
		return courier.RateRow{}, err
	}

	return courier.RateRow{
		Courier:     courier.CourierID(dto.CourierID),
		From:        geo.ZoneID(dto.ZoneFrom),
		To:          geo.ZoneID(dto.ZoneTo),
		Service:     service,
		MinWeightKg: dto.MinWeightKg,
		MaxWeightKg: dto.MaxWeightKg,
		Base:        kernel.Money(dto.Base),
		PerKg:       kernel.Money(dto.PerKg),
	}, nil
}
