package queries

import (
	"errors"

	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrVolumeDiscountsQueryIsNotConstructed is returned when validating a query
// that was not created via NewVolumeDiscountsQuery.
var ErrVolumeDiscountsQueryIsNotConstructed = errors.New(
	"VolumeDiscountsQuery must be created via NewVolumeDiscountsQuery constructor",
)

// VolumeDiscountsQuery requests discounted quotes for a shipper's trailing
// monthly volume, plus the tier ladder position and upsell target.
type VolumeDiscountsQuery struct {
	request       shipment.RateRequest
	monthlyVolume int

	guard guard.ConstructorGuard
}

// NewVolumeDiscountsQuery creates a volume discount query. The monthly volume
// must be strictly positive; volumes below the lowest tier are valid and
// simply earn no discount.
func NewVolumeDiscountsQuery(request shipment.RateRequest, monthlyVolume int) (VolumeDiscountsQuery, error) {
	if err := request.Validate(); err != nil {
		return VolumeDiscountsQuery{}, err
	}
	if monthlyVolume <= 0 {
		return VolumeDiscountsQuery{}, errs.NewValueIsInvalidError("monthlyVolume")
	}

	return VolumeDiscountsQuery{
		request:       request,
		monthlyVolume: monthlyVolume,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q VolumeDiscountsQuery) Validate() error {
	return q.guard.Validate(ErrVolumeDiscountsQueryIsNotConstructed)
}

// Request returns the underlying rate request.
func (q VolumeDiscountsQuery) Request() shipment.RateRequest {
	return q.request
}

// MonthlyVolume returns the shipper's trailing monthly shipment count.
func (q VolumeDiscountsQuery) MonthlyVolume() int {
	return q.monthlyVolume
}

// TierView is one discount tier in the read model.
type TierView struct {
	Name             string
	MinMonthlyVolume int
	Percentage       float64
}

// VolumeDiscountsView is the discounted aggregation read model, with the
// shipper's current ladder position.
type VolumeDiscountsView struct {
	Aggregation   AggregationView
	MonthlyVolume int
	CurrentTier   TierView
	NextTier      *TierView
}
