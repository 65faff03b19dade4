package queries

import (
	"errors"

	"shiprates/internal/core/domain/model/courier"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"
	"shiprates/internal/pkg/guard"
)

// ErrCODChargesQueryIsNotConstructed is returned when validating a query that
// was not created via NewCODChargesQuery.
var ErrCODChargesQueryIsNotConstructed = errors.New(
	"CODChargesQuery must be created via NewCODChargesQuery constructor",
)

// CODChargesQuery requests the cash-on-delivery handling charges for a
// collection amount, for one courier or across the whole catalog.
type CODChargesQuery struct {
	amount  kernel.Money
	courier courier.CourierID // empty means every active courier

	guard guard.ConstructorGuard
}

// NewCODChargesQuery creates a COD charge query. The collection amount must be
// strictly positive; an empty courier identifier means "all active couriers".
func NewCODChargesQuery(amount kernel.Money, courierID courier.CourierID) (CODChargesQuery, error) {
	if amount <= 0 {
		return CODChargesQuery{}, errs.NewValueIsInvalidError("codAmount")
	}

	return CODChargesQuery{
		amount:  amount,
		courier: courierID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CODChargesQuery) Validate() error {
	return q.guard.Validate(ErrCODChargesQueryIsNotConstructed)
}

// Amount returns the cash amount to collect on delivery.
func (q CODChargesQuery) Amount() kernel.Money {
	return q.amount
}

// Courier returns the optional courier restriction, empty for all couriers.
func (q CODChargesQuery) Courier() courier.CourierID {
	return q.courier
}

// CODChargeView is one courier's COD charge breakdown.
type CODChargeView struct {
	CourierID      string
	CourierName    string
	HandlingCharge int64
	TotalPayable   int64 // collection amount plus handling charge
}

// CODChargesView is the COD charge read model.
type CODChargesView struct {
	Amount   int64
	Currency string
	Charges  []CODChargeView
}
