package queries

import (
	"errors"

	"shiprates/internal/core/domain/model/shipment"
	"shiprates/internal/pkg/guard"
)

// ErrCalculateRatesQueryIsNotConstructed is returned when validating a query
// that was not created via NewCalculateRatesQuery.
var ErrCalculateRatesQueryIsNotConstructed = errors.New(
	"CalculateRatesQuery must be created via NewCalculateRatesQuery constructor",
)

// CalculateRatesQuery requests a full rate aggregation pass for one shipment:
// every eligible courier crossed with every requested service type.
//
// Example:
//
//	query, err := NewCalculateRatesQuery(request)
//	if err != nil {
//	    return fmt.Errorf("invalid rate request: %w", err)
//	}
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d quotes, cheapest %d BDT\n", len(view.Quotes), view.Quotes[0].Total)
type CalculateRatesQuery struct {
	request shipment.RateRequest

	guard guard.ConstructorGuard
}

// NewCalculateRatesQuery creates a query for the given rate request. The
// request must itself be properly constructed.
func NewCalculateRatesQuery(request shipment.RateRequest) (CalculateRatesQuery, error) {
	if err := request.Validate(); err != nil {
		return CalculateRatesQuery{}, err
	}

	return CalculateRatesQuery{
		request: request,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateRatesQuery) Validate() error {
	return q.guard.Validate(ErrCalculateRatesQueryIsNotConstructed)
}

// Request returns the underlying rate request.
func (q CalculateRatesQuery) Request() shipment.RateRequest {
	return q.request
}
