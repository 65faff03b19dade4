// Package courier contains the courier-partner reference model: the closed
// service-type enumeration, courier partners with their coverage areas and
// default pricing parameters, and the contracted rate table with its single
// documented fallback order.
//
// Partners and rate rows are externally supplied master data. The engine only
// reads them; nothing in this package mutates after construction.
package courier
