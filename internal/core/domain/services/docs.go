// Package services contains the rate engine's domain services: zone
// resolution, per-courier rate calculation, dynamic pricing, volume
// discounts, aggregation, ranking and the international tariff model.
//
// All services are stateless between calls and free of shared mutable state;
// reference tables are injected at construction time and read-only afterward,
// so every service is safe for concurrent use.
package services
