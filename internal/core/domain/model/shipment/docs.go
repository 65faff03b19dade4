// Package shipment contains the request-side value objects of the rate
// engine: package descriptions and the rate request that enters the
// aggregation pipeline. All types are created at request time and discarded
// with the response; the engine is stateless between calls.
package shipment
