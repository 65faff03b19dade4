// Package geo contains the geography value objects of the rate engine:
// free-form addresses, canonical zones, and the immutable zone and distance
// lookup tables supplied to the engine as configuration.
//
// Zones are a coarse pricing approximation, not a routing model. A zone is a
// lowercase canonical identifier (e.g. "dhaka") with a classification and a
// cost tier; inter-zone distances come from a symmetric pairwise table with a
// documented low-confidence default when a pair is absent.
package geo
