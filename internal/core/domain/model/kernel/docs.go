// Package kernel contains shared value objects used across the rate engine
// domain model: identifiers and money. These types are immutable and must be
// created through their constructor functions.
package kernel
