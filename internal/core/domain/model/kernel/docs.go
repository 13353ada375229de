// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds types that do not belong to a single aggregate: the
// human-readable order identifier, monetary amounts, and the fulfillment
// type of an order. All types follow the value object pattern: they are
// immutable, validated at construction, and guarded against zero-value use.
package kernel
