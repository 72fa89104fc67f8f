// Package kernel contains the shared value objects of the marketplace
// domain: identifiers (UUID), monetary amounts (Money) and actor roles
// (Role). All value objects are immutable and validate themselves; the zero
// value of UUID is invalid and must be constructed through a factory
// function, while the zero Money value is a legitimate amount of zero
// shillings.
package kernel
