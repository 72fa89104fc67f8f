// Package services provides domain services spanning aggregates. FeePolicy
// is the canonical fee split used by checkout and delivery claims.
package services
