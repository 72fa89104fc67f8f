// Package product provides the catalog entry model used by cart and
// checkout: effective pricing (discount wins) and stock adjustments.
package product
