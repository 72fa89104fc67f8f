// Package rider provides the Rider aggregate: a user's delivery profile
// with vehicle details, availability, verification and lifetime totals.
package rider
