package services

import (
	"errors"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
)

const (
	// DefaultPlatformFeePercent is the platform's cut of the order subtotal.
	DefaultPlatformFeePercent = 5

	// DefaultDeliveryFee is the flat delivery fee in TZS.
	DefaultDeliveryFee = 2000

	// DefaultRiderSharePercent is the rider's cut of the delivery fee.
	DefaultRiderSharePercent = 80
)

// FeePolicy is the single source of the marketplace fee split. Every
// component that prices an order or a claim goes through it; no fee
// percentage lives anywhere else.
type FeePolicy struct {
	platformFeePercent int64
	deliveryFee        kernel.Money
	riderSharePercent  int64
}

// NewFeePolicy creates a fee policy from configured percentages and the
// flat delivery fee.
func NewFeePolicy(platformFeePercent int64, deliveryFee kernel.Money, riderSharePercent int64) (FeePolicy, error) {
	if err := errors.Join(
		validatePercent("platformFeePercent", platformFeePercent),
		validatePercent("riderSharePercent", riderSharePercent),
	); err != nil {
		return FeePolicy{}, err
	}

	return FeePolicy{
		platformFeePercent: platformFeePercent,
		deliveryFee:        deliveryFee,
		riderSharePercent:  riderSharePercent,
	}, nil
}

// DefaultFeePolicy returns the policy with the stock 5% / 2000 TZS / 80%
// split.
func DefaultFeePolicy() FeePolicy {
	policy, err := NewFeePolicy(
		DefaultPlatformFeePercent,
		kernel.MustMoney(DefaultDeliveryFee),
		DefaultRiderSharePercent,
	)
	if err != nil {
		panic(err)
	}
	return policy
}

// PlatformFee returns the platform's cut of an order subtotal.
func (p FeePolicy) PlatformFee(subtotal kernel.Money) kernel.Money {
	return subtotal.Percent(p.platformFeePercent)
}

// DeliveryFee returns the flat delivery fee charged to the customer.
func (p FeePolicy) DeliveryFee() kernel.Money {
	return p.deliveryFee
}

// RiderEarnings returns the rider's share of a delivery fee, fixed at
// claim time.
func (p FeePolicy) RiderEarnings(deliveryFee kernel.Money) kernel.Money {
	return deliveryFee.Percent(p.riderSharePercent)
}

func validatePercent(name string, percent int64) error {
	if percent < 0 || percent > 100 {
		return errs.NewValueIsOutOfRangeError(name, percent, 0, 100)
	}
	return nil
}
