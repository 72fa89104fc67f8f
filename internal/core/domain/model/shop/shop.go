// Package shop provides the shop read model: checkout needs the pickup
// address and active flag of each shop represented in the cart.
package shop

import (
	"errors"
	"fmt"

	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/pkg/errs"
)

var (
	// ErrShopIsNotConstructed is returned when a Shop instance was not
	// created through NewShop or RestoreShop.
	ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop or RestoreShop")

	// ErrShopInactive is returned when checkout targets a deactivated shop.
	ErrShopInactive = errors.New("shop is not active")
)

// Shop is a seller's storefront. This service only reads it.
type Shop struct {
	id       kernel.UUID
	sellerID kernel.UUID
	name     string
	address  string
	isActive bool

	isConstructed bool
}

// NewShop creates an active storefront.
func NewShop(id, sellerID kernel.UUID, name, address string) (*Shop, error) {
	s := &Shop{
		isActive:      true,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setSellerID(sellerID),
		s.setName(name),
		s.setAddress(address),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShop reconstructs a shop from persistence.
func RestoreShop(id, sellerID kernel.UUID, name, address string, isActive bool) (*Shop, error) {
	s, err := NewShop(id, sellerID, name, address)
	if err != nil {
		return nil, err
	}
	s.isActive = isActive
	return s, nil
}

// Validate ensures the shop was created through a constructor.
func (s *Shop) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShopIsNotConstructed
	}
	return nil
}

// ID returns the shop's unique identifier.
func (s *Shop) ID() kernel.UUID { return s.id }

// SellerID returns the owning seller's identifier.
func (s *Shop) SellerID() kernel.UUID { return s.sellerID }

// Name returns the storefront name.
func (s *Shop) Name() string { return s.name }

// Address returns the pickup address used for deliveries.
func (s *Shop) Address() string { return s.address }

// IsActive reports whether the shop accepts orders.
func (s *Shop) IsActive() bool { return s.isActive }

// ValidateCanSell checks that the shop accepts orders.
func (s *Shop) ValidateCanSell() error {
	if !s.isActive {
		return ErrShopInactive
	}
	return nil
}

func (s *Shop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shop) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("sellerID: %w", err)
	}
	s.sellerID = id
	return nil
}

func (s *Shop) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Shop) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.address = address
	return nil
}
