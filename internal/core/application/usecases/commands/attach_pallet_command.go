package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrAttachPalletCommandIsNotConstructed = errors.New(
	"AttachPalletCommand must be created via NewAttachPalletCommand constructor",
)

// AttachPalletCommand represents a request to attach an inbound pallet to a
// Processing purchase order. The pallet is created ReadyToShip with no slot
// and no stock effect; the supplier name is inherited from the order.
type AttachPalletCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderID kernel.UUID
	palletID        kernel.UUID
	name            string
	productID       kernel.UUID
	quantity        int
	maxCapacity     int

	guard guard.ConstructorGuard
}

// NewAttachPalletCommand creates a command to attach an inbound pallet.
func NewAttachPalletCommand(
	purchaseOrderID kernel.UUID,
	palletID kernel.UUID,
	name string,
	productID kernel.UUID,
	quantity int,
	maxCapacity int,
) (AttachPalletCommand, error) {
	cmd := AttachPalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPurchaseOrderID(purchaseOrderID),
		cmd.setPalletID(palletID),
		cmd.setName(name),
		cmd.setProductID(productID),
	); err != nil {
		return AttachPalletCommand{}, err
	}

	cmd.quantity = quantity
	cmd.maxCapacity = maxCapacity
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachPalletCommand) Validate() error {
	return c.guard.Validate(ErrAttachPalletCommandIsNotConstructed)
}

// PurchaseOrderID returns the identifier of the purchase order.
func (c AttachPalletCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

// PalletID returns the unique identifier for the inbound pallet.
func (c AttachPalletCommand) PalletID() kernel.UUID {
	return c.palletID
}

// Name returns the pallet label.
func (c AttachPalletCommand) Name() string {
	return c.name
}

// ProductID returns the carried product's identifier.
func (c AttachPalletCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of product units on the pallet.
func (c AttachPalletCommand) Quantity() int {
	return c.quantity
}

// MaxCapacity returns the per-pallet unit capacity.
func (c AttachPalletCommand) MaxCapacity() int {
	return c.maxCapacity
}

func (c *AttachPalletCommand) setPurchaseOrderID(purchaseOrderID kernel.UUID) error {
	if err := purchaseOrderID.Validate(); err != nil {
		return err
	}
	c.purchaseOrderID = purchaseOrderID
	return nil
}

func (c *AttachPalletCommand) setPalletID(palletID kernel.UUID) error {
	if err := palletID.Validate(); err != nil {
		return err
	}
	c.palletID = palletID
	return nil
}

func (c *AttachPalletCommand) setName(name string) error {
	if name == "" {
		return ErrPalletNameIsRequired
	}
	c.name = name
	return nil
}

func (c *AttachPalletCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}
