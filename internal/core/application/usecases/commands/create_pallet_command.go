package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pallet"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreatePalletCommandIsNotConstructed = errors.New(
		"CreatePalletCommand must be created via NewCreatePalletCommand constructor",
	)
	ErrPalletNameIsRequired = errors.New("name is required")
)

// CreatePalletCommand represents a request to register a new pallet.
// A pallet created directly in Stored state adds its quantity to product
// stock and occupies the given slot in the same transaction.
//
// Example:
//
//	palletID := kernel.NewUUID()
//	cmd, err := NewCreatePalletCommand(palletID, "PLT-001", productID, 20, 50, pallet.Stored, &slotID)
//	if err != nil {
//	    return fmt.Errorf("invalid pallet data: %w", err)
//	}
//
//	handler := NewCreatePalletCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create pallet: %w", err)
//	}
type CreatePalletCommand struct { //nolint:recvcheck //using for validation
	palletID    kernel.UUID
	name        string
	productID   kernel.UUID
	quantity    int
	maxCapacity int
	status      pallet.Status
	slotID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreatePalletCommand creates a command to register a new pallet.
// Quantity bounds, status validity, and the status/slot pairing are enforced
// again by the Pallet aggregate; the command checks identifiers and presence.
func NewCreatePalletCommand(
	palletID kernel.UUID,
	name string,
	productID kernel.UUID,
	quantity int,
	maxCapacity int,
	status pallet.Status,
	slotID *kernel.UUID,
) (CreatePalletCommand, error) {
	cmd := CreatePalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPalletID(palletID),
		cmd.setName(name),
		cmd.setProductID(productID),
		cmd.setStatus(status),
	); err != nil {
		return CreatePalletCommand{}, err
	}

	cmd.quantity = quantity
	cmd.maxCapacity = maxCapacity
	cmd.slotID = slotID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePalletCommand) Validate() error {
	return c.guard.Validate(ErrCreatePalletCommandIsNotConstructed)
}

// PalletID returns the unique identifier for the new pallet.
func (c CreatePalletCommand) PalletID() kernel.UUID {
	return c.palletID
}

// Name returns the pallet label.
func (c CreatePalletCommand) Name() string {
	return c.name
}

// ProductID returns the carried product's identifier.
func (c CreatePalletCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of product units on the pallet.
func (c CreatePalletCommand) Quantity() int {
	return c.quantity
}

// MaxCapacity returns the per-pallet unit capacity.
func (c CreatePalletCommand) MaxCapacity() int {
	return c.maxCapacity
}

// Status returns the requested lifecycle state.
func (c CreatePalletCommand) Status() pallet.Status {
	return c.status
}

// SlotID returns the requested slot, or nil for a pallet outside storage.
func (c CreatePalletCommand) SlotID() *kernel.UUID {
	return c.slotID
}

func (c *CreatePalletCommand) setPalletID(palletID kernel.UUID) error {
	if err := palletID.Validate(); err != nil {
		return err
	}
	c.palletID = palletID
	return nil
}

func (c *CreatePalletCommand) setName(name string) error {
	if name == "" {
		return ErrPalletNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreatePalletCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreatePalletCommand) setStatus(status pallet.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
