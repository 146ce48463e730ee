package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pallet"
	"warehouse/internal/pkg/guard"
)

var ErrUpdatePalletCommandIsNotConstructed = errors.New(
	"UpdatePalletCommand must be created via NewUpdatePalletCommand constructor",
)

// UpdatePalletCommand represents a request to change a pallet's fields,
// including its lifecycle status and slot binding. The handler computes the
// stock and slot effects of the change and applies them atomically.
type UpdatePalletCommand struct { //nolint:recvcheck //using for validation
	palletID    kernel.UUID
	name        string
	quantity    int
	maxCapacity int
	status      pallet.Status
	slotID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdatePalletCommand creates a command to update an existing pallet.
func NewUpdatePalletCommand(
	palletID kernel.UUID,
	name string,
	quantity int,
	maxCapacity int,
	status pallet.Status,
	slotID *kernel.UUID,
) (UpdatePalletCommand, error) {
	cmd := UpdatePalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPalletID(palletID),
		cmd.setName(name),
		cmd.setStatus(status),
	); err != nil {
		return UpdatePalletCommand{}, err
	}

	cmd.quantity = quantity
	cmd.maxCapacity = maxCapacity
	cmd.slotID = slotID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePalletCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePalletCommandIsNotConstructed)
}

// PalletID returns the identifier of the pallet to update.
func (c UpdatePalletCommand) PalletID() kernel.UUID {
	return c.palletID
}

// Name returns the new pallet label.
func (c UpdatePalletCommand) Name() string {
	return c.name
}

// Quantity returns the new quantity.
func (c UpdatePalletCommand) Quantity() int {
	return c.quantity
}

// MaxCapacity returns the new per-pallet capacity.
func (c UpdatePalletCommand) MaxCapacity() int {
	return c.maxCapacity
}

// Status returns the requested lifecycle state.
func (c UpdatePalletCommand) Status() pallet.Status {
	return c.status
}

// SlotID returns the requested slot, or nil for a pallet outside storage.
func (c UpdatePalletCommand) SlotID() *kernel.UUID {
	return c.slotID
}

func (c *UpdatePalletCommand) setPalletID(palletID kernel.UUID) error {
	if err := palletID.Validate(); err != nil {
		return err
	}
	c.palletID = palletID
	return nil
}

func (c *UpdatePalletCommand) setName(name string) error {
	if name == "" {
		return ErrPalletNameIsRequired
	}
	c.name = name
	return nil
}

func (c *UpdatePalletCommand) setStatus(status pallet.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
