package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrDeletePalletCommandIsNotConstructed = errors.New(
	"DeletePalletCommand must be created via NewDeletePalletCommand constructor",
)

// DeletePalletCommand represents a request to remove a pallet. Deleting a
// stored pallet releases its slot and reverses its stock contribution,
// clamped at zero.
type DeletePalletCommand struct { //nolint:recvcheck //using for validation
	palletID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePalletCommand creates a command to remove a pallet.
func NewDeletePalletCommand(palletID kernel.UUID) (DeletePalletCommand, error) {
	cmd := DeletePalletCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPalletID(palletID); err != nil {
		return DeletePalletCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePalletCommand) Validate() error {
	return c.guard.Validate(ErrDeletePalletCommandIsNotConstructed)
}

// PalletID returns the identifier of the pallet to delete.
func (c DeletePalletCommand) PalletID() kernel.UUID {
	return c.palletID
}

func (c *DeletePalletCommand) setPalletID(palletID kernel.UUID) error {
	if err := palletID.Validate(); err != nil {
		return err
	}
	c.palletID = palletID
	return nil
}
