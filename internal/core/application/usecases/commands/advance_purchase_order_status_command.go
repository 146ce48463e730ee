package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/purchaseorder"
	"warehouse/internal/pkg/guard"
)

var ErrAdvancePurchaseOrderStatusCommandIsNotConstructed = errors.New(
	"AdvancePurchaseOrderStatusCommand must be created via NewAdvancePurchaseOrderStatusCommand constructor",
)

// AdvancePurchaseOrderStatusCommand represents a request to move a purchase
// order one step forward in its linear machine. Any target other than the
// immediate next step fails with errs.InvalidTransitionError.
type AdvancePurchaseOrderStatusCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderID kernel.UUID
	target          purchaseorder.Status

	guard guard.ConstructorGuard
}

// NewAdvancePurchaseOrderStatusCommand creates a command to advance a
// purchase order's status.
func NewAdvancePurchaseOrderStatusCommand(
	purchaseOrderID kernel.UUID,
	target purchaseorder.Status,
) (AdvancePurchaseOrderStatusCommand, error) {
	cmd := AdvancePurchaseOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPurchaseOrderID(purchaseOrderID),
		cmd.setTarget(target),
	); err != nil {
		return AdvancePurchaseOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvancePurchaseOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvancePurchaseOrderStatusCommandIsNotConstructed)
}

// PurchaseOrderID returns the identifier of the purchase order.
func (c AdvancePurchaseOrderStatusCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

// Target returns the requested status.
func (c AdvancePurchaseOrderStatusCommand) Target() purchaseorder.Status {
	return c.target
}

func (c *AdvancePurchaseOrderStatusCommand) setPurchaseOrderID(purchaseOrderID kernel.UUID) error {
	if err := purchaseOrderID.Validate(); err != nil {
		return err
	}
	c.purchaseOrderID = purchaseOrderID
	return nil
}

func (c *AdvancePurchaseOrderStatusCommand) setTarget(target purchaseorder.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
