package commands

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreatePurchaseOrderCommandIsNotConstructed = errors.New(
		"CreatePurchaseOrderCommand must be created via NewCreatePurchaseOrderCommand constructor",
	)
	ErrSupplierNameIsRequired = errors.New("supplierName is required")
)

// CreatePurchaseOrderCommand represents a request to open a purchase order
// with a supplier. Unit prices are snapshotted from the current catalog when
// the order is created.
type CreatePurchaseOrderCommand struct { //nolint:recvcheck //using for validation
	purchaseOrderID kernel.UUID
	supplierName    string
	expectedArrival time.Time
	lines           []PurchaseOrderLineInput

	guard guard.ConstructorGuard
}

// NewCreatePurchaseOrderCommand creates a command to open a purchase order.
func NewCreatePurchaseOrderCommand(
	purchaseOrderID kernel.UUID,
	supplierName string,
	expectedArrival time.Time,
	lines []PurchaseOrderLineInput,
) (CreatePurchaseOrderCommand, error) {
	cmd := CreatePurchaseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPurchaseOrderID(purchaseOrderID),
		cmd.setSupplierName(supplierName),
		cmd.setLines(lines),
	); err != nil {
		return CreatePurchaseOrderCommand{}, err
	}

	cmd.expectedArrival = expectedArrival
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePurchaseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreatePurchaseOrderCommandIsNotConstructed)
}

// PurchaseOrderID returns the unique identifier for the purchase order.
func (c CreatePurchaseOrderCommand) PurchaseOrderID() kernel.UUID {
	return c.purchaseOrderID
}

// SupplierName returns the supplier fulfilling the order.
func (c CreatePurchaseOrderCommand) SupplierName() string {
	return c.supplierName
}

// ExpectedArrival returns the promised delivery time.
func (c CreatePurchaseOrderCommand) ExpectedArrival() time.Time {
	return c.expectedArrival
}

// Lines returns the requested purchase order lines.
func (c CreatePurchaseOrderCommand) Lines() []PurchaseOrderLineInput {
	return c.lines
}

func (c *CreatePurchaseOrderCommand) setPurchaseOrderID(purchaseOrderID kernel.UUID) error {
	if err := purchaseOrderID.Validate(); err != nil {
		return err
	}
	c.purchaseOrderID = purchaseOrderID
	return nil
}

func (c *CreatePurchaseOrderCommand) setSupplierName(supplierName string) error {
	if supplierName == "" {
		return ErrSupplierNameIsRequired
	}
	c.supplierName = supplierName
	return nil
}

func (c *CreatePurchaseOrderCommand) setLines(lines []PurchaseOrderLineInput) error {
	if err := validatePurchaseOrderLines(lines); err != nil {
		return err
	}
	c.lines = lines
	return nil
}
