package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a full-representation order update: customer
// details, line items, and a written-through status. Replacing line items
// restores the old reservation and deducts the new one in one transaction.
//
// The status must not be Canceled; cancellation goes through
// CancelOrderCommand so the stock restore is never skipped.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	shippingAddress string
	paymentLast4    string
	status          order.Status
	lines           []OrderLineInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	shippingAddress string,
	paymentLast4 string,
	status order.Status,
	lines []OrderLineInput,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setStatus(status),
		cmd.setLines(lines),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.shippingAddress = shippingAddress
	cmd.paymentLast4 = paymentLast4
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the new customer display name.
func (c UpdateOrderCommand) CustomerName() string {
	return c.customerName
}

// ShippingAddress returns the new destination address.
func (c UpdateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// PaymentLast4 returns the new payment instrument digits.
func (c UpdateOrderCommand) PaymentLast4() string {
	return c.paymentLast4
}

// Status returns the written-through status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

// Lines returns the requested replacement lines.
func (c UpdateOrderCommand) Lines() []OrderLineInput {
	return c.lines
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerIsRequired
	}
	c.customerName = customerName
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setLines(lines []OrderLineInput) error {
	if err := validateOrderLines(lines); err != nil {
		return err
	}
	c.lines = lines
	return nil
}
