package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerIsRequired = errors.New("customer is required")
)

// CreateOrderCommand represents a request to place a customer order.
// Creation reserves stock for every line; if any product lacks sufficient
// balance the whole order fails and nothing is persisted.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, userID, "Jamie Rivera", "12 Dock Rd", "4242", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UUID
	customerName    string
	shippingAddress string
	paymentLast4    string
	lines           []OrderLineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, customer presence, and line shapes; stock
// availability is checked by the handler inside the transaction.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	customerName string,
	shippingAddress string,
	paymentLast4 string,
	lines []OrderLineInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setCustomerName(customerName),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.shippingAddress = shippingAddress
	cmd.paymentLast4 = paymentLast4
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the customer account identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// CustomerName returns the customer display name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// ShippingAddress returns the destination address.
func (c CreateOrderCommand) ShippingAddress() string {
	return c.shippingAddress
}

// PaymentLast4 returns the last four digits of the payment instrument.
func (c CreateOrderCommand) PaymentLast4() string {
	return c.paymentLast4
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLineInput {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerIsRequired
	}
	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLineInput) error {
	if err := validateOrderLines(lines); err != nil {
		return err
	}
	c.lines = lines
	return nil
}
