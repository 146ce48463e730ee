package order

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a customer order. Creating an order
// reserves stock for every line item; canceling a Pending order releases it.
//
// Invariants:
//   - at least one line item; every line quantity is positive
//   - status is one of the defined lifecycle states
//   - line items may be replaced only while Pending
//   - Canceled is reachable only from Pending, and a Canceled order is
//     immutable
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// userID identifies the customer account that placed the order
	userID kernel.UUID

	// customerName is the display name captured at order time
	customerName string

	// shippingAddress is the destination captured at order time
	shippingAddress string

	// paymentLast4 are the last four digits of the payment instrument
	paymentLast4 string

	// status is the current lifecycle state
	status Status

	// lineItems are the ordered product quantities with price snapshots
	lineItems []LineItem

	// guard ensures the aggregate was created via a constructor
	guard kernel.ConstructorGuard
}

// NewOrder creates a Pending order. The caller is responsible for reserving
// stock for the line items in the same unit of work.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	customerName string,
	shippingAddress string,
	paymentLast4 string,
	lineItems []LineItem,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCustomerName(customerName),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	o.shippingAddress = shippingAddress
	o.paymentLast4 = paymentLast4
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	customerName string,
	shippingAddress string,
	paymentLast4 string,
	status Status,
	lineItems []LineItem,
) (*Order, error) {
	o := &Order{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setCustomerName(customerName),
		o.setStatus(status),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	o.shippingAddress = shippingAddress
	o.paymentLast4 = paymentLast4
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the customer account identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// CustomerName returns the customer display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// ShippingAddress returns the destination address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// PaymentLast4 returns the last four digits of the payment instrument.
func (o *Order) PaymentLast4() string {
	return o.paymentLast4
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// ItemCount returns the total ordered quantity across all lines.
func (o *Order) ItemCount() int {
	count := 0
	for _, li := range o.lineItems {
		count += li.quantity
	}
	return count
}

// TotalCents returns the order value from the captured price snapshots.
func (o *Order) TotalCents() int64 {
	var total int64
	for _, li := range o.lineItems {
		total += li.TotalCents()
	}
	return total
}

// ReplaceLineItems swaps the order's line items for a new set. Allowed only
// while Pending. The caller is responsible for the matching stock moves:
// restoring the old reservation and deducting the new one.
func (o *Order) ReplaceLineItems(lineItems []LineItem) error {
	if !o.status.CanEditLines() {
		return errs.NewValueIsInvalidErrorWithCause(
			"order is not editable",
			fmt.Errorf("line items may be replaced only while Pending, order is %s", o.status),
		)
	}
	return o.setLineItems(lineItems)
}

// ChangeDetails updates the mutable non-stock fields of the order.
func (o *Order) ChangeDetails(customerName, shippingAddress, paymentLast4 string) error {
	if o.status == Canceled {
		return errs.NewInvalidTransitionError("order", Canceled.String(), o.status.String())
	}
	if err := o.setCustomerName(customerName); err != nil {
		return err
	}
	o.shippingAddress = shippingAddress
	o.paymentLast4 = paymentLast4
	return nil
}

// ChangeStatus writes through a requested status after set-membership
// validation. Canceled cannot be entered this way; use Cancel, which also
// releases the stock reservation. A Canceled order cannot change status.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == Canceled {
		return errs.NewInvalidTransitionError("order", o.status.String(), Canceled.String())
	}
	if o.status == Canceled {
		return errs.NewInvalidTransitionError("order", Canceled.String(), status.String())
	}
	o.status = status
	return nil
}

// Cancel transitions a Pending order to Canceled. The caller is responsible
// for restoring the reserved stock in the same unit of work.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID is required", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer is required")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems are required")
	}
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	items := make([]LineItem, len(lineItems))
	copy(items, lineItems)
	o.lineItems = items
	return nil
}
