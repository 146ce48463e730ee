package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer order.
//
// State transitions:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │
//	   └──> Canceled
//
// Canceled is reachable only from Pending and only through Order.Cancel,
// which restores the reserved stock. Any other status may be written through
// on update after set-membership validation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a newly created order. Line items may
	// be edited and the order may be canceled only while Pending.
	Pending

	// Processing indicates the order is being picked and packed.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order has reached the customer.
	Delivered

	// Canceled indicates the order was canceled and its stock restored.
	// This is a final state.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Canceled:   "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Canceled:   "Canceled",
	}
}

// StatusFromString parses a status name, e.g. from an API request.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanEditLines reports whether line items may still be replaced.
func (s Status) CanEditLines() bool {
	return s == Pending
}

// Cancel transitions the status to Canceled. Only Pending orders may be
// canceled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("order", s.String(), Canceled.String())
	}
	return Canceled, nil
}
