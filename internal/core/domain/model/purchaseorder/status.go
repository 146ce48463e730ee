package purchaseorder

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
//
// The machine is strictly linear:
//
//	Pending ──> Processing ──> ReadyToShip ──> Shipping
//
// Every transition other than the immediate next step fails, including
// staying in place and moving backwards. Pallets may be attached only while
// Processing.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a newly created purchase order.
	Pending

	// Processing indicates the supplier confirmed the order. Inbound pallets
	// may be attached only in this state.
	Processing

	// ReadyToShip indicates the supplier has prepared the shipment.
	ReadyToShip

	// Shipping indicates the shipment is in transit. This is the final state.
	Shipping
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Pending:     "Pending",
		Processing:  "Processing",
		ReadyToShip: "ReadyToShip",
		Shipping:    "Shipping",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:     "Pending",
		Processing:  "Processing",
		ReadyToShip: "ReadyToShip",
		Shipping:    "Shipping",
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
		fmt.Errorf("%q is not a valid purchase order status", s),
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

// CanAttachPallets reports whether inbound pallets may be attached.
func (s Status) CanAttachPallets() bool {
	return s == Processing
}

// Advance transitions the status to target, which must be the immediate next
// step in the linear machine.
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if target != s+1 {
		return 0, errs.NewInvalidTransitionError("purchase order", s.String(), target.String())
	}
	return target, nil
}
