package pallet

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status classifies a pallet's lifecycle state, which determines whether the
// pallet contributes its quantity to product stock and whether it occupies a
// storage slot.
//
// States:
//
//	Unstored    — on the floor, no slot, no stock contribution
//	Stored      — bound to exactly one slot, contributes quantity to stock
//	ReadyToShip — inbound pallet attached to a purchase order; no slot, no
//	              stock contribution until it is received and stored
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Unstored marks a pallet that is not placed in a slot. It does not
	// contribute to product stock.
	Unstored

	// Stored marks a pallet placed in a slot. Its quantity is part of the
	// product's stocked quantity.
	Stored

	// ReadyToShip marks an inbound pallet created through purchase-order
	// attachment. It bypasses slot and stock accounting.
	ReadyToShip
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Unstored:    "Unstored",
		Stored:      "Stored",
		ReadyToShip: "ReadyToShip",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Unstored:    "Unstored",
		Stored:      "Stored",
		ReadyToShip: "ReadyToShip",
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
		fmt.Errorf("%q is not a valid pallet status", s),
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

// IsStored reports whether the status contributes to stock and requires a slot.
func (s Status) IsStored() bool {
	return s == Stored
}
