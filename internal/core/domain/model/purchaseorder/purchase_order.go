package purchaseorder

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder instance
// was not created through a constructor function.
var ErrPurchaseOrderIsNotConstructed = errors.New(
	"PurchaseOrder must be created via NewPurchaseOrder or RestorePurchaseOrder constructor")

// PurchaseOrder is the aggregate root for inbound supplier orders. It tracks
// the ordered lines, the linear fulfillment status, and the inbound pallets
// attached while the supplier is processing the order.
//
// Attaching a pallet has no stock or slot effect; the pallet is created
// ReadyToShip and enters stock only when it is later stored through the
// normal pallet update path.
type PurchaseOrder struct {
	// id is the unique identifier for the purchase order
	id kernel.UUID

	// supplierName identifies the supplier fulfilling the order
	supplierName string

	// expectedArrival is the promised delivery time
	expectedArrival time.Time

	// status is the current step in the linear fulfillment machine
	status Status

	// lines are the ordered product positions
	lines []Line

	// palletIDs are the inbound pallets attached while Processing
	palletIDs []kernel.UUID

	// guard ensures the aggregate was created via a constructor
	guard kernel.ConstructorGuard
}

// NewPurchaseOrder creates a Pending purchase order.
func NewPurchaseOrder(
	id kernel.UUID,
	supplierName string,
	expectedArrival time.Time,
	lines []Line,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		status: Pending,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		po.setID(id),
		po.setSupplierName(supplierName),
		po.setLines(lines),
	); err != nil {
		return nil, err
	}

	po.expectedArrival = expectedArrival
	return po, nil
}

// RestorePurchaseOrder reconstructs a PurchaseOrder from persistence.
func RestorePurchaseOrder(
	id kernel.UUID,
	supplierName string,
	expectedArrival time.Time,
	status Status,
	lines []Line,
	palletIDs []kernel.UUID,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		po.setID(id),
		po.setSupplierName(supplierName),
		po.setStatus(status),
		po.setLines(lines),
	); err != nil {
		return nil, err
	}

	for _, palletID := range palletIDs {
		if err := palletID.Validate(); err != nil {
			return nil, err
		}
	}

	po.expectedArrival = expectedArrival
	po.palletIDs = append([]kernel.UUID(nil), palletIDs...)
	return po, nil
}

// Validate ensures the PurchaseOrder was created through a constructor.
func (po *PurchaseOrder) Validate() error {
	if po == nil {
		return ErrPurchaseOrderIsNotConstructed
	}
	return po.guard.Validate(ErrPurchaseOrderIsNotConstructed)
}

// IsEqual compares two purchase orders by identity.
func (po *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && po.id.IsEqual(other.id)
}

// ID returns the purchase order's unique identifier.
func (po *PurchaseOrder) ID() kernel.UUID {
	return po.id
}

// SupplierName returns the supplier fulfilling the order.
func (po *PurchaseOrder) SupplierName() string {
	return po.supplierName
}

// ExpectedArrival returns the promised delivery time.
func (po *PurchaseOrder) ExpectedArrival() time.Time {
	return po.expectedArrival
}

// Status returns the current fulfillment step.
func (po *PurchaseOrder) Status() Status {
	return po.status
}

// Lines returns a copy of the ordered product positions.
func (po *PurchaseOrder) Lines() []Line {
	lines := make([]Line, len(po.lines))
	copy(lines, po.lines)
	return lines
}

// PalletIDs returns a copy of the attached inbound pallet IDs.
func (po *PurchaseOrder) PalletIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), po.palletIDs...)
}

// TotalCents returns the order value from the line price snapshots.
func (po *PurchaseOrder) TotalCents() int64 {
	var total int64
	for _, l := range po.lines {
		total += l.TotalCents()
	}
	return total
}

// AdvanceStatus moves the order to the next step in the linear machine.
// Any other target fails with a transition error.
func (po *PurchaseOrder) AdvanceStatus(target Status) error {
	newStatus, err := po.status.Advance(target)
	if err != nil {
		return err
	}
	po.status = newStatus
	return nil
}

// AttachPallet records an inbound pallet on the order. Allowed only while
// Processing; attaching the same pallet twice fails.
func (po *PurchaseOrder) AttachPallet(palletID kernel.UUID) error {
	if err := palletID.Validate(); err != nil {
		return err
	}

	if !po.status.CanAttachPallets() {
		return errs.NewInvalidTransitionError("purchase order pallet attachment", po.status.String(), Processing.String())
	}

	for _, existing := range po.palletIDs {
		if existing.IsEqual(palletID) {
			return errs.NewValueIsInvalidErrorWithCause(
				"palletID is invalid",
				fmt.Errorf("pallet %s is already attached", palletID),
			)
		}
	}

	po.palletIDs = append(po.palletIDs, palletID)
	return nil
}

func (po *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	po.id = id
	return nil
}

func (po *PurchaseOrder) setSupplierName(supplierName string) error {
	if supplierName == "" {
		return errs.NewValueIsRequiredError("supplierName is required")
	}
	po.supplierName = supplierName
	return nil
}

func (po *PurchaseOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	po.status = status
	return nil
}

func (po *PurchaseOrder) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines are required")
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	po.lines = append([]Line(nil), lines...)
	return nil
}
