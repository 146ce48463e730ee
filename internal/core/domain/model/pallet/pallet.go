package pallet

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrPalletIsNotConstructed is returned when a Pallet instance was not created
// through one of the constructor functions.
var ErrPalletIsNotConstructed = errors.New("Pallet must be created via NewPallet, NewInboundPallet, or RestorePallet")

// Pallet is a physical unit of inventory. It always references a product;
// while Stored it also references exactly one slot and contributes its
// quantity to the product's stocked quantity.
//
// Invariants:
//   - 0 <= quantity <= maxCapacity
//   - slotID is set iff status is Stored
//   - a Stored pallet's quantity is included in the product's stocked quantity
type Pallet struct {
	// id is the unique identifier for the pallet
	id kernel.UUID

	// name is the human-readable pallet label
	name string

	// productID references the product carried on the pallet (required)
	productID kernel.UUID

	// quantity is the number of product units on the pallet
	quantity int

	// maxCapacity is the per-pallet unit capacity
	maxCapacity int

	// status is the lifecycle state
	status Status

	// slotID references the occupied slot; set iff status is Stored
	slotID *kernel.UUID

	// purchaseOrderID links inbound pallets to their purchase order
	purchaseOrderID *kernel.UUID

	// supplierName is inherited from the purchase order for inbound pallets
	supplierName string

	// manufacturedAt and expiresAt are optional batch dates
	manufacturedAt *time.Time
	expiresAt      *time.Time

	// guard ensures the aggregate was created via a constructor
	guard kernel.ConstructorGuard
}

// NewPallet creates a pallet in Unstored or Stored state.
//
// Validation rules:
//   - product reference is required
//   - quantity must lie within [0, maxCapacity]
//   - Stored requires a slot; Unstored must not carry one
func NewPallet(
	id kernel.UUID,
	name string,
	productID kernel.UUID,
	quantity int,
	maxCapacity int,
	status Status,
	slotID *kernel.UUID,
) (*Pallet, error) {
	p := &Pallet{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setProductID(productID),
		p.setCapacityAndQuantity(quantity, maxCapacity),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := p.setSlotID(slotID); err != nil {
		return nil, err
	}

	return p, nil
}

// NewInboundPallet creates a ReadyToShip pallet bound to a purchase order.
// Inbound pallets carry no slot and do not touch product stock; they
// represent inventory that has not physically arrived yet.
func NewInboundPallet(
	id kernel.UUID,
	name string,
	productID kernel.UUID,
	quantity int,
	maxCapacity int,
	purchaseOrderID kernel.UUID,
	supplierName string,
) (*Pallet, error) {
	if err := purchaseOrderID.Validate(); err != nil {
		return nil, err
	}

	p := &Pallet{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setProductID(productID),
		p.setCapacityAndQuantity(quantity, maxCapacity),
		p.setStatus(ReadyToShip),
	); err != nil {
		return nil, err
	}

	p.purchaseOrderID = &purchaseOrderID
	p.supplierName = supplierName
	return p, nil
}

// RestorePallet reconstructs a Pallet from persistence.
func RestorePallet(
	id kernel.UUID,
	name string,
	productID kernel.UUID,
	quantity int,
	maxCapacity int,
	status Status,
	slotID *kernel.UUID,
	purchaseOrderID *kernel.UUID,
	supplierName string,
	manufacturedAt *time.Time,
	expiresAt *time.Time,
) (*Pallet, error) {
	p := &Pallet{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setProductID(productID),
		p.setCapacityAndQuantity(quantity, maxCapacity),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := p.setSlotID(slotID); err != nil {
		return nil, err
	}

	if purchaseOrderID != nil {
		if err := purchaseOrderID.Validate(); err != nil {
			return nil, err
		}
	}
	p.purchaseOrderID = purchaseOrderID
	p.supplierName = supplierName
	p.manufacturedAt = manufacturedAt
	p.expiresAt = expiresAt
	return p, nil
}

// Validate ensures the Pallet was created through a constructor.
func (p *Pallet) Validate() error {
	if p == nil {
		return ErrPalletIsNotConstructed
	}
	return p.guard.Validate(ErrPalletIsNotConstructed)
}

// IsEqual compares two pallets by identity.
func (p *Pallet) IsEqual(other *Pallet) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the pallet's unique identifier.
func (p *Pallet) ID() kernel.UUID {
	return p.id
}

// Name returns the pallet label.
func (p *Pallet) Name() string {
	return p.name
}

// ProductID returns the carried product's identifier.
func (p *Pallet) ProductID() kernel.UUID {
	return p.productID
}

// Quantity returns the number of product units on the pallet.
func (p *Pallet) Quantity() int {
	return p.quantity
}

// MaxCapacity returns the per-pallet unit capacity.
func (p *Pallet) MaxCapacity() int {
	return p.maxCapacity
}

// Status returns the lifecycle state.
func (p *Pallet) Status() Status {
	return p.status
}

// SlotID returns the occupied slot's ID, or nil when the pallet is not stored.
func (p *Pallet) SlotID() *kernel.UUID {
	return p.slotID
}

// PurchaseOrderID returns the linked purchase order's ID, if any.
func (p *Pallet) PurchaseOrderID() *kernel.UUID {
	return p.purchaseOrderID
}

// SupplierName returns the supplier name inherited from the purchase order.
func (p *Pallet) SupplierName() string {
	return p.supplierName
}

// ManufacturedAt returns the optional manufacturing date.
func (p *Pallet) ManufacturedAt() *time.Time {
	return p.manufacturedAt
}

// ExpiresAt returns the optional expiry date.
func (p *Pallet) ExpiresAt() *time.Time {
	return p.expiresAt
}

// SetBatchDates records the optional manufacturing and expiry dates.
func (p *Pallet) SetBatchDates(manufacturedAt, expiresAt *time.Time) {
	p.manufacturedAt = manufacturedAt
	p.expiresAt = expiresAt
}

// IsStored reports whether the pallet currently contributes to stock.
func (p *Pallet) IsStored() bool {
	return p.status.IsStored()
}

// ApplyTransition mutates the pallet to the target of a planned transition.
// The caller is responsible for applying the transition's stock and slot
// effects in the same unit of work; see the transition planner in the
// services package.
func (p *Pallet) ApplyTransition(name string, quantity, maxCapacity int, status Status, slotID *kernel.UUID) error {
	if err := errors.Join(
		p.setName(name),
		p.setCapacityAndQuantity(quantity, maxCapacity),
		p.setStatus(status),
	); err != nil {
		return err
	}

	return p.setSlotID(slotID)
}

func (p *Pallet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pallet) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}
	p.name = name
	return nil
}

func (p *Pallet) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID is required", err)
	}
	p.productID = productID
	return nil
}

func (p *Pallet) setCapacityAndQuantity(quantity, maxCapacity int) error {
	if maxCapacity <= 0 {
		return errs.NewValueIsInvalidError("maxCapacity must be greater than 0")
	}
	if quantity < 0 || quantity > maxCapacity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, maxCapacity)
	}
	p.maxCapacity = maxCapacity
	p.quantity = quantity
	return nil
}

func (p *Pallet) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Pallet) setSlotID(slotID *kernel.UUID) error {
	if p.status.IsStored() {
		if slotID == nil {
			return errs.NewValueIsRequiredError("slotID is required for a stored pallet")
		}
		if err := slotID.Validate(); err != nil {
			return err
		}
		p.slotID = slotID
		return nil
	}

	if slotID != nil {
		return errs.NewValueIsInvalidError("slotID must be empty unless the pallet is stored")
	}
	p.slotID = nil
	return nil
}
