package pallet_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pallet"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPallet(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("creates unstored pallet without slot", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := pallet.NewPallet(id, "PLT-001", productID, 20, 50, pallet.Unstored, nil)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, 20, p.Quantity())
		assert.Equal(t, 50, p.MaxCapacity())
		assert.Equal(t, pallet.Unstored, p.Status())
		assert.Nil(t, p.SlotID())
		assert.False(t, p.IsStored())
	})

	t.Run("creates stored pallet with slot", func(t *testing.T) {
		slotID := kernel.NewUUID()

		p, err := pallet.NewPallet(kernel.NewUUID(), "PLT-002", productID, 20, 50, pallet.Stored, &slotID)

		require.NoError(t, err)
		assert.True(t, p.IsStored())
		assert.True(t, p.SlotID().IsEqual(slotID))
	})

	t.Run("stored pallet requires a slot", func(t *testing.T) {
		_, err := pallet.NewPallet(kernel.NewUUID(), "PLT-003", productID, 20, 50, pallet.Stored, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unstored pallet must not carry a slot", func(t *testing.T) {
		slotID := kernel.NewUUID()
		_, err := pallet.NewPallet(kernel.NewUUID(), "PLT-004", productID, 20, 50, pallet.Unstored, &slotID)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("product reference is required", func(t *testing.T) {
		_, err := pallet.NewPallet(kernel.NewUUID(), "PLT-005", kernel.UUID{}, 20, 50, pallet.Unstored, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("quantity at capacity succeeds", func(t *testing.T) {
		p, err := pallet.NewPallet(kernel.NewUUID(), "PLT-006", productID, 50, 50, pallet.Unstored, nil)
		require.NoError(t, err)
		assert.Equal(t, 50, p.Quantity())
	})

	t.Run("quantity above capacity fails", func(t *testing.T) {
		_, err := pallet.NewPallet(kernel.NewUUID(), "PLT-007", productID, 51, 50, pallet.Unstored, nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("negative quantity fails", func(t *testing.T) {
		_, err := pallet.NewPallet(kernel.NewUUID(), "PLT-008", productID, -1, 50, pallet.Unstored, nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewInboundPallet(t *testing.T) {
	productID := kernel.NewUUID()
	purchaseOrderID := kernel.NewUUID()

	t.Run("creates ready-to-ship pallet bound to purchase order", func(t *testing.T) {
		p, err := pallet.NewInboundPallet(
			kernel.NewUUID(), "PLT-IN-001", productID, 30, 60, purchaseOrderID, "Acme Logistics",
		)

		require.NoError(t, err)
		assert.Equal(t, pallet.ReadyToShip, p.Status())
		assert.Nil(t, p.SlotID())
		assert.False(t, p.IsStored())
		assert.True(t, p.PurchaseOrderID().IsEqual(purchaseOrderID))
		assert.Equal(t, "Acme Logistics", p.SupplierName())
	})

	t.Run("requires purchase order reference", func(t *testing.T) {
		_, err := pallet.NewInboundPallet(
			kernel.NewUUID(), "PLT-IN-002", productID, 30, 60, kernel.UUID{}, "Acme Logistics",
		)
		require.Error(t, err)
	})
}

func TestPallet_ApplyTransition(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("moves pallet into a slot", func(t *testing.T) {
		p, _ := pallet.NewPallet(kernel.NewUUID(), "PLT-010", productID, 20, 50, pallet.Unstored, nil)
		slotID := kernel.NewUUID()

		err := p.ApplyTransition("PLT-010", 20, 50, pallet.Stored, &slotID)

		require.NoError(t, err)
		assert.True(t, p.IsStored())
		assert.True(t, p.SlotID().IsEqual(slotID))
	})

	t.Run("clears slot when leaving storage", func(t *testing.T) {
		slotID := kernel.NewUUID()
		p, _ := pallet.NewPallet(kernel.NewUUID(), "PLT-011", productID, 20, 50, pallet.Stored, &slotID)

		err := p.ApplyTransition("PLT-011", 20, 50, pallet.Unstored, nil)

		require.NoError(t, err)
		assert.False(t, p.IsStored())
		assert.Nil(t, p.SlotID())
	})

	t.Run("rejects quantity above new capacity", func(t *testing.T) {
		p, _ := pallet.NewPallet(kernel.NewUUID(), "PLT-012", productID, 20, 50, pallet.Unstored, nil)

		err := p.ApplyTransition("PLT-012", 31, 30, pallet.Unstored, nil)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPallet_Validate(t *testing.T) {
	var p pallet.Pallet
	require.ErrorIs(t, p.Validate(), pallet.ErrPalletIsNotConstructed)
}
