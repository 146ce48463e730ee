package services_test

import (
	"testing"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/pallet"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedPallet(t *testing.T, quantity int, slotID kernel.UUID) *pallet.Pallet {
	t.Helper()
	p, err := pallet.NewPallet(kernel.NewUUID(), "PLT-100", kernel.NewUUID(), quantity, 100, pallet.Stored, &slotID)
	require.NoError(t, err)
	return p
}

func unstoredPallet(t *testing.T, quantity int) *pallet.Pallet {
	t.Helper()
	p, err := pallet.NewPallet(kernel.NewUUID(), "PLT-100", kernel.NewUUID(), quantity, 100, pallet.Unstored, nil)
	require.NoError(t, err)
	return p
}

func TestPalletTransitionPlanner_Plan(t *testing.T) {
	planner := services.NewPalletTransitionPlanner()

	t.Run("stored to unstored releases slot and stock", func(t *testing.T) {
		slotID := kernel.NewUUID()
		p := storedPallet(t, 30, slotID)

		tr, err := planner.Plan(p, 30, pallet.Unstored, nil)

		require.NoError(t, err)
		assert.Equal(t, -30, tr.StockDelta)
		require.NotNil(t, tr.ReleaseSlotID)
		assert.True(t, tr.ReleaseSlotID.IsEqual(slotID))
		assert.Nil(t, tr.OccupySlotID)
	})

	t.Run("unstored to stored adds stock and occupies slot", func(t *testing.T) {
		p := unstoredPallet(t, 30)
		slotID := kernel.NewUUID()

		tr, err := planner.Plan(p, 30, pallet.Stored, &slotID)

		require.NoError(t, err)
		assert.Equal(t, 30, tr.StockDelta)
		assert.Nil(t, tr.ReleaseSlotID)
		require.NotNil(t, tr.OccupySlotID)
		assert.True(t, tr.OccupySlotID.IsEqual(slotID))
	})

	t.Run("quantity change while stored yields the difference", func(t *testing.T) {
		slotID := kernel.NewUUID()
		p := storedPallet(t, 30, slotID)

		tr, err := planner.Plan(p, 45, pallet.Stored, &slotID)

		require.NoError(t, err)
		assert.Equal(t, 15, tr.StockDelta)
		assert.Nil(t, tr.ReleaseSlotID)
		assert.Nil(t, tr.OccupySlotID)
	})

	t.Run("slot change while stored swaps slots", func(t *testing.T) {
		oldSlotID := kernel.NewUUID()
		newSlotID := kernel.NewUUID()
		p := storedPallet(t, 30, oldSlotID)

		tr, err := planner.Plan(p, 30, pallet.Stored, &newSlotID)

		require.NoError(t, err)
		assert.Equal(t, 0, tr.StockDelta)
		require.NotNil(t, tr.ReleaseSlotID)
		assert.True(t, tr.ReleaseSlotID.IsEqual(oldSlotID))
		require.NotNil(t, tr.OccupySlotID)
		assert.True(t, tr.OccupySlotID.IsEqual(newSlotID))
	})

	t.Run("unstored to unstored is a noop", func(t *testing.T) {
		p := unstoredPallet(t, 30)

		tr, err := planner.Plan(p, 40, pallet.Unstored, nil)

		require.NoError(t, err)
		assert.True(t, tr.IsNoop())
	})

	t.Run("stored target without slot fails", func(t *testing.T) {
		p := unstoredPallet(t, 30)

		_, err := planner.Plan(p, 30, pallet.Stored, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unstored target with slot fails", func(t *testing.T) {
		p := unstoredPallet(t, 30)
		slotID := kernel.NewUUID()

		_, err := planner.Plan(p, 30, pallet.Unstored, &slotID)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPalletTransitionPlanner_PlanDeletion(t *testing.T) {
	planner := services.NewPalletTransitionPlanner()

	t.Run("stored pallet gives back slot and stock", func(t *testing.T) {
		slotID := kernel.NewUUID()
		p := storedPallet(t, 25, slotID)

		tr, err := planner.PlanDeletion(p)

		require.NoError(t, err)
		assert.Equal(t, -25, tr.StockDelta)
		require.NotNil(t, tr.ReleaseSlotID)
		assert.True(t, tr.ReleaseSlotID.IsEqual(slotID))
	})

	t.Run("unstored pallet has no effects", func(t *testing.T) {
		p := unstoredPallet(t, 25)

		tr, err := planner.PlanDeletion(p)

		require.NoError(t, err)
		assert.True(t, tr.IsNoop())
	})
}

func TestPalletTransitionPlanner_PlanCreation(t *testing.T) {
	planner := services.NewPalletTransitionPlanner()

	t.Run("stored pallet adds stock and occupies slot", func(t *testing.T) {
		slotID := kernel.NewUUID()
		p := storedPallet(t, 25, slotID)

		tr, err := planner.PlanCreation(p)

		require.NoError(t, err)
		assert.Equal(t, 25, tr.StockDelta)
		require.NotNil(t, tr.OccupySlotID)
		assert.True(t, tr.OccupySlotID.IsEqual(slotID))
	})

	t.Run("unstored pallet has no effects", func(t *testing.T) {
		p := unstoredPallet(t, 25)

		tr, err := planner.PlanCreation(p)

		require.NoError(t, err)
		assert.True(t, tr.IsNoop())
	})
}
