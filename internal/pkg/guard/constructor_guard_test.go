package guard_test

import (
	"errors"
	"testing"

	"warehouse/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	g := guard.NewConstructorGuard()

	customError := errors.New("test object not constructed")
	require.NoError(t, g.Validate(customError))
	require.NoError(t, g.Validate(nil))
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	require.Error(t, guard.ErrDefaultConstructorGuard)
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}

// TestConstructorGuardUsageExample demonstrates embedding the guard in a
// command object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type lineItem struct {
		productID string
		quantity  int
		guard     guard.ConstructorGuard
	}

	var errLineItemNotConstructed = errors.New("lineItem must be created via newLineItem")

	newLineItem := func(productID string, quantity int) (lineItem, error) {
		if productID == "" {
			return lineItem{}, errors.New("product ID is required")
		}
		if quantity <= 0 {
			return lineItem{}, errors.New("quantity must be positive")
		}
		return lineItem{
			productID: productID,
			quantity:  quantity,
			guard:     guard.NewConstructorGuard(),
		}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		item, err := newLineItem("123", 5)
		require.NoError(t, err)
		require.NoError(t, item.guard.Validate(errLineItemNotConstructed))
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var item lineItem
		err := item.guard.Validate(errLineItemNotConstructed)
		require.Error(t, err)
		assert.Equal(t, errLineItemNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newLineItem("", 5)
		require.Error(t, err)

		_, err = newLineItem("123", 0)
		require.Error(t, err)
	})
}
