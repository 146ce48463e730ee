package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByUserQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersByUserQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrdersByUserQuery_EmptyUserID(t *testing.T) {
	_, err := queries.NewGetOrdersByUserQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrdersByUserQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByUserQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByUserQueryIsNotConstructed)
}
