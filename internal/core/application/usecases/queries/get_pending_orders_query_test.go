package queries_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingOrdersQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		warehouseID := kernel.NewID(kernel.TagWarehouse)

		query, err := queries.NewGetPendingOrdersQuery(warehouseID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, query.WarehouseID().IsEqual(warehouseID))
	})

	t.Run("should fail with invalid warehouse id", func(t *testing.T) {
		var invalid kernel.ID

		_, err := queries.NewGetPendingOrdersQuery(invalid)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var query queries.GetPendingOrdersQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetPendingOrdersQueryIsNotConstructed)
	})
}
