package commands_test

import (
	"context"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliverSupplyCommandHandler_Handle(t *testing.T) {
	t.Run("should deliver and report the amount", func(t *testing.T) {
		ctx := context.Background()
		agg := newTestAggregate(t)

		repo := new(MockWarehouseRepository)
		uow := new(MockWarehouseUoW)
		factory := new(MockWarehouseUoWFactory)
		expectTransaction(ctx, factory, uow, repo, agg)

		cmd, err := commands.NewDeliverSupplyCommand(agg.wh.ID(), agg.supplier.ID(), 7)
		require.NoError(t, err)

		h := commands.NewDeliverSupplyCommandHandler(factory)
		delivered, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 7, delivered)
		assert.Equal(t, 7, agg.wh.Ledger().Available(agg.khinkali))
		uow.AssertExpectations(t)
	})

	t.Run("should fail for unknown supplier", func(t *testing.T) {
		ctx := context.Background()
		agg := newTestAggregate(t)

		repo := new(MockWarehouseRepository)
		repo.On("Get", ctx, agg.wh.ID()).Return(agg.wh, nil).Once()

		uow := new(MockWarehouseUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("WarehouseRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockWarehouseUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewDeliverSupplyCommand(agg.wh.ID(), kernel.NewID(kernel.TagSupplier), 7)
		require.NoError(t, err)

		h := commands.NewDeliverSupplyCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
