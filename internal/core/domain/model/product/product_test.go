package product_test

import (
	"testing"

	"warehouse/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create valid product", func(t *testing.T) {
		p, err := product.NewProduct("khinkali", 50.0)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "khinkali", p.Name())
		assert.InDelta(t, 50.0, p.Price(), 1e-9)
	})

	t.Run("should accept zero price", func(t *testing.T) {
		p, err := product.NewProduct("sample", 0)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := product.NewProduct("", 10)

		require.Error(t, err)
		assert.ErrorIs(t, err, product.ErrNameIsRequired)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := product.NewProduct("khinkali", -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should fail validation for zero value", func(t *testing.T) {
		var p product.Product

		require.Error(t, p.Validate())
	})
}

func TestProductEquality(t *testing.T) {
	t.Run("should equate products by name and price", func(t *testing.T) {
		a, _ := product.NewProduct("khinkali", 50)
		b, _ := product.NewProduct("khinkali", 50)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should distinguish by price", func(t *testing.T) {
		a, _ := product.NewProduct("khinkali", 50)
		b, _ := product.NewProduct("khinkali", 60)

		assert.False(t, a.IsEqual(b))
	})

	t.Run("should collapse equal products into one map key", func(t *testing.T) {
		a, _ := product.NewProduct("khinkali", 50)
		b, _ := product.NewProduct("khinkali", 50)

		counts := map[product.Product]int{}
		counts[a]++
		counts[b]++

		assert.Len(t, counts, 1)
		assert.Equal(t, 2, counts[a])
	})
}

func TestProductString(t *testing.T) {
	t.Run("should render name and price", func(t *testing.T) {
		p, _ := product.NewProduct("khinkali", 50)

		assert.Equal(t, "khinkali (50.00)", p.String())
	})
}
