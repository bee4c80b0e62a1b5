package kernel_test

import (
	"testing"

	"courierdocs/internal/core/domain/model/kernel"
	"courierdocs/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse a valid decimal amount", func(t *testing.T) {
		m, err := kernel.MoneyFromString("149.90")

		require.NoError(t, err)
		assert.Equal(t, "R 149.90", m.Format())
	})

	t.Run("should reject a non-numeric amount", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten rand")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFormat(t *testing.T) {
	t.Run("whole amounts gain two decimal places", func(t *testing.T) {
		assert.Equal(t, "R 10.00", kernel.MoneyFromInt(10).Format())
	})

	t.Run("formatting is idempotent", func(t *testing.T) {
		m, err := kernel.MoneyFromString("287.5")
		require.NoError(t, err)

		first := m.Format()
		second := m.Format()
		assert.Equal(t, first, second)
		assert.Equal(t, "R 287.50", first)
	})

	t.Run("zero value formats as zero rand", func(t *testing.T) {
		var m kernel.Money
		assert.Equal(t, "R 0.00", m.Format())
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("add and multiply stay exact", func(t *testing.T) {
		price, err := kernel.MoneyFromString("100")
		require.NoError(t, err)

		line := price.Mul(decimal.NewFromInt(2))
		total := line.Add(kernel.MoneyFromInt(50))

		assert.Equal(t, "R 250.00", total.Format())
	})

	t.Run("fifteen percent of a subtotal", func(t *testing.T) {
		subtotal := kernel.MoneyFromInt(250)
		vat := subtotal.Mul(decimal.NewFromFloat(0.15))

		assert.Equal(t, "R 37.50", vat.Format())
	})
}

func TestMoneyValidate(t *testing.T) {
	t.Run("non-negative amounts are valid", func(t *testing.T) {
		require.NoError(t, kernel.MoneyFromInt(0).Validate())
		require.NoError(t, kernel.MoneyFromInt(10).Validate())
	})

	t.Run("negative amounts are rejected", func(t *testing.T) {
		err := kernel.MoneyFromInt(-1).Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
