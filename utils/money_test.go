package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$12.50", FormatMoney(12.5))
	assert.Equal(t, "$0.00", FormatMoney(0))
	assert.Equal(t, "$33.00", FormatMoney(33))
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 25, DiscountPercent(20, 15))
	assert.Equal(t, 50, DiscountPercent(19.98, 9.99))
	assert.Equal(t, 33, DiscountPercent(30, 20))

	t.Run("no discount when current is not below original", func(t *testing.T) {
		assert.Equal(t, 0, DiscountPercent(20, 20))
		assert.Equal(t, 0, DiscountPercent(20, 25))
		assert.Equal(t, 0, DiscountPercent(0, 10))
	})
}
