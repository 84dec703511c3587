package entity

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestSparePart_StockFlags(t *testing.T) {
	part := &SparePart{ManageInventory: true, Quantity: 5, LowStockLimit: 10}

	remaining, removed := ClampedDecrease(part.Quantity, 3)
	part.Quantity = remaining
	assert.Equal(t, 2, part.Quantity)
	assert.Equal(t, 3, removed)
	assert.True(t, part.IsLowStock())
	assert.False(t, part.IsOutOfStock())

	remaining, removed = ClampedDecrease(part.Quantity, 10)
	part.Quantity = remaining
	assert.Equal(t, 0, part.Quantity)
	assert.Equal(t, 2, removed)
	assert.True(t, part.IsOutOfStock())
}

func TestSparePart_UnmanagedNeverFlagged(t *testing.T) {
	part := &SparePart{ManageInventory: false, Quantity: 0, LowStockLimit: 10}

	assert.False(t, part.IsLowStock())
	assert.False(t, part.IsOutOfStock())
}

func TestClampedDecrease_NeverNegative(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("decrements summing past the start leave exactly zero", prop.ForAll(
		func(start int, amounts []int) bool {
			quantity := start
			total := 0
			for _, amount := range amounts {
				var removed int
				quantity, removed = ClampedDecrease(quantity, amount)
				total += removed
				if quantity < 0 {
					return false
				}
			}

			sum := 0
			for _, amount := range amounts {
				sum += amount
			}

			if sum >= start {
				return quantity == 0 && total == start
			}

			return quantity == start-sum && total == sum
		},
		gen.IntRange(0, 500),
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestClampedDecrease_IgnoresNonPositiveAmount(t *testing.T) {
	remaining, removed := ClampedDecrease(7, -3)
	assert.Equal(t, 7, remaining)
	assert.Equal(t, 0, removed)
}
