package services

import (
	"testing"

	"github.com/Dewey-byte/angular-project/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 25.5, Round2(25.499999999))
	assert.Equal(t, 0.0, Round2(0))
	// 9.995 has no exact binary representation; 9.995*100 lands just below
	// 999.5, so the value rounds down. Pinned so a future switch to half-up
	// rounding shows up as a test change.
	assert.Equal(t, 9.99, Round2(9.995))
	assert.Equal(t, 10.0, Round2(9.996))
}

func TestPriceCartTotals(t *testing.T) {
	items := []model.CartItem{
		{CartID: 1, ProductID: 10, Price: 10.00, Quantity: 2},
		{CartID: 2, ProductID: 11, Price: 5.50, Quantity: 1},
	}

	total := PriceCart(items)

	require.InDelta(t, 25.50, total, 1e-9)
	assert.InDelta(t, 20.00, items[0].TotalPrice, 1e-9)
	assert.InDelta(t, 5.50, items[1].TotalPrice, 1e-9)
}

func TestPriceCartEmpty(t *testing.T) {
	assert.Equal(t, 0.0, PriceCart(nil))
}

// Line totals round individually while the cart total rounds over the raw
// sum, so they may legitimately disagree by one cent. Pin that here.
func TestPriceCartRoundingDivergence(t *testing.T) {
	items := []model.CartItem{
		{Price: 3.333, Quantity: 1},
		{Price: 3.333, Quantity: 1},
	}

	total := PriceCart(items)

	require.InDelta(t, 6.67, total, 1e-9)
	lineSum := items[0].TotalPrice + items[1].TotalPrice
	assert.InDelta(t, 6.66, lineSum, 1e-9)
	assert.InDelta(t, 0.01, total-lineSum, 1e-9)
}

// The stored order total must equal the exact sum of the stored subtotals.
func TestOrderLinesTotalMatchesSubtotals(t *testing.T) {
	items := []model.CartItem{
		{ProductID: 10, Price: 10.00, Quantity: 2},
		{ProductID: 11, Price: 5.50, Quantity: 1},
		{ProductID: 12, Price: 3.333, Quantity: 3},
	}

	lines, total := OrderLines(items)

	require.Len(t, lines, 3)
	var sum float64
	for _, l := range lines {
		sum += l.Subtotal
	}
	assert.Equal(t, sum, total)
	assert.Equal(t, int64(10), lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 10.00, lines[0].Price)
}
