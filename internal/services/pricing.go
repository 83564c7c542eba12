package services

import (
	"math"

	"github.com/Dewey-byte/angular-project/internal/model"
)

// Pricing is pure computation over cart lines already carrying their current
// product price. Rounding policy: each displayed line total is rounded to 2
// decimals on its own, and the cart total is rounded once over the raw sum.
// The sum of displayed line totals may therefore differ from the displayed
// total by a cent; pricing_test.go pins that choice. Rounding is to the
// nearest representable cent of the float64 input, not decimal half-up, so
// an apparent .xx5 whose binary value falls short of the midpoint rounds
// down (9.995 -> 9.99).

// Round2 rounds a monetary value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PriceCart fills TotalPrice on every item and returns the rounded cart total.
func PriceCart(items []model.CartItem) float64 {
	var raw float64
	for i := range items {
		line := items[i].Price * float64(items[i].Quantity)
		items[i].TotalPrice = Round2(line)
		raw += line
	}
	return Round2(raw)
}

// OrderLines converts priced cart items into order lines with raw subtotals
// and returns the raw total, so that the stored total_amount equals the exact
// sum of the stored subtotals.
func OrderLines(items []model.CartItem) ([]model.OrderLine, float64) {
	lines := make([]model.OrderLine, 0, len(items))
	var total float64
	for _, it := range items {
		sub := it.Price * float64(it.Quantity)
		lines = append(lines, model.OrderLine{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Subtotal:  sub,
		})
		total += sub
	}
	return lines, total
}
