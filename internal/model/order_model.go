package model

import "time"

// Order represents an entry in the orders table. Immutable after creation
// except for order_status transitions.
type Order struct {
	OrderID       int64      `json:"order_id"`
	UserID        int64      `json:"user_id"`
	OrderDate     *time.Time `json:"order_date,omitempty"`
	TotalAmount   float64    `json:"total_amount"`
	OrderStatus   string     `json:"order_status"`
	PaymentMethod string     `json:"payment_method"`
}

// OrderDetail is one line item within an order. Subtotal carries the price
// snapshot taken at order time; later catalog price changes never touch it.
type OrderDetail struct {
	OrderDetailID int64   `json:"order_detail_id"`
	OrderID       int64   `json:"order_id"`
	ProductID     int64   `json:"product_id"`
	Quantity      int     `json:"quantity"`
	Subtotal      float64 `json:"subtotal"`
}

// OrderLine is the input to order creation: one cart line priced at the
// moment of checkout. Subtotal is the raw (unrounded) price*quantity so that
// the stored total always equals the exact sum of its details.
type OrderLine struct {
	ProductID int64
	Quantity  int
	Price     float64
	Subtotal  float64
}

// Quote is the read-only review summary shown before order placement.
type Quote struct {
	UserInfo    ShippingInfo `json:"user_info"`
	Items       []CartItem   `json:"items"`
	TotalAmount float64      `json:"total_amount"`
}

// PlacedOrder is returned by POST /checkout/place_order.
type PlacedOrder struct {
	OrderID       int64   `json:"Order_ID"`
	TotalAmount   float64 `json:"total_amount"`
	Message       string  `json:"message"`
	PaymentMethod string  `json:"payment_method"`
}
