package model

// CartLine is a row in the cart table. At most one line exists per
// (user_id, product_id); repeat adds merge into the existing line.
type CartLine struct {
	CartID    int64 `json:"cart_id"`
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CartItem is what the API exposes (cart line joined with product
// name/price/image). TotalPrice is price*quantity rounded to 2 decimals.
type CartItem struct {
	CartID     int64   `json:"cart_id"`
	ProductID  int64   `json:"product_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	ImageURI   string  `json:"image_uri"`
	TotalPrice float64 `json:"total_price"`
}

// CartResponse is returned when calling GET /cart
type CartResponse struct {
	Items     []CartItem `json:"items"`
	CartTotal float64    `json:"cart_total"`
}
