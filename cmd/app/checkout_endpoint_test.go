package main

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/Dewey-byte/angular-project/internal/repository"
	"github.com/Dewey-byte/angular-project/internal/services"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutTestServer(t *testing.T) (*echo.Echo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	carts := repository.NewCartRepository(mock)
	cks := services.NewCheckoutService(
		carts,
		repository.NewOrderRepository(mock),
		repository.NewUserRepository(mock),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	e := echo.New()
	e.Validator = newRequestValidator()
	g := e.Group("/api")
	registerCheckoutRoutes(g, cks)
	registerCartRoutes(g, services.NewCartService(carts, repository.NewProductRepository(mock)))
	return e, mock
}

func checkoutCartRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"cart_id", "product_id", "product_name", "price", "quantity", "image_uri"}).
		AddRow(int64(1), int64(10), "notebook", 10.00, 2, "").
		AddRow(int64(2), int64(11), "pencil set", 5.50, 1, "")
}

// The full flow: review quotes a total, place_order charges exactly that
// total, and the cart comes back empty afterwards.
func TestCheckoutFlow(t *testing.T) {
	e, mock := newCheckoutTestServer(t)
	auth := bearerToken(t, 7)

	// review
	mock.ExpectQuery(`SELECT c.cart_id`).WithArgs(int64(7)).WillReturnRows(checkoutCartRows())
	mock.ExpectQuery(`SELECT COALESCE`).WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"full_name", "address", "contact_number"}).
			AddRow("Ana Cruz", "12 Mabini St", "0917-555-0000"))

	// place_order
	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE OF c`).WithArgs(int64(7)).WillReturnRows(checkoutCartRows())
	mock.ExpectQuery(`INSERT INTO orders`).
		WillReturnRows(pgxmock.NewRows([]string{"order_id"}).AddRow(int64(41)))
	mock.ExpectExec(`INSERT INTO order_details`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`INSERT INTO order_details`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`DELETE FROM cart WHERE cart_id = ANY`).WithArgs([]int64{1, 2}).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectCommit()

	// cart afterwards
	mock.ExpectQuery(`SELECT c.cart_id`).WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"cart_id", "product_id", "product_name", "price", "quantity", "image_uri"}))

	rec := doJSON(e, http.MethodGet, "/api/checkout/review", "", auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_amount":25.5`)

	rec = doJSON(e, http.MethodPost, "/api/checkout/place_order", "", auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Order_ID":41`)
	assert.Contains(t, rec.Body.String(), `"total_amount":25.5`)
	assert.Contains(t, rec.Body.String(), `"payment_method":"COD"`)

	rec = doJSON(e, http.MethodGet, "/api/cart", "", auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cart_total":0`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Placing an order on an empty cart fails cleanly and writes nothing.
func TestPlaceOrderEmptyCartEndpoint(t *testing.T) {
	e, mock := newCheckoutTestServer(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE OF c`).WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"cart_id", "product_id", "product_name", "price", "quantity", "image_uri"}))
	mock.ExpectRollback()

	rec := doJSON(e, http.MethodPost, "/api/checkout/place_order", "", bearerToken(t, 7))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cart is empty")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewEmptyCartEndpoint(t *testing.T) {
	e, mock := newCheckoutTestServer(t)

	mock.ExpectQuery(`SELECT c.cart_id`).WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"cart_id", "product_id", "product_name", "price", "quantity", "image_uri"}))

	rec := doJSON(e, http.MethodGet, "/api/checkout/review", "", bearerToken(t, 7))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cart is empty")
}

// A user who never entered shipping info still gets a quote with empty
// strings, not a 404.
func TestReviewWithoutShippingEndpoint(t *testing.T) {
	e, mock := newCheckoutTestServer(t)

	mock.ExpectQuery(`SELECT c.cart_id`).WithArgs(int64(7)).WillReturnRows(checkoutCartRows())
	mock.ExpectQuery(`SELECT COALESCE`).WithArgs(int64(7)).WillReturnError(pgx.ErrNoRows)

	rec := doJSON(e, http.MethodGet, "/api/checkout/review", "", bearerToken(t, 7))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"full_name":""`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShippingValidation(t *testing.T) {
	e, mock := newCheckoutTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/checkout/shipping",
		`{"full_name":"Ana Cruz","address":""}`, bearerToken(t, 7))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing shipping fields")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShippingSaved(t *testing.T) {
	e, mock := newCheckoutTestServer(t)
	mock.ExpectExec(`UPDATE users SET full_name`).
		WithArgs("Ana Cruz", "12 Mabini St", "0917-555-0000", int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	rec := doJSON(e, http.MethodPost, "/api/checkout/shipping",
		`{"full_name":"Ana Cruz","address":"12 Mabini St","contact_number":"0917-555-0000"}`,
		bearerToken(t, 7))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Shipping info saved")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentStub(t *testing.T) {
	e, _ := newCheckoutTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/checkout/payment", "", bearerToken(t, 7))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Payment set to COD by default")
}
