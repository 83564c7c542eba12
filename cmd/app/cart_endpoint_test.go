package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dewey-byte/angular-project/internal/middleware"
	"github.com/Dewey-byte/angular-project/internal/repository"
	"github.com/Dewey-byte/angular-project/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartTestServer(t *testing.T) (*echo.Echo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	cs := services.NewCartService(
		repository.NewCartRepository(mock),
		repository.NewProductRepository(mock),
	)

	e := echo.New()
	e.Validator = newRequestValidator()
	registerCartRoutes(e.Group("/api"), cs)
	return e, mock
}

func bearerToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := middleware.GenerateToken(userID, "shopper", "user", 1)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(e *echo.Echo, method, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if auth != "" {
		req.Header.Set(echo.HeaderAuthorization, auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCartRequiresAuth(t *testing.T) {
	e, _ := newCartTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/cart", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Adding the same product twice merges onto one line instead of creating a
// second one.
func TestCartAddTwiceMergesLine(t *testing.T) {
	e, mock := newCartTestServer(t)
	auth := bearerToken(t, 7)

	existsRows := func() *pgxmock.Rows {
		return pgxmock.NewRows([]string{"exists"}).AddRow(true)
	}
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(42)).WillReturnRows(existsRows())
	mock.ExpectExec(`INSERT INTO cart`).WithArgs(int64(7), int64(42), 3).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(42)).WillReturnRows(existsRows())
	mock.ExpectExec(`INSERT INTO cart`).WithArgs(int64(7), int64(42), 2).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(`SELECT c.cart_id`).WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"cart_id", "product_id", "product_name", "price", "quantity", "image_uri"}).
			AddRow(int64(1), int64(42), "notebook", 4.00, 5, ""))

	rec := doJSON(e, http.MethodPost, "/api/cart/add", `{"product_id":42,"quantity":3}`, auth)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/cart/add", `{"product_id":42,"quantity":2}`, auth)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/cart", "", auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity":5`)
	assert.Contains(t, rec.Body.String(), `"cart_total":20`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A zero quantity never reaches the database.
func TestCartUpdateRejectsZeroQuantity(t *testing.T) {
	e, mock := newCartTestServer(t)

	rec := doJSON(e, http.MethodPut, "/api/cart/update/1", `{"quantity":0}`, bearerToken(t, 7))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid quantity")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartUpdateMissingLine(t *testing.T) {
	e, mock := newCartTestServer(t)
	mock.ExpectExec(`UPDATE cart SET quantity`).WithArgs(4, int64(77)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	rec := doJSON(e, http.MethodPut, "/api/cart/update/77", `{"quantity":4}`, bearerToken(t, 7))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRemove(t *testing.T) {
	e, mock := newCartTestServer(t)
	mock.ExpectExec(`DELETE FROM cart WHERE cart_id`).WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	rec := doJSON(e, http.MethodDelete, "/api/cart/remove/3", "", bearerToken(t, 7))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item removed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartAddUnknownProduct(t *testing.T) {
	e, mock := newCartTestServer(t)
	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(int64(999)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	rec := doJSON(e, http.MethodPost, "/api/cart/add", `{"product_id":999}`, bearerToken(t, 7))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
