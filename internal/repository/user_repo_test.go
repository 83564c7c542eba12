package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepo(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock), mock
}

// A user with no row yields an empty snapshot, not an error: review must
// work before shipping has ever been entered.
func TestGetShippingMissingUser(t *testing.T) {
	repo, mock := newUserRepo(t)
	mock.ExpectQuery(`SELECT COALESCE`).WithArgs(int64(7)).
		WillReturnError(pgx.ErrNoRows)

	info, err := repo.GetShipping(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "", info.FullName)
	assert.Equal(t, "", info.Address)
	assert.Equal(t, "", info.ContactNumber)
}

func TestGetShipping(t *testing.T) {
	repo, mock := newUserRepo(t)
	mock.ExpectQuery(`SELECT COALESCE`).WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"full_name", "address", "contact_number"}).
			AddRow("Ana Cruz", "12 Mabini St", "0917-555-0000"))

	info, err := repo.GetShipping(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Ana Cruz", info.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateShippingMissingUser(t *testing.T) {
	repo, mock := newUserRepo(t)
	mock.ExpectExec(`UPDATE users SET full_name`).
		WithArgs("Ana Cruz", "12 Mabini St", "0917-555-0000", int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateShipping(context.Background(), 99, "Ana Cruz", "12 Mabini St", "0917-555-0000")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
