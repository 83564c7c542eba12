package repository

import (
	"context"
	"testing"

	"github.com/Dewey-byte/angular-project/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryRepo(t *testing.T) (*InventoryRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewInventoryRepository(mock), mock
}

func TestInventoryRecord(t *testing.T) {
	repo, mock := newInventoryRepo(t)
	mock.ExpectQuery(`INSERT INTO inventory_log`).
		WillReturnRows(pgxmock.NewRows([]string{"log_id"}).AddRow(int64(5)))

	id, err := repo.Record(context.Background(), 3, model.ChangeAdd, 10, "initial stock")

	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryRecordTx(t *testing.T) {
	repo, mock := newInventoryRepo(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO inventory_log`).
		WillReturnRows(pgxmock.NewRows([]string{"log_id"}).AddRow(int64(6)))
	mock.ExpectCommit()

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	id, err := repo.RecordTx(context.Background(), tx, 3, model.ChangeRemove, 2, "damaged stock")
	require.NoError(t, err)
	assert.Equal(t, int64(6), id)

	require.NoError(t, tx.Commit(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryGetByIDMissing(t *testing.T) {
	repo, mock := newInventoryRepo(t)
	mock.ExpectQuery(`SELECT log_id`).WithArgs(int64(404)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
