package repository_test

import (
	"context"
	"testing"
	"tripseat/infras/otel/mocks"
	"tripseat/infras/postgres"
	"tripseat/internal/domains/booking/model"
	"tripseat/internal/domains/booking/repository"
	"tripseat/shared"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (repository.Booking, *postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.New(conn, mocks.NewOtel()), conn, mock
}

func TestBookingRepository_GetByToken(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectPrepare(`FROM bookings\s+WHERE \(bookings\.payment_token = \$1\)`).
		ExpectQuery().
		WithArgs("tok-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "payment_token", "status"}).
			AddRow("b-1", "tok-1", model.StatusDepositPaid))

	booking, err := repo.GetByToken(context.Background(), "tok-1")

	require.NoError(t, err)
	assert.Equal(t, "b-1", booking.ID)
	assert.Equal(t, model.StatusDepositPaid, booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetForUpdateLocksRow(t *testing.T) {
	repo, conn, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(`FROM bookings\s+WHERE \(bookings\.id = \$1\)\s+FOR UPDATE`).
		ExpectQuery().
		WithArgs("b-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "participants_count"}).
			AddRow("b-1", model.StatusCreated, 3))
	mock.ExpectCommit()

	err := conn.WithTx(context.Background(), func(ctx context.Context) error {
		booking, err := repo.GetForUpdate(ctx, shared.FilterByID("b-1", model.FieldID, model.TableName))
		assert.Equal(t, 3, booking.ParticipantsCount)

		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_DeleteTouchesOnlyBookings(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM bookings\s+WHERE \(bookings\.id = \$1\)`).
		WithArgs("b-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), shared.FilterByID("b-1", model.FieldID, model.TableName))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
