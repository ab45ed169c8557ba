package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecodan/sharetribe/internal/pkg/models"
)

func setupTransactionRepoTest(t *testing.T) (*TransactionRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := &TransactionRepo{db: sqlxDB}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestGetInCommunity(t *testing.T) {
	communityID := uuid.New()
	transactionID := uuid.New()
	listingID := uuid.New()
	authorID := uuid.New()
	starterID := uuid.New()

	transactionColumns := []string{
		"id", "community_id", "current_state", "payment_gateway", "availability",
		"listing_id", "listing_author_id", "starter_id", "created_at", "updated_at",
	}

	t.Run("Success - No Booking", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		rows := sqlmock.NewRows(transactionColumns).
			AddRow(transactionID, communityID, "initiated", "stripe", "none",
				listingID, authorID, starterID, time.Now(), time.Now())
		mock.ExpectQuery("^\\s*SELECT (.+) FROM transactions").
			WithArgs(transactionID, communityID).
			WillReturnRows(rows)

		tx, err := repo.GetInCommunity(context.Background(), communityID, transactionID)

		require.NoError(t, err)
		assert.Equal(t, transactionID, tx.ID)
		assert.Equal(t, models.StateInitiated, tx.CurrentState)
		assert.Nil(t, tx.Booking)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - With Booking", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		txRows := sqlmock.NewRows(transactionColumns).
			AddRow(transactionID, communityID, "initiated", "braintree", "booking",
				listingID, authorID, starterID, time.Now(), time.Now())
		mock.ExpectQuery("^\\s*SELECT (.+) FROM transactions").
			WithArgs(transactionID, communityID).
			WillReturnRows(txRows)

		bookingRows := sqlmock.NewRows([]string{
			"transaction_id", "start_time", "end_time", "per_hour", "reservation_id", "dates_invalid",
		}).AddRow(transactionID, time.Now(), time.Now().Add(48*time.Hour), false, "res-1", false)
		mock.ExpectQuery("^\\s*SELECT (.+) FROM bookings").
			WithArgs(transactionID).
			WillReturnRows(bookingRows)

		tx, err := repo.GetInCommunity(context.Background(), communityID, transactionID)

		require.NoError(t, err)
		require.NotNil(t, tx.Booking)
		assert.Equal(t, "res-1", tx.Booking.ReservationID)
		assert.True(t, tx.RequiresBooking())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^\\s*SELECT (.+) FROM transactions").
			WithArgs(transactionID, communityID).
			WillReturnRows(sqlmock.NewRows(transactionColumns))

		_, err := repo.GetInCommunity(context.Background(), communityID, transactionID)

		assert.True(t, errors.Is(err, ErrTransactionNotFound))
	})
}

func TestTransitionState(t *testing.T) {
	communityID := uuid.New()
	transactionID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^\\s*UPDATE transactions").
			WithArgs("preauthorized", sqlmock.AnyArg(), transactionID, communityID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.TransitionState(context.Background(), communityID, transactionID, models.StatePreauthorized)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^\\s*UPDATE transactions").
			WithArgs("rejected", sqlmock.AnyArg(), transactionID, communityID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.TransitionState(context.Background(), communityID, transactionID, models.StateRejected)

		assert.True(t, errors.Is(err, ErrTransactionNotFound))
	})
}

func TestUpdateBookingReference(t *testing.T) {
	communityID := uuid.New()
	transactionID := uuid.New()

	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^\\s*UPDATE bookings").
		WithArgs("res-42", transactionID, communityID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateBookingReference(context.Background(), communityID, transactionID, "res-42")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteTransaction(t *testing.T) {
	communityID := uuid.New()
	transactionID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("^DELETE FROM bookings").
			WithArgs(transactionID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("^DELETE FROM transactions").
			WithArgs(transactionID, communityID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeleteTransaction(context.Background(), communityID, transactionID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found Rolls Back", func(t *testing.T) {
		repo, mock, cleanup := setupTransactionRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectExec("^DELETE FROM bookings").
			WithArgs(transactionID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("^DELETE FROM transactions").
			WithArgs(transactionID, communityID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.DeleteTransaction(context.Background(), communityID, transactionID)

		assert.True(t, errors.Is(err, ErrTransactionNotFound))
	})
}

func TestAddMessage(t *testing.T) {
	communityID := uuid.New()
	transactionID := uuid.New()
	senderID := uuid.New()

	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^\\s*INSERT INTO messages").
		WithArgs(sqlmock.AnyArg(), communityID, transactionID, senderID, "hello", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AddMessage(context.Background(), communityID, transactionID, "hello", senderID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkUnseenByOtherParty(t *testing.T) {
	communityID := uuid.New()
	transactionID := uuid.New()
	personID := uuid.New()

	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^\\s*UPDATE transaction_participations").
		WithArgs(transactionID, personID, communityID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkUnseenByOtherParty(context.Background(), communityID, transactionID, personID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
