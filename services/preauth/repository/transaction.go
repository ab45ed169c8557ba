package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tecodan/sharetribe/internal/pkg/models"
)

// ErrTransactionNotFound is returned when no transaction matches the
// community/transaction id pair
var ErrTransactionNotFound = errors.New("transaction not found")

// GetInCommunity retrieves a transaction scoped to its community, including
// its booking record when one exists
func (r *TransactionRepo) GetInCommunity(ctx context.Context, communityID, transactionID uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, community_id, current_state, payment_gateway, availability,
			listing_id, listing_author_id, starter_id, created_at, updated_at
		FROM transactions
		WHERE id = $1 AND community_id = $2
	`

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, transactionID, communityID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if tx.Availability == models.AvailabilityBooking {
		booking, err := r.getBooking(ctx, transactionID)
		if err != nil {
			return nil, err
		}
		tx.Booking = booking
	}

	return &tx, nil
}

// getBooking loads the booking row for a transaction; nil when none exists
func (r *TransactionRepo) getBooking(ctx context.Context, transactionID uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT transaction_id, start_time, end_time, per_hour, reservation_id, dates_invalid
		FROM bookings
		WHERE transaction_id = $1
	`

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// TransitionState writes the new state. The single-field update is atomic on
// the store side; no row lock is taken.
func (r *TransactionRepo) TransitionState(ctx context.Context, communityID, transactionID uuid.UUID, state models.TransactionState) error {
	query := `
		UPDATE transactions
		SET current_state = $1, updated_at = $2
		WHERE id = $3 AND community_id = $4
	`

	res, err := r.db.ExecContext(ctx, query, state, time.Now(), transactionID, communityID)
	if err != nil {
		return fmt.Errorf("failed to transition transaction state: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// UpdateBookingReference persists the reservation id returned by the
// availability service onto the transaction's booking
func (r *TransactionRepo) UpdateBookingReference(ctx context.Context, communityID, transactionID uuid.UUID, reservationID string) error {
	query := `
		UPDATE bookings
		SET reservation_id = $1
		WHERE transaction_id = $2
			AND EXISTS (
				SELECT 1 FROM transactions
				WHERE id = $2 AND community_id = $3
			)
	`

	res, err := r.db.ExecContext(ctx, query, reservationID, transactionID, communityID)
	if err != nil {
		return fmt.Errorf("failed to update booking reference: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// MarkUnseenByOtherParty flags the transaction unread for the given person
func (r *TransactionRepo) MarkUnseenByOtherParty(ctx context.Context, communityID, transactionID, personID uuid.UUID) error {
	query := `
		UPDATE transaction_participations
		SET is_read = false
		WHERE transaction_id = $1 AND person_id = $2
			AND EXISTS (
				SELECT 1 FROM transactions
				WHERE id = $1 AND community_id = $3
			)
	`

	if _, err := r.db.ExecContext(ctx, query, transactionID, personID, communityID); err != nil {
		return fmt.Errorf("failed to mark transaction unseen: %w", err)
	}

	return nil
}

// DeleteTransaction removes a failed transaction and its dependent rows
func (r *TransactionRepo) DeleteTransaction(ctx context.Context, communityID, transactionID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE transaction_id = $1`, transactionID); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM transactions WHERE id = $1 AND community_id = $2`,
		transactionID, communityID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return ErrTransactionNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// AddMessage appends a message from the sender to the transaction thread
func (r *TransactionRepo) AddMessage(ctx context.Context, communityID, transactionID uuid.UUID, content string, senderID uuid.UUID) error {
	query := `
		INSERT INTO messages (id, community_id, transaction_id, sender_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if _, err := r.db.ExecContext(ctx, query, uuid.New(), communityID, transactionID, senderID, content, time.Now()); err != nil {
		return fmt.Errorf("failed to add message: %w", err)
	}

	return nil
}
