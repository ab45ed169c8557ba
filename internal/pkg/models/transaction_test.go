package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_RequiresBooking(t *testing.T) {
	tx := &Transaction{Availability: AvailabilityBooking}
	assert.False(t, tx.RequiresBooking(), "booking availability without a booking record")

	tx.Booking = &Booking{}
	assert.True(t, tx.RequiresBooking())

	tx.Availability = AvailabilityNone
	assert.False(t, tx.RequiresBooking())
}

func TestNewTransactionResponse(t *testing.T) {
	tx := &Transaction{
		ID:           uuid.New(),
		CommunityID:  uuid.New(),
		CurrentState: StatePaymentIntentRequiresAction,
		ListingID:    uuid.New(),
		Booking:      &Booking{ReservationID: "res-1"},
	}

	resp := NewTransactionResponse(tx)

	assert.Equal(t, tx.ID, resp.TransactionID)
	assert.Equal(t, "res-1", resp.ReservationID)
	assert.True(t, resp.RequiresAction)

	tx.CurrentState = StatePreauthorized
	assert.False(t, NewTransactionResponse(tx).RequiresAction)
}

func TestWorkerJob_DedupKey(t *testing.T) {
	communityID := uuid.New()
	transactionID := uuid.New()

	a := &WorkerJob{Token: "t1", CommunityID: communityID, TransactionID: transactionID, Op: OpFinalizeCreate}
	b := &WorkerJob{Token: "t2", CommunityID: communityID, TransactionID: transactionID, Op: OpFinalizeCreate}
	c := &WorkerJob{Token: "t3", CommunityID: communityID, TransactionID: transactionID, Op: OpReject}

	// Tokens differ but the key identifies the work, not the dispatch
	assert.Equal(t, a.DedupKey(), b.DedupKey())
	assert.NotEqual(t, a.DedupKey(), c.DedupKey())
}
