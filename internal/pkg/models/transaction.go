package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionState is the current position of a transaction in the
// preauthorization flow
type TransactionState string

const (
	StateInitiated                   TransactionState = "initiated"
	StatePreauthorized               TransactionState = "preauthorized"
	StatePaymentIntentRequiresAction TransactionState = "payment_intent_requires_action"
	StatePaid                        TransactionState = "paid"
	StateConfirmed                   TransactionState = "confirmed"
	StateRejected                    TransactionState = "rejected"
	StateDisputed                    TransactionState = "disputed"
)

// GatewayKind selects the payment gateway adapter for a transaction
type GatewayKind string

const (
	GatewayStripe    GatewayKind = "stripe"
	GatewayBraintree GatewayKind = "braintree"
)

// AvailabilityKind tells whether the listing behind a transaction needs a
// booking reservation
type AvailabilityKind string

const (
	AvailabilityNone    AvailabilityKind = "none"
	AvailabilityBooking AvailabilityKind = "booking"
)

// Transaction represents a marketplace transaction record
type Transaction struct {
	ID              uuid.UUID        `json:"id" db:"id"`
	CommunityID     uuid.UUID        `json:"community_id" db:"community_id"`
	CurrentState    TransactionState `json:"current_state" db:"current_state"`
	PaymentGateway  GatewayKind      `json:"payment_gateway" db:"payment_gateway"`
	Availability    AvailabilityKind `json:"availability" db:"availability"`
	ListingID       uuid.UUID        `json:"listing_id" db:"listing_id"`
	ListingAuthorID uuid.UUID        `json:"listing_author_id" db:"listing_author_id"`
	StarterID       uuid.UUID        `json:"starter_id" db:"starter_id"`
	Booking         *Booking         `json:"booking,omitempty" db:"-"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" db:"updated_at"`
}

// RequiresBooking reports whether the transaction carries a booking that must
// be reserved before the payment can be finalized
func (t *Transaction) RequiresBooking() bool {
	return t.Availability == AvailabilityBooking && t.Booking != nil
}

// Booking holds the time window reserved for a transaction. PerHour bookings
// are priced per hour and need no reservation; date-range bookings must be
// reserved through the availability service before preauthorization completes.
type Booking struct {
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"`
	StartTime     time.Time `json:"start_time" db:"start_time"`
	EndTime       time.Time `json:"end_time" db:"end_time"`
	PerHour       bool      `json:"per_hour" db:"per_hour"`
	ReservationID string    `json:"reservation_id" db:"reservation_id"`
	DatesInvalid  bool      `json:"dates_invalid" db:"dates_invalid"`
}

// TransactionResponse is the caller-facing projection returned by saga
// operations
type TransactionResponse struct {
	TransactionID  uuid.UUID        `json:"transaction_id"`
	CommunityID    uuid.UUID        `json:"community_id"`
	State          TransactionState `json:"state"`
	ListingID      uuid.UUID        `json:"listing_id"`
	ReservationID  string           `json:"reservation_id,omitempty"`
	RequiresAction bool             `json:"requires_action"`
}

// NewTransactionResponse builds the response projection from a transaction
func NewTransactionResponse(tx *Transaction) *TransactionResponse {
	resp := &TransactionResponse{
		TransactionID:  tx.ID,
		CommunityID:    tx.CommunityID,
		State:          tx.CurrentState,
		ListingID:      tx.ListingID,
		RequiresAction: tx.CurrentState == StatePaymentIntentRequiresAction,
	}
	if tx.Booking != nil {
		resp.ReservationID = tx.Booking.ReservationID
	}
	return resp
}

// OpOutcome is the payload of a successful saga operation: either the
// transaction projection (synchronous execution) or a process handle
// (asynchronous dispatch). Exactly one field is set.
type OpOutcome struct {
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Process     *ProcessHandle       `json:"process,omitempty"`
}
