package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReservationReason classifies a reservation failure into a caller-meaningful
// cause
type ReservationReason string

const (
	ReservationConnectionIssue ReservationReason = "connection_issue"
	ReservationDoubleBooking   ReservationReason = "double_booking"
	ReservationOther           ReservationReason = "other"
)

// ReservationRequest asks the availability service to reserve a booking
// window on behalf of a community member
type ReservationRequest struct {
	MarketplaceID uuid.UUID `json:"marketplace_id"`
	ActorID       uuid.UUID `json:"actor_id"`
	ListingID     uuid.UUID `json:"listing_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	InitialStatus string    `json:"initial_status"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}

// Reservation is the availability service's record of a reserved window
type Reservation struct {
	ID        string    `json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// ReservationError is a reclassified reservation failure, enriched with the
// listing identifier for observability
type ReservationError struct {
	Reason    ReservationReason
	ListingID uuid.UUID
	Cause     error
}

func (e *ReservationError) Error() string {
	return fmt.Sprintf("reservation failed (reason: %s, listing: %s): %v", e.Reason, e.ListingID, e.Cause)
}

func (e *ReservationError) Unwrap() error {
	return e.Cause
}
