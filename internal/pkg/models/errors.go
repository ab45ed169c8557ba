package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Error reason values attached to saga error results under the "reason" key
const (
	ReasonGatewayError        = "gateway_error"
	ReasonBookingDatesInvalid = "booking_dates_invalid"
)

// IllegalStateError signals that a saga step was invoked while the
// transaction was not in one of its allowed states. It indicates caller or
// programmer misuse, not a business outcome: it is raised (panicked) rather
// than returned as a result, and is never retried.
type IllegalStateError struct {
	Op            string
	TransactionID uuid.UUID
	Actual        TransactionState
	Allowed       []TransactionState
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("operation %s not allowed for transaction %s: state is %s, expected one of %v",
		e.Op, e.TransactionID, e.Actual, e.Allowed)
}
