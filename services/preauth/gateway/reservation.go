package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	httpclient "github.com/tecodan/sharetribe/internal/pkg/http"
	"github.com/tecodan/sharetribe/internal/pkg/logger"
	"github.com/tecodan/sharetribe/internal/pkg/models"
	"github.com/tecodan/sharetribe/internal/pkg/retry"
	"github.com/tecodan/sharetribe/services/preauth"
)

// ReservationGW is the availability service HTTP client. Requests run with a
// bounded retry budget and failures are reclassified into caller-meaningful
// reasons, enriched with the listing identifier.
type ReservationGW struct {
	client  *httpclient.Client
	retrier *retry.Retrier
}

// statusError carries a non-2xx reservation response through the retry loop
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("reservation request failed: (status: %d, body: %s)", e.status, e.body)
}

// NewReservationGW creates a new availability service client
func NewReservationGW(cfg models.ReservationConfig) preauth.ReservationGW {
	retryConfig := retry.DefaultConfig()
	if cfg.MaxAttempts > 0 {
		retryConfig.MaxAttempts = cfg.MaxAttempts
	}
	retryConfig.RetryableFunc = func(err error) bool {
		// Conflicts are definitive; retrying a taken window cannot succeed.
		var se *statusError
		if errors.As(err, &se) {
			return se.status >= http.StatusInternalServerError
		}
		return true
	}

	return &ReservationGW{
		client:  httpclient.NewClient(cfg.URL, time.Duration(cfg.TimeoutSeconds)*time.Second),
		retrier: retry.New(retryConfig),
	}
}

// InitiateReservation reserves the booking window on behalf of the
// transaction's starter. The tenant and actor identifiers travel as the
// authorization context headers of the availability service.
func (g *ReservationGW) InitiateReservation(ctx context.Context, req *models.ReservationRequest) (*models.Reservation, error) {
	var reservation models.Reservation

	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		status, body, err := g.client.PostJSON(ctx, "/reservations", req)
		if err != nil {
			return err
		}
		if status != http.StatusOK && status != http.StatusCreated {
			return &statusError{status: status, body: string(body)}
		}

		if err := json.Unmarshal(body, &reservation); err != nil {
			return fmt.Errorf("failed to parse reservation response: %w", err)
		}
		return nil
	})
	if err != nil {
		resErr := classify(err, req.ListingID)
		logger.Error("Reservation failed",
			logger.String("listing_id", req.ListingID.String()),
			logger.String("reason", string(resErr.Reason)),
			logger.Err(err))
		return nil, resErr
	}

	return &reservation, nil
}

// classify reclassifies a raw reservation failure: transport failures become
// connection_issue, conflict responses become double_booking, anything else
// passes through unchanged
func classify(err error, listingID uuid.UUID) *models.ReservationError {
	reason := models.ReservationOther

	var se *statusError
	switch {
	case errors.As(err, &se):
		if se.status == http.StatusConflict {
			reason = models.ReservationDoubleBooking
		}
	default:
		reason = models.ReservationConnectionIssue
	}

	return &models.ReservationError{
		Reason:    reason,
		ListingID: listingID,
		Cause:     err,
	}
}
