package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tecodan/sharetribe/internal/pkg/models"
)

func reservationConfig(url string) models.ReservationConfig {
	return models.ReservationConfig{
		URL:            url,
		TimeoutSeconds: 2,
		MaxAttempts:    3,
	}
}

func newReservationRequest() *models.ReservationRequest {
	return &models.ReservationRequest{
		MarketplaceID: uuid.New(),
		ActorID:       uuid.New(),
		ListingID:     uuid.New(),
		CustomerID:    uuid.New(),
		InitialStatus: "preauthorized",
		StartTime:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
	}
}

func TestReservationGW_SuccessReturnsReservation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reservations", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req models.ReservationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Reservation{
			ID:        "res-1",
			ListingID: req.ListingID,
			Status:    "preauthorized",
		})
	}))
	defer server.Close()

	gw := NewReservationGW(reservationConfig(server.URL))
	reservation, err := gw.InitiateReservation(context.Background(), newReservationRequest())

	require.NoError(t, err)
	assert.Equal(t, "res-1", reservation.ID)
}

func TestReservationGW_ConflictIsDoubleBookingAndNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	req := newReservationRequest()
	gw := NewReservationGW(reservationConfig(server.URL))
	_, err := gw.InitiateReservation(context.Background(), req)

	require.Error(t, err)
	var resErr *models.ReservationError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, models.ReservationDoubleBooking, resErr.Reason)
	assert.Equal(t, req.ListingID, resErr.ListingID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestReservationGW_ServerErrorRetriesThenSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(models.Reservation{ID: "res-2"})
	}))
	defer server.Close()

	gw := NewReservationGW(reservationConfig(server.URL))
	reservation, err := gw.InitiateReservation(context.Background(), newReservationRequest())

	require.NoError(t, err)
	assert.Equal(t, "res-2", reservation.ID)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestReservationGW_ExhaustedRetriesClassifiedOther(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gw := NewReservationGW(reservationConfig(server.URL))
	_, err := gw.InitiateReservation(context.Background(), newReservationRequest())

	require.Error(t, err)
	var resErr *models.ReservationError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, models.ReservationOther, resErr.Reason)
}

func TestReservationGW_TransportFailureIsConnectionIssue(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	gw := NewReservationGW(reservationConfig(server.URL))
	_, err := gw.InitiateReservation(context.Background(), newReservationRequest())

	require.Error(t, err)
	var resErr *models.ReservationError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, models.ReservationConnectionIssue, resErr.Reason)
}
