package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tecodan/sharetribe/internal/pkg/models"
)

func stripeTransaction() *models.Transaction {
	return &models.Transaction{
		ID:             uuid.New(),
		CommunityID:    uuid.New(),
		PaymentGateway: models.GatewayStripe,
	}
}

func TestStripeGateway_CreatePayment(t *testing.T) {
	tx := stripeTransaction()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)

		var req stripeCreateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, tx.ID.String(), req.TransactionID)

		json.NewEncoder(w).Encode(stripeCreateResponse{
			SyncCompletion: true,
			RequiresAction: false,
		})
	}))
	defer server.Close()

	gw := NewStripeGateway(server.URL, 2*time.Second)
	creation, err := gw.CreatePayment(context.Background(), tx, models.GatewayFields{"payment_method": "pm_123"})

	require.NoError(t, err)
	assert.True(t, creation.SyncCompletion)
	assert.False(t, creation.RequiresAction)
}

func TestStripeGateway_CreatePaymentFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	gw := NewStripeGateway(server.URL, 2*time.Second)
	_, err := gw.CreatePayment(context.Background(), stripeTransaction(), nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stripe payment creation failed")
}

func TestStripeGateway_PaymentRequiresAction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]bool{"requires_action": true})
	}))
	defer server.Close()

	gw := NewStripeGateway(server.URL, 2*time.Second)
	assert.True(t, gw.PaymentRequiresAction(context.Background(), stripeTransaction()))
}

func TestStripeGateway_PaymentRequiresActionProbeFailureDefaultsFalse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gw := NewStripeGateway(server.URL, 1*time.Second)
	assert.False(t, gw.PaymentRequiresAction(context.Background(), stripeTransaction()))
}

func TestStripeGateway_CleanupContract(t *testing.T) {
	gw := NewStripeGateway("http://stripe-adapter", time.Second)
	bt := NewBraintreeGateway("http://braintree-adapter", time.Second)

	assert.True(t, gw.RequiresSyncCleanup())
	assert.False(t, bt.RequiresSyncCleanup())
	assert.Equal(t, models.GatewayStripe, gw.Kind())
	assert.Equal(t, models.GatewayBraintree, bt.Kind())
}

func TestBraintreeGateway_PaymentRequiresActionAlwaysFalse(t *testing.T) {
	bt := NewBraintreeGateway("http://braintree-adapter", time.Second)
	assert.False(t, bt.PaymentRequiresAction(context.Background(), stripeTransaction()))
}
