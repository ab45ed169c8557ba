package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tecodan/sharetribe/internal/pkg/circuitbreaker"
	httpclient "github.com/tecodan/sharetribe/internal/pkg/http"
	"github.com/tecodan/sharetribe/internal/pkg/logger"
	"github.com/tecodan/sharetribe/internal/pkg/models"
)

// StripeGateway talks to the Stripe adapter service. Stripe payment intents
// may need additional customer action before they settle, and Stripe's
// contract requires deleting unconfirmed transaction rows synchronously on
// failure. Transport failures trip a circuit breaker; adapter-level rejections
// pass through as regular errors.
type StripeGateway struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewStripeGateway creates a new Stripe gateway adapter
func NewStripeGateway(baseURL string, timeout time.Duration) *StripeGateway {
	return &StripeGateway{
		client:  httpclient.NewClient(baseURL, timeout),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("stripe-adapter")),
	}
}

// Kind identifies the provider this adapter serves
func (g *StripeGateway) Kind() models.GatewayKind {
	return models.GatewayStripe
}

type stripeCreateRequest struct {
	TransactionID string               `json:"transaction_id"`
	CommunityID   string               `json:"community_id"`
	Fields        models.GatewayFields `json:"fields"`
}

type stripeCreateResponse struct {
	SyncCompletion bool            `json:"sync_completion"`
	RequiresAction bool            `json:"requires_action"`
	Intent         json.RawMessage `json:"intent,omitempty"`
}

// CreatePayment creates a payment intent for the transaction
func (g *StripeGateway) CreatePayment(ctx context.Context, tx *models.Transaction, fields models.GatewayFields) (*models.PaymentCreation, error) {
	req := stripeCreateRequest{
		TransactionID: tx.ID.String(),
		CommunityID:   tx.CommunityID.String(),
		Fields:        fields,
	}

	status, body, err := g.postJSON(ctx, "/payments", req)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe payment: %w", err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, fmt.Errorf("stripe payment creation failed: (status: %d, body: %s)", status, string(body))
	}

	var resp stripeCreateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse stripe payment response: %w", err)
	}

	return &models.PaymentCreation{
		SyncCompletion: resp.SyncCompletion,
		RequiresAction: resp.RequiresAction,
		Response:       resp.Intent,
	}, nil
}

// RejectPayment cancels the payment intent with an optional reason
func (g *StripeGateway) RejectPayment(ctx context.Context, tx *models.Transaction, reason string) error {
	return g.post(ctx, fmt.Sprintf("/payments/%s/reject", tx.ID), map[string]string{"reason": reason})
}

// CompletePreauthorization captures the preauthorized amount
func (g *StripeGateway) CompletePreauthorization(ctx context.Context, tx *models.Transaction) error {
	return g.post(ctx, fmt.Sprintf("/payments/%s/capture", tx.ID), nil)
}

// VoidPayment cancels the preauthorization, releasing reserved funds
func (g *StripeGateway) VoidPayment(ctx context.Context, tx *models.Transaction, reason string) error {
	return g.post(ctx, fmt.Sprintf("/payments/%s/void", tx.ID), map[string]string{"reason": reason})
}

// PaymentRequiresAction checks whether the latest payment intent is waiting
// for additional customer action. Probe failures are advisory only: the
// payment is already authorized, so a failed probe falls back to no action
// required.
func (g *StripeGateway) PaymentRequiresAction(ctx context.Context, tx *models.Transaction) bool {
	var resp struct {
		RequiresAction bool `json:"requires_action"`
	}
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.GetJSON(ctx, fmt.Sprintf("/payments/%s/intent", tx.ID), &resp)
	})
	if err != nil {
		logger.Warn("Failed to check stripe intent status",
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err))
		return false
	}
	return resp.RequiresAction
}

// RequiresSyncCleanup reports that stripe transactions must be deleted
// synchronously on failure
func (g *StripeGateway) RequiresSyncCleanup() bool {
	return true
}

func (g *StripeGateway) post(ctx context.Context, path string, payload interface{}) error {
	status, body, err := g.postJSON(ctx, path, payload)
	if err != nil {
		return fmt.Errorf("stripe request failed: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("stripe request failed: (status: %d, body: %s)", status, string(body))
	}
	return nil
}

// postJSON runs the request under the circuit breaker. Only transport errors
// count as breaker failures; non-2xx responses reach the caller as statuses.
func (g *StripeGateway) postJSON(ctx context.Context, path string, payload interface{}) (int, []byte, error) {
	var (
		status int
		body   []byte
	)
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var callErr error
		status, body, callErr = g.client.PostJSON(ctx, path, payload)
		return callErr
	})
	return status, body, err
}
