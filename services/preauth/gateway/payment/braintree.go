package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tecodan/sharetribe/internal/pkg/circuitbreaker"
	httpclient "github.com/tecodan/sharetribe/internal/pkg/http"
	"github.com/tecodan/sharetribe/internal/pkg/models"
)

// BraintreeGateway talks to the Braintree adapter service. Braintree
// authorizations settle without extra customer action, and failed
// transactions are left for expiry rather than deleted.
type BraintreeGateway struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewBraintreeGateway creates a new Braintree gateway adapter
func NewBraintreeGateway(baseURL string, timeout time.Duration) *BraintreeGateway {
	return &BraintreeGateway{
		client:  httpclient.NewClient(baseURL, timeout),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("braintree-adapter")),
	}
}

// Kind identifies the provider this adapter serves
func (g *BraintreeGateway) Kind() models.GatewayKind {
	return models.GatewayBraintree
}

// CreatePayment authorizes the payment on the customer's instrument
func (g *BraintreeGateway) CreatePayment(ctx context.Context, tx *models.Transaction, fields models.GatewayFields) (*models.PaymentCreation, error) {
	req := map[string]interface{}{
		"transaction_id": tx.ID.String(),
		"community_id":   tx.CommunityID.String(),
		"fields":         fields,
	}

	status, body, err := g.postJSON(ctx, "/transactions", req)
	if err != nil {
		return nil, fmt.Errorf("failed to create braintree payment: %w", err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, fmt.Errorf("braintree payment creation failed: (status: %d, body: %s)", status, string(body))
	}

	var resp struct {
		SyncCompletion bool            `json:"sync_completion"`
		Authorization  json.RawMessage `json:"authorization,omitempty"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse braintree payment response: %w", err)
	}

	return &models.PaymentCreation{
		SyncCompletion: resp.SyncCompletion,
		Response:       resp.Authorization,
	}, nil
}

// RejectPayment voids the authorization with an optional reason
func (g *BraintreeGateway) RejectPayment(ctx context.Context, tx *models.Transaction, reason string) error {
	return g.post(ctx, fmt.Sprintf("/transactions/%s/void", tx.ID), map[string]string{"reason": reason})
}

// CompletePreauthorization submits the authorization for settlement
func (g *BraintreeGateway) CompletePreauthorization(ctx context.Context, tx *models.Transaction) error {
	return g.post(ctx, fmt.Sprintf("/transactions/%s/settle", tx.ID), nil)
}

// VoidPayment voids the authorization, releasing reserved funds
func (g *BraintreeGateway) VoidPayment(ctx context.Context, tx *models.Transaction, reason string) error {
	return g.post(ctx, fmt.Sprintf("/transactions/%s/void", tx.ID), map[string]string{"reason": reason})
}

// PaymentRequiresAction always reports false: braintree authorizations never
// need additional customer action
func (g *BraintreeGateway) PaymentRequiresAction(ctx context.Context, tx *models.Transaction) bool {
	return false
}

// RequiresSyncCleanup reports that failed braintree transactions are left
// for expiry
func (g *BraintreeGateway) RequiresSyncCleanup() bool {
	return false
}

func (g *BraintreeGateway) post(ctx context.Context, path string, payload interface{}) error {
	status, body, err := g.postJSON(ctx, path, payload)
	if err != nil {
		return fmt.Errorf("braintree request failed: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("braintree request failed: (status: %d, body: %s)", status, string(body))
	}
	return nil
}

// postJSON runs the request under the circuit breaker. Only transport errors
// count as breaker failures; non-2xx responses reach the caller as statuses.
func (g *BraintreeGateway) postJSON(ctx context.Context, path string, payload interface{}) (int, []byte, error) {
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
