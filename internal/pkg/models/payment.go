package models

import "encoding/json"

// GatewayFields carries the provider-specific payment parameters supplied by
// the caller when creating a payment (card token, payment method id, etc.)
type GatewayFields map[string]interface{}

// PaymentCreation is the outcome of a gateway createPayment call.
// SyncCompletion reports that the gateway finished the payment inline and the
// transaction can proceed to finalization immediately; otherwise completion
// arrives later through a webhook-driven trigger.
type PaymentCreation struct {
	SyncCompletion bool            `json:"sync_completion"`
	RequiresAction bool            `json:"requires_action"`
	Response       json.RawMessage `json:"response,omitempty"`
}
