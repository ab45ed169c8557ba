package payment

import (
	"fmt"

	"github.com/tecodan/sharetribe/internal/pkg/models"
	"github.com/tecodan/sharetribe/services/preauth"
)

// Registry resolves payment gateway adapters by kind
type Registry struct {
	adapters map[models.GatewayKind]preauth.PaymentGW
}

// NewRegistry creates a registry over the given adapters
func NewRegistry(adapters ...preauth.PaymentGW) *Registry {
	m := make(map[models.GatewayKind]preauth.PaymentGW, len(adapters))
	for _, adapter := range adapters {
		m[adapter.Kind()] = adapter
	}
	return &Registry{adapters: m}
}

// Resolve returns the adapter for the given gateway kind
func (r *Registry) Resolve(kind models.GatewayKind) (preauth.PaymentGW, error) {
	adapter, ok := r.adapters[kind]
	if !ok {
		return nil, fmt.Errorf("no payment gateway adapter registered for %q", kind)
	}
	return adapter, nil
}
