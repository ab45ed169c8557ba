package preauth

import (
	"context"

	"github.com/tecodan/sharetribe/internal/pkg/models"
)

// PaymentGW is the per-provider payment gateway adapter. An adapter is
// resolved per transaction by its payment gateway kind.
type PaymentGW interface {
	// Kind identifies the provider this adapter serves
	Kind() models.GatewayKind

	// CreatePayment authorizes the payment. A nil error with
	// SyncCompletion=true means the gateway finished inline and finalization
	// may proceed immediately.
	CreatePayment(ctx context.Context, tx *models.Transaction, fields models.GatewayFields) (*models.PaymentCreation, error)

	// RejectPayment voids or refunds the payment with an optional reason
	RejectPayment(ctx context.Context, tx *models.Transaction, reason string) error

	// CompletePreauthorization captures the preauthorized amount
	CompletePreauthorization(ctx context.Context, tx *models.Transaction) error

	// VoidPayment cancels the preauthorization, releasing reserved funds
	VoidPayment(ctx context.Context, tx *models.Transaction, reason string) error

	// PaymentRequiresAction reports whether the latest payment attempt needs
	// additional customer action before it can settle
	PaymentRequiresAction(ctx context.Context, tx *models.Transaction) bool

	// RequiresSyncCleanup reports whether this provider's contract requires
	// deleting unconfirmed transaction rows synchronously on failure
	RequiresSyncCleanup() bool
}

// GatewayRegistry resolves the adapter for a transaction's gateway kind
type GatewayRegistry interface {
	Resolve(kind models.GatewayKind) (PaymentGW, error)
}

// ReservationGW is the availability service client. Reservation calls are
// retried with a bounded budget; failures come back as
// *models.ReservationError with a classified reason.
type ReservationGW interface {
	InitiateReservation(ctx context.Context, req *models.ReservationRequest) (*models.Reservation, error)
}

// WorkerGW is the background job boundary: enqueueing steps, tracking their
// process handles, and per-key de-duplication.
type WorkerGW interface {
	// Enqueue submits the job and returns its process handle immediately
	Enqueue(ctx context.Context, job *models.WorkerJob) (*models.ProcessHandle, error)

	// GetProcess returns the current handle for a token
	GetProcess(ctx context.Context, token string) (*models.ProcessHandle, error)

	// CompleteProcess stores the finished job's result payload
	CompleteProcess(ctx context.Context, token string, payload []byte) error

	// AcquireJobLock takes the per-key execution lock for a job; false means
	// another worker already holds it
	AcquireJobLock(ctx context.Context, job *models.WorkerJob) (bool, error)

	// ReleaseJobLock releases the per-key execution lock
	ReleaseJobLock(ctx context.Context, job *models.WorkerJob) error
}
