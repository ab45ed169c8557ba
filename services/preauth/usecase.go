package preauth

import (
	"context"

	"github.com/google/uuid"
	"github.com/tecodan/sharetribe/internal/pkg/models"
	"github.com/tecodan/sharetribe/internal/pkg/result"
)

// Mode selects where a saga step runs: inline on the caller's stack, or on
// the background worker pool
type Mode string

const (
	ModeSync  Mode = "sync"
	ModeAsync Mode = "async"
)

// PreauthUC defines the preauthorization saga operations. Every operation
// returns a Result holding either the transaction projection (sync) or a
// process handle (async dispatch).
type PreauthUC interface {
	// Create transitions the transaction to initiated synchronously, then
	// dispatches the gateway payment creation per mode.
	Create(ctx context.Context, tx *models.Transaction, fields models.GatewayFields, mode Mode) result.Result[models.OpOutcome]

	// FinalizeCreate completes the preauthorization: reserves the booking if
	// one is required, voiding the payment on reservation failure, then
	// transitions state. Idempotent when the transaction is already
	// preauthorized.
	FinalizeCreate(ctx context.Context, communityID, transactionID uuid.UUID, mode Mode) result.Result[models.OpOutcome]

	// Reject voids the payment through the gateway and transitions the
	// transaction to rejected, optionally delivering a message.
	Reject(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID, mode Mode) result.Result[models.OpOutcome]

	// CompletePreauthorization captures the preauthorized payment and
	// transitions the transaction to paid.
	CompletePreauthorization(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID, mode Mode) result.Result[models.OpOutcome]

	// Complete transitions the transaction to confirmed. No gateway call.
	Complete(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID, mode Mode) result.Result[models.OpOutcome]

	// Cancel transitions the transaction to disputed. No gateway call.
	Cancel(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID, mode Mode) result.Result[models.OpOutcome]

	// ExecuteJob runs a dequeued worker job through the same step logic as
	// the synchronous path.
	ExecuteJob(ctx context.Context, job *models.WorkerJob) result.Result[models.OpOutcome]

	// GetProcess returns the status of an asynchronously dispatched step.
	GetProcess(ctx context.Context, token string) (*models.ProcessHandle, error)
}
