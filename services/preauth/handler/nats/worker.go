package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/tecodan/sharetribe/internal/pkg/logger"
	"github.com/tecodan/sharetribe/internal/pkg/models"
)

// jobOutcome is the payload stored on a process handle once its job finishes
type jobOutcome struct {
	Success     bool                        `json:"success"`
	Transaction *models.TransactionResponse `json:"transaction,omitempty"`
	Error       string                      `json:"error,omitempty"`
	Details     map[string]interface{}      `json:"details,omitempty"`
}

// handleJobMessage executes a dequeued worker job. The per-key lock guarantees
// that no two jobs for the same (community, transaction, op) run concurrently;
// a job that cannot take the lock is dropped and its handle stays pending
// until the NATS redelivery or the caller retries.
func (h *Handler) handleJobMessage(msg []byte) error {
	var job models.WorkerJob
	if err := json.Unmarshal(msg, &job); err != nil {
		return fmt.Errorf("failed to unmarshal worker job: %w", err)
	}

	ctx := context.Background()

	acquired, err := h.workerGW.AcquireJobLock(ctx, &job)
	if err != nil {
		return fmt.Errorf("failed to acquire job lock: %w", err)
	}
	if !acquired {
		logger.Warn("Skipping worker job, duplicate in flight",
			logger.String("op", job.Op),
			logger.String("transaction_id", job.TransactionID.String()))
		return nil
	}
	defer func() {
		if err := h.workerGW.ReleaseJobLock(ctx, &job); err != nil {
			logger.Error("Failed to release job lock",
				logger.String("op", job.Op),
				logger.Err(err))
		}
	}()

	outcome := h.runJob(ctx, &job)

	payload, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal job outcome: %w", err)
	}
	if err := h.workerGW.CompleteProcess(ctx, job.Token, payload); err != nil {
		return fmt.Errorf("failed to complete process: %w", err)
	}

	return nil
}

// runJob executes the job through the usecase and converts the result into a
// storable outcome. State guard violations surface as panics and are recorded
// as failures here, mirroring the recovery middleware on the HTTP path.
func (h *Handler) runJob(ctx context.Context, job *models.WorkerJob) (outcome *jobOutcome) {
	defer func() {
		if r := recover(); r != nil {
			if stateErr, ok := r.(*models.IllegalStateError); ok {
				logger.Warn("Worker job rejected by state guard",
					logger.String("op", job.Op),
					logger.String("transaction_id", job.TransactionID.String()),
					logger.String("actual_state", string(stateErr.Actual)))
				outcome = &jobOutcome{Success: false, Error: stateErr.Error()}
				return
			}
			logger.Error("Panic in worker job",
				logger.String("op", job.Op),
				logger.String("transaction_id", job.TransactionID.String()),
				logger.Any("panic", r),
				logger.String("stack", string(debug.Stack())))
			outcome = &jobOutcome{Success: false, Error: "internal error"}
		}
	}()

	res := h.preauthUC.ExecuteJob(ctx, job)
	if res.IsErr() {
		opErr := res.Err()
		return &jobOutcome{
			Success: false,
			Error:   opErr.Message,
			Details: opErr.Data,
		}
	}

	return &jobOutcome{
		Success:     true,
		Transaction: res.Value().Transaction,
	}
}
