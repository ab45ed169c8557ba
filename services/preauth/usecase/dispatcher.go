package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/tecodan/sharetribe/internal/pkg/logger"
	"github.com/tecodan/sharetribe/internal/pkg/models"
	"github.com/tecodan/sharetribe/internal/pkg/result"
	"github.com/tecodan/sharetribe/services/preauth"
)

// step is a saga step ready for dispatch: the captured inputs for the worker
// envelope plus the function that actually runs it. Dispatch only changes
// where fn runs, never what it does.
type step struct {
	communityID   uuid.UUID
	transactionID uuid.UUID
	op            string
	input         interface{}
	fn            func(ctx context.Context) result.Result[models.OpOutcome]
}

// dispatch executes the step inline for ModeSync, or hands it to the
// background worker and returns a process handle for ModeAsync
func (uc *PreauthUC) dispatch(ctx context.Context, st step, mode preauth.Mode) result.Result[models.OpOutcome] {
	if mode != preauth.ModeAsync {
		return st.fn(ctx)
	}

	var input json.RawMessage
	if st.input != nil {
		data, err := json.Marshal(st.input)
		if err != nil {
			return result.Errf[models.OpOutcome]("failed to encode %s job input: %v", st.op, err)
		}
		input = data
	}

	job := &models.WorkerJob{
		CommunityID:   st.communityID,
		TransactionID: st.transactionID,
		Op:            st.op,
		Input:         input,
	}

	handle, err := uc.workerGW.Enqueue(ctx, job)
	if err != nil {
		return result.Err[models.OpOutcome](
			fmt.Sprintf("failed to enqueue %s: %v", st.op, err),
			map[string]any{"transaction_id": st.transactionID.String(), "op": st.op},
		)
	}

	logger.Info("Dispatched step to worker",
		logger.String("op", st.op),
		logger.String("transaction_id", st.transactionID.String()),
		logger.String("token", handle.Token))

	return result.Ok(models.OpOutcome{Process: handle})
}

// ExecuteJob runs a dequeued worker job through the same step functions as
// the synchronous path
func (uc *PreauthUC) ExecuteJob(ctx context.Context, job *models.WorkerJob) result.Result[models.OpOutcome] {
	switch job.Op {
	case models.OpCreate:
		var input models.CreateJobInput
		if err := json.Unmarshal(job.Input, &input); err != nil {
			return result.Errf[models.OpOutcome]("failed to decode create job input: %v", err)
		}
		return uc.doCreate(ctx, job.CommunityID, job.TransactionID, input.GatewayFields)

	case models.OpFinalizeCreate:
		return uc.doFinalizeCreate(ctx, job.CommunityID, job.TransactionID)

	case models.OpReject, models.OpCompletePreauthorization, models.OpComplete, models.OpCancel:
		var input models.TerminalJobInput
		if len(job.Input) > 0 {
			if err := json.Unmarshal(job.Input, &input); err != nil {
				return result.Errf[models.OpOutcome]("failed to decode %s job input: %v", job.Op, err)
			}
		}
		switch job.Op {
		case models.OpReject:
			return uc.doReject(ctx, job.CommunityID, job.TransactionID, input.Message, input.SenderID)
		case models.OpCompletePreauthorization:
			return uc.doCompletePreauthorization(ctx, job.CommunityID, job.TransactionID, input.Message, input.SenderID)
		case models.OpComplete:
			return uc.doComplete(ctx, job.CommunityID, job.TransactionID, input.Message, input.SenderID)
		default:
			return uc.doCancel(ctx, job.CommunityID, job.TransactionID, input.Message, input.SenderID)
		}

	default:
		return result.Errf[models.OpOutcome]("unknown worker op: %s", job.Op)
	}
}

// GetProcess returns the status of an asynchronously dispatched step
func (uc *PreauthUC) GetProcess(ctx context.Context, token string) (*models.ProcessHandle, error) {
	handle, err := uc.workerGW.GetProcess(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to get process %s: %w", token, err)
	}
	return handle, nil
}
