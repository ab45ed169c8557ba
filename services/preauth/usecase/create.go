package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tecodan/sharetribe/internal/pkg/logger"
	"github.com/tecodan/sharetribe/internal/pkg/models"
	"github.com/tecodan/sharetribe/internal/pkg/result"
	"github.com/tecodan/sharetribe/services/preauth"
)

// Create starts the preauthorization workflow. The transaction is moved to
// initiated synchronously, before any gateway call, so the state store
// reflects intent even if the process crashes next. The actual gateway call
// is then dispatched per mode.
func (uc *PreauthUC) Create(ctx context.Context, tx *models.Transaction, fields models.GatewayFields, mode preauth.Mode) result.Result[models.OpOutcome] {
	if err := uc.repo.TransitionState(ctx, tx.CommunityID, tx.ID, models.StateInitiated); err != nil {
		return result.Err[models.OpOutcome](
			fmt.Sprintf("failed to initiate transaction: %v", err),
			map[string]any{"transaction_id": tx.ID.String()},
		)
	}
	tx.CurrentState = models.StateInitiated

	return uc.dispatch(ctx, step{
		communityID:   tx.CommunityID,
		transactionID: tx.ID,
		op:            models.OpCreate,
		input:         models.CreateJobInput{GatewayFields: fields},
		fn: func(ctx context.Context) result.Result[models.OpOutcome] {
			return uc.doCreate(ctx, tx.CommunityID, tx.ID, fields)
		},
	}, mode)
}

// doCreate invokes the gateway's payment creation. Three outcomes: the
// gateway finished inline and finalization runs immediately; the gateway left
// completion pending (webhook-driven) and the response is returned as-is; or
// the gateway failed and the failed transaction is cleaned up.
func (uc *PreauthUC) doCreate(ctx context.Context, communityID, transactionID uuid.UUID, fields models.GatewayFields) result.Result[models.OpOutcome] {
	tx, err := uc.repo.GetInCommunity(ctx, communityID, transactionID)
	if err != nil {
		return result.Err[models.OpOutcome](
			fmt.Sprintf("failed to load transaction: %v", err),
			map[string]any{"transaction_id": transactionID.String()},
		)
	}

	adapter, err := uc.gateways.Resolve(tx.PaymentGateway)
	if err != nil {
		return result.FromError[models.OpOutcome](err, map[string]any{"transaction_id": tx.ID.String()})
	}

	creation, err := adapter.CreatePayment(ctx, tx, fields)
	if err != nil {
		uc.cleanupFailedTransaction(ctx, adapter, tx)
		return result.Err[models.OpOutcome](
			fmt.Sprintf("payment creation failed: %v", err),
			map[string]any{
				"reason":         models.ReasonGatewayError,
				"transaction_id": tx.ID.String(),
				"gateway":        string(tx.PaymentGateway),
			},
		)
	}

	if !creation.SyncCompletion {
		// Completion arrives later through a webhook-driven trigger;
		// finalization happens then.
		logger.Info("Payment creation pending asynchronous completion",
			logger.String("transaction_id", tx.ID.String()),
			logger.String("gateway", string(tx.PaymentGateway)))
		return result.Ok(models.OpOutcome{Transaction: models.NewTransactionResponse(tx)})
	}

	return uc.doFinalizeCreate(ctx, communityID, transactionID).OnError(func(*result.Error) {
		uc.cleanupFailedTransaction(ctx, adapter, tx)
	})
}

// cleanupFailedTransaction removes the transaction record for gateways whose
// contract requires deleting unconfirmed rows synchronously; for the rest the
// row is left for expiry.
func (uc *PreauthUC) cleanupFailedTransaction(ctx context.Context, adapter preauth.PaymentGW, tx *models.Transaction) {
	if !adapter.RequiresSyncCleanup() {
		logger.Debug("Leaving failed transaction for expiry",
			logger.String("transaction_id", tx.ID.String()),
			logger.String("gateway", string(tx.PaymentGateway)))
		return
	}

	if err := uc.repo.DeleteTransaction(ctx, tx.CommunityID, tx.ID); err != nil {
		logger.Error("Failed to delete failed transaction",
			logger.String("transaction_id", tx.ID.String()),
			logger.Err(err))
		return
	}

	logger.Info("Deleted failed transaction",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("gateway", string(tx.PaymentGateway)))
}
