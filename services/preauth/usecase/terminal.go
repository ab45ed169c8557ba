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

// Reject voids the payment through the gateway and transitions the
// transaction to rejected
func (uc *PreauthUC) Reject(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID, mode preauth.Mode) result.Result[models.OpOutcome] {
	return uc.dispatchTerminal(ctx, communityID, transactionID, models.OpReject, message, senderID, mode)
}

// CompletePreauthorization captures the payment and transitions the
// transaction to paid
func (uc *PreauthUC) CompletePreauthorization(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID, mode preauth.Mode) result.Result[models.OpOutcome] {
	return uc.dispatchTerminal(ctx, communityID, transactionID, models.OpCompletePreauthorization, message, senderID, mode)
}

// Complete transitions the transaction to confirmed without a gateway call
func (uc *PreauthUC) Complete(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID, mode preauth.Mode) result.Result[models.OpOutcome] {
	return uc.dispatchTerminal(ctx, communityID, transactionID, models.OpComplete, message, senderID, mode)
}

// Cancel transitions the transaction to disputed without a gateway call
func (uc *PreauthUC) Cancel(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID, mode preauth.Mode) result.Result[models.OpOutcome] {
	return uc.dispatchTerminal(ctx, communityID, transactionID, models.OpCancel, message, senderID, mode)
}

func (uc *PreauthUC) dispatchTerminal(ctx context.Context, communityID, transactionID uuid.UUID, op, message string, senderID uuid.UUID, mode preauth.Mode) result.Result[models.OpOutcome] {
	return uc.dispatch(ctx, step{
		communityID:   communityID,
		transactionID: transactionID,
		op:            op,
		input:         models.TerminalJobInput{Message: message, SenderID: senderID},
		fn: func(ctx context.Context) result.Result[models.OpOutcome] {
			switch op {
			case models.OpReject:
				return uc.doReject(ctx, communityID, transactionID, message, senderID)
			case models.OpCompletePreauthorization:
				return uc.doCompletePreauthorization(ctx, communityID, transactionID, message, senderID)
			case models.OpComplete:
				return uc.doComplete(ctx, communityID, transactionID, message, senderID)
			default:
				return uc.doCancel(ctx, communityID, transactionID, message, senderID)
			}
		},
	}, mode)
}

// doReject wraps the gateway void: on gateway failure the error surfaces and
// no transition happens
func (uc *PreauthUC) doReject(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID) result.Result[models.OpOutcome] {
	tx, adapter, res := uc.loadWithAdapter(ctx, communityID, transactionID)
	if res != nil {
		return *res
	}

	if err := adapter.RejectPayment(ctx, tx, ""); err != nil {
		return result.Err[models.OpOutcome](
			fmt.Sprintf("failed to reject payment: %v", err),
			map[string]any{
				"reason":         models.ReasonGatewayError,
				"transaction_id": tx.ID.String(),
				"gateway":        string(tx.PaymentGateway),
			},
		)
	}

	return uc.finishTransition(ctx, tx, models.StateRejected, message, senderID, false)
}

// doCompletePreauthorization wraps the gateway capture: on gateway failure
// the error surfaces and no transition happens
func (uc *PreauthUC) doCompletePreauthorization(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID) result.Result[models.OpOutcome] {
	tx, adapter, res := uc.loadWithAdapter(ctx, communityID, transactionID)
	if res != nil {
		return *res
	}

	if err := adapter.CompletePreauthorization(ctx, tx); err != nil {
		return result.Err[models.OpOutcome](
			fmt.Sprintf("failed to capture payment: %v", err),
			map[string]any{
				"reason":         models.ReasonGatewayError,
				"transaction_id": tx.ID.String(),
				"gateway":        string(tx.PaymentGateway),
			},
		)
	}

	return uc.finishTransition(ctx, tx, models.StatePaid, message, senderID, false)
}

// doComplete is a pure state transition: no gateway interaction
func (uc *PreauthUC) doComplete(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID) result.Result[models.OpOutcome] {
	tx, err := uc.repo.GetInCommunity(ctx, communityID, transactionID)
	if err != nil {
		return result.Err[models.OpOutcome](
			fmt.Sprintf("failed to load transaction: %v", err),
			map[string]any{"transaction_id": transactionID.String()},
		)
	}

	return uc.finishTransition(ctx, tx, models.StateConfirmed, message, senderID, true)
}

// doCancel is a pure state transition: no gateway interaction
func (uc *PreauthUC) doCancel(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID) result.Result[models.OpOutcome] {
	tx, err := uc.repo.GetInCommunity(ctx, communityID, transactionID)
	if err != nil {
		return result.Err[models.OpOutcome](
			fmt.Sprintf("failed to load transaction: %v", err),
			map[string]any{"transaction_id": transactionID.String()},
		)
	}

	return uc.finishTransition(ctx, tx, models.StateDisputed, message, senderID, true)
}

func (uc *PreauthUC) loadWithAdapter(ctx context.Context, communityID, transactionID uuid.UUID) (*models.Transaction, preauth.PaymentGW, *result.Result[models.OpOutcome]) {
	tx, err := uc.repo.GetInCommunity(ctx, communityID, transactionID)
	if err != nil {
		res := result.Err[models.OpOutcome](
			fmt.Sprintf("failed to load transaction: %v", err),
			map[string]any{"transaction_id": transactionID.String()},
		)
		return nil, nil, &res
	}

	adapter, err := uc.gateways.Resolve(tx.PaymentGateway)
	if err != nil {
		res := result.FromError[models.OpOutcome](err, map[string]any{"transaction_id": tx.ID.String()})
		return nil, nil, &res
	}

	return tx, adapter, nil
}

// finishTransition writes the new state, optionally marks the transaction
// unseen for the listing's owning party, and delivers the optional message
func (uc *PreauthUC) finishTransition(ctx context.Context, tx *models.Transaction, state models.TransactionState, message string, senderID uuid.UUID, markUnseen bool) result.Result[models.OpOutcome] {
	if err := uc.repo.TransitionState(ctx, tx.CommunityID, tx.ID, state); err != nil {
		return result.Err[models.OpOutcome](
			fmt.Sprintf("failed to transition transaction to %s: %v", state, err),
			map[string]any{"transaction_id": tx.ID.String()},
		)
	}
	tx.CurrentState = state

	if markUnseen {
		if err := uc.repo.MarkUnseenByOtherParty(ctx, tx.CommunityID, tx.ID, tx.ListingAuthorID); err != nil {
			logger.Warn("Failed to mark transaction unseen",
				logger.String("transaction_id", tx.ID.String()),
				logger.Err(err))
		}
	}

	if message != "" {
		if err := uc.repo.AddMessage(ctx, tx.CommunityID, tx.ID, message, senderID); err != nil {
			logger.Warn("Failed to deliver message",
				logger.String("transaction_id", tx.ID.String()),
				logger.Err(err))
		}
	}

	logger.Info("Transaction transitioned",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("state", string(state)))

	return result.Ok(models.OpOutcome{Transaction: models.NewTransactionResponse(tx)})
}
