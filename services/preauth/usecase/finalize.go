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

// FinalizeCreate completes the preauthorization per mode
func (uc *PreauthUC) FinalizeCreate(ctx context.Context, communityID, transactionID uuid.UUID, mode preauth.Mode) result.Result[models.OpOutcome] {
	return uc.dispatch(ctx, step{
		communityID:   communityID,
		transactionID: transactionID,
		op:            models.OpFinalizeCreate,
		fn: func(ctx context.Context) result.Result[models.OpOutcome] {
			return uc.doFinalizeCreate(ctx, communityID, transactionID)
		},
	}, mode)
}

// doFinalizeCreate is the compensation core. The transaction is reloaded from
// the store to defend against stale in-memory copies across the sync/async
// boundary. If the booking step fails, the payment is voided before the error
// is returned, so the system of record never holds a paid reservation-less
// transaction.
func (uc *PreauthUC) doFinalizeCreate(ctx context.Context, communityID, transactionID uuid.UUID) result.Result[models.OpOutcome] {
	tx, err := uc.repo.GetInCommunity(ctx, communityID, transactionID)
	if err != nil {
		return result.Err[models.OpOutcome](
			fmt.Sprintf("failed to load transaction: %v", err),
			map[string]any{"transaction_id": transactionID.String()},
		)
	}

	ensureCanExecute(models.OpFinalizeCreate, tx, models.StateInitiated, models.StatePreauthorized)

	// Already finalized: a worker retry after a crash between gateway success
	// and the state write lands here. No second gateway or reservation call.
	if tx.CurrentState == models.StatePreauthorized {
		logger.Debug("Transaction already preauthorized, skipping finalization",
			logger.String("transaction_id", tx.ID.String()))
		return result.Ok(models.OpOutcome{Transaction: models.NewTransactionResponse(tx)})
	}

	adapter, err := uc.gateways.Resolve(tx.PaymentGateway)
	if err != nil {
		return result.FromError[models.OpOutcome](err, map[string]any{"transaction_id": tx.ID.String()})
	}

	if res := uc.ensureBooked(ctx, adapter, tx); res != nil {
		return *res
	}

	nextState := models.StatePreauthorized
	if adapter.PaymentRequiresAction(ctx, tx) {
		nextState = models.StatePaymentIntentRequiresAction
	}

	if err := uc.repo.TransitionState(ctx, communityID, transactionID, nextState); err != nil {
		return result.Err[models.OpOutcome](
			fmt.Sprintf("failed to transition transaction to %s: %v", nextState, err),
			map[string]any{"transaction_id": tx.ID.String()},
		)
	}
	tx.CurrentState = nextState

	logger.Info("Preauthorization finalized",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("state", string(nextState)))

	return result.Ok(models.OpOutcome{Transaction: models.NewTransactionResponse(tx)})
}

// ensureBooked reserves the booking window when the transaction needs one.
// Returns nil when finalization may proceed; otherwise the payment has been
// voided and the returned error result carries the classified reason.
func (uc *PreauthUC) ensureBooked(ctx context.Context, adapter preauth.PaymentGW, tx *models.Transaction) *result.Result[models.OpOutcome] {
	if !tx.RequiresBooking() {
		return nil
	}

	booking := tx.Booking

	// Per-hour pricing needs no reservation call
	if booking.PerHour {
		return nil
	}

	if booking.DatesInvalid {
		uc.voidPayment(ctx, adapter, tx)
		res := result.Err[models.OpOutcome](
			"booking dates are no longer available",
			map[string]any{
				"reason":         models.ReasonBookingDatesInvalid,
				"transaction_id": tx.ID.String(),
				"listing_id":     tx.ListingID.String(),
			},
		)
		return &res
	}

	// Already reserved on a previous attempt
	if booking.ReservationID != "" {
		return nil
	}

	reservation, err := uc.reservationGW.InitiateReservation(ctx, &models.ReservationRequest{
		MarketplaceID: tx.CommunityID,
		ActorID:       tx.StarterID,
		ListingID:     tx.ListingID,
		CustomerID:    tx.StarterID,
		InitialStatus: string(models.StatePreauthorized),
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
	})
	if err != nil {
		uc.voidPayment(ctx, adapter, tx)

		data := map[string]any{
			"transaction_id": tx.ID.String(),
			"listing_id":     tx.ListingID.String(),
		}
		if resErr, ok := err.(*models.ReservationError); ok {
			data["reason"] = string(resErr.Reason)
		}
		res := result.Err[models.OpOutcome](fmt.Sprintf("failed to reserve booking: %v", err), data)
		return &res
	}

	if err := uc.repo.UpdateBookingReference(ctx, tx.CommunityID, tx.ID, reservation.ID); err != nil {
		res := result.Err[models.OpOutcome](
			fmt.Sprintf("failed to persist reservation reference: %v", err),
			map[string]any{"transaction_id": tx.ID.String(), "reservation_id": reservation.ID},
		)
		return &res
	}
	booking.ReservationID = reservation.ID

	return nil
}
