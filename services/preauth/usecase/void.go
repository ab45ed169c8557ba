package usecase

import (
	"context"

	"github.com/tecodan/sharetribe/internal/pkg/logger"
	"github.com/tecodan/sharetribe/internal/pkg/models"
	"github.com/tecodan/sharetribe/services/preauth"
)

// voidPayment cancels the preauthorization as compensation for a failed
// downstream step. Voiding is best-effort: the overarching operation is
// already on a failure path, so a failed void is logged but never raised.
func (uc *PreauthUC) voidPayment(ctx context.Context, adapter preauth.PaymentGW, tx *models.Transaction) error {
	err := adapter.VoidPayment(ctx, tx, "")
	if err != nil {
		logger.Error("Failed to void payment",
			logger.String("transaction_id", tx.ID.String()),
			logger.String("gateway", string(tx.PaymentGateway)),
			logger.Err(err))
		return err
	}

	logger.Info("Payment voided",
		logger.String("transaction_id", tx.ID.String()),
		logger.String("gateway", string(tx.PaymentGateway)))
	return nil
}
