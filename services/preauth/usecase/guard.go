package usecase

import (
	"github.com/tecodan/sharetribe/internal/pkg/models"
)

// ensureCanExecute verifies the transaction is in one of the allowed states
// before a state-sensitive operation runs. A violation is caller or
// programmer misuse, not a business outcome: it panics with
// *models.IllegalStateError, recovered at the handler boundary and never
// retried.
func ensureCanExecute(op string, tx *models.Transaction, allowed ...models.TransactionState) {
	for _, state := range allowed {
		if tx.CurrentState == state {
			return
		}
	}

	panic(&models.IllegalStateError{
		Op:            op,
		TransactionID: tx.ID,
		Actual:        tx.CurrentState,
		Allowed:       allowed,
	})
}
