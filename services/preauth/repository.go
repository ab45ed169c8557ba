package preauth

import (
	"context"

	"github.com/google/uuid"
	"github.com/tecodan/sharetribe/internal/pkg/models"
)

// TransactionRepo defines the durable transaction store interface. State
// writes are single-field updates the store treats as atomic.
type TransactionRepo interface {
	GetInCommunity(ctx context.Context, communityID, transactionID uuid.UUID) (*models.Transaction, error)
	TransitionState(ctx context.Context, communityID, transactionID uuid.UUID, state models.TransactionState) error
	UpdateBookingReference(ctx context.Context, communityID, transactionID uuid.UUID, reservationID string) error
	MarkUnseenByOtherParty(ctx context.Context, communityID, transactionID, personID uuid.UUID) error
	DeleteTransaction(ctx context.Context, communityID, transactionID uuid.UUID) error
	AddMessage(ctx context.Context, communityID, transactionID uuid.UUID, content string, senderID uuid.UUID) error
}
