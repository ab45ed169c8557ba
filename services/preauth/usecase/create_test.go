package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/tecodan/sharetribe/internal/pkg/models"
	"github.com/tecodan/sharetribe/services/preauth"
	"github.com/tecodan/sharetribe/services/preauth/mocks"
)

type ucMocks struct {
	repo          *mocks.MockTransactionRepo
	gateways      *mocks.MockGatewayRegistry
	adapter       *mocks.MockPaymentGW
	reservationGW *mocks.MockReservationGW
	workerGW      *mocks.MockWorkerGW
}

func newTestUC(t *testing.T) (preauth.PreauthUC, *ucMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := &ucMocks{
		repo:          mocks.NewMockTransactionRepo(ctrl),
		gateways:      mocks.NewMockGatewayRegistry(ctrl),
		adapter:       mocks.NewMockPaymentGW(ctrl),
		reservationGW: mocks.NewMockReservationGW(ctrl),
		workerGW:      mocks.NewMockWorkerGW(ctrl),
	}

	uc := NewPreauthUC(&models.Config{}, m.repo, m.gateways, m.reservationGW, m.workerGW)
	return uc, m, ctrl
}

func newTransaction(state models.TransactionState) *models.Transaction {
	return &models.Transaction{
		ID:              uuid.New(),
		CommunityID:     uuid.New(),
		CurrentState:    state,
		PaymentGateway:  models.GatewayBraintree,
		Availability:    models.AvailabilityNone,
		ListingID:       uuid.New(),
		ListingAuthorID: uuid.New(),
		StarterID:       uuid.New(),
	}
}

func TestPreauthUC_Create_WritesInitiatedBeforeGatewayCall(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	tx := newTransaction("")
	fields := models.GatewayFields{"nonce": "abc"}

	// The initiated write must precede the gateway call so the store reflects
	// intent even when the gateway fails.
	gomock.InOrder(
		m.repo.EXPECT().TransitionState(gomock.Any(), tx.CommunityID, tx.ID, models.StateInitiated).Return(nil),
		m.repo.EXPECT().GetInCommunity(gomock.Any(), tx.CommunityID, tx.ID).Return(tx, nil),
		m.gateways.EXPECT().Resolve(models.GatewayBraintree).Return(m.adapter, nil),
		m.adapter.EXPECT().CreatePayment(gomock.Any(), tx, fields).Return(nil, errors.New("card declined")),
	)
	m.adapter.EXPECT().RequiresSyncCleanup().Return(false)

	res := uc.Create(context.Background(), tx, fields, preauth.ModeSync)

	assert.True(t, res.IsErr())
	assert.Equal(t, models.ReasonGatewayError, res.Err().Data["reason"])
	assert.Equal(t, models.StateInitiated, tx.CurrentState)
}

func TestPreauthUC_Create_SyncCleanupDeletesFailedTransaction(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	tx := newTransaction("")
	tx.PaymentGateway = models.GatewayStripe

	m.repo.EXPECT().TransitionState(gomock.Any(), tx.CommunityID, tx.ID, models.StateInitiated).Return(nil)
	m.repo.EXPECT().GetInCommunity(gomock.Any(), tx.CommunityID, tx.ID).Return(tx, nil)
	m.gateways.EXPECT().Resolve(models.GatewayStripe).Return(m.adapter, nil)
	m.adapter.EXPECT().CreatePayment(gomock.Any(), tx, gomock.Any()).Return(nil, errors.New("intent creation failed"))
	m.adapter.EXPECT().RequiresSyncCleanup().Return(true)
	m.repo.EXPECT().DeleteTransaction(gomock.Any(), tx.CommunityID, tx.ID).Return(nil)

	res := uc.Create(context.Background(), tx, nil, preauth.ModeSync)

	assert.True(t, res.IsErr())
}

func TestPreauthUC_Create_PendingCompletionReturnsWithoutFinalizing(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	tx := newTransaction("")

	m.repo.EXPECT().TransitionState(gomock.Any(), tx.CommunityID, tx.ID, models.StateInitiated).Return(nil)
	m.repo.EXPECT().GetInCommunity(gomock.Any(), tx.CommunityID, tx.ID).Return(tx, nil)
	m.gateways.EXPECT().Resolve(models.GatewayBraintree).Return(m.adapter, nil)
	m.adapter.EXPECT().CreatePayment(gomock.Any(), tx, gomock.Any()).
		Return(&models.PaymentCreation{SyncCompletion: false}, nil)

	res := uc.Create(context.Background(), tx, nil, preauth.ModeSync)

	assert.True(t, res.IsOk())
	assert.Equal(t, models.StateInitiated, res.Value().Transaction.State)
	assert.Nil(t, res.Value().Process)
}

func TestPreauthUC_Create_SyncCompletionFinalizesImmediately(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	tx := newTransaction("")

	m.repo.EXPECT().TransitionState(gomock.Any(), tx.CommunityID, tx.ID, models.StateInitiated).Return(nil)
	m.repo.EXPECT().GetInCommunity(gomock.Any(), tx.CommunityID, tx.ID).Return(tx, nil).Times(2)
	m.gateways.EXPECT().Resolve(models.GatewayBraintree).Return(m.adapter, nil).Times(2)
	m.adapter.EXPECT().CreatePayment(gomock.Any(), tx, gomock.Any()).
		Return(&models.PaymentCreation{SyncCompletion: true}, nil)
	m.adapter.EXPECT().PaymentRequiresAction(gomock.Any(), tx).Return(false)
	m.repo.EXPECT().TransitionState(gomock.Any(), tx.CommunityID, tx.ID, models.StatePreauthorized).Return(nil)

	res := uc.Create(context.Background(), tx, nil, preauth.ModeSync)

	assert.True(t, res.IsOk())
	assert.Equal(t, models.StatePreauthorized, res.Value().Transaction.State)
}

func TestPreauthUC_Create_FailedInitiatedWriteSkipsGateway(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	tx := newTransaction("")

	m.repo.EXPECT().TransitionState(gomock.Any(), tx.CommunityID, tx.ID, models.StateInitiated).
		Return(errors.New("connection refused"))

	res := uc.Create(context.Background(), tx, nil, preauth.ModeSync)

	assert.True(t, res.IsErr())
	assert.Contains(t, res.Err().Message, "failed to initiate transaction")
}
