package usecase

import (
	"github.com/tecodan/sharetribe/internal/pkg/models"
	"github.com/tecodan/sharetribe/services/preauth"
)

// PreauthUC implements the preauth.PreauthUC interface
type PreauthUC struct {
	cfg           *models.Config
	repo          preauth.TransactionRepo
	gateways      preauth.GatewayRegistry
	reservationGW preauth.ReservationGW
	workerGW      preauth.WorkerGW
}

// NewPreauthUC creates a new preauthorization use case
func NewPreauthUC(
	cfg *models.Config,
	repo preauth.TransactionRepo,
	gateways preauth.GatewayRegistry,
	reservationGW preauth.ReservationGW,
	workerGW preauth.WorkerGW,
) preauth.PreauthUC {
	return &PreauthUC{
		cfg:           cfg,
		repo:          repo,
		gateways:      gateways,
		reservationGW: reservationGW,
		workerGW:      workerGW,
	}
}
