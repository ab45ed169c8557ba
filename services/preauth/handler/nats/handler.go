package nats

import (
	"fmt"

	"github.com/tecodan/sharetribe/internal/pkg/constants"
	natspkg "github.com/tecodan/sharetribe/internal/pkg/nats"
	"github.com/tecodan/sharetribe/services/preauth"
)

// Handler consumes worker jobs for the preauthorization service
type Handler struct {
	preauthUC preauth.PreauthUC
	workerGW  preauth.WorkerGW
	consumer  *natspkg.Consumer
}

// NewHandler creates a new NATS handler and starts its consumers
func NewHandler(preauthUC preauth.PreauthUC, workerGW preauth.WorkerGW, natsClient *natspkg.Client) (*Handler, error) {
	h := &Handler{
		preauthUC: preauthUC,
		workerGW:  workerGW,
	}

	consumer, err := natspkg.NewConsumer(
		natsClient,
		constants.SubjectPreauthJobs,
		constants.QueueGroupPreauthJobs,
		h.handleJobMessage,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize worker job consumer: %w", err)
	}
	h.consumer = consumer

	return h, nil
}

// Close stops all consumers
func (h *Handler) Close() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}
