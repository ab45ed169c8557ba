package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tecodan/sharetribe/internal/pkg/logger"
	"github.com/tecodan/sharetribe/internal/pkg/models"
	"github.com/tecodan/sharetribe/internal/pkg/result"
	"github.com/tecodan/sharetribe/internal/utils"
	"github.com/tecodan/sharetribe/services/preauth"
	"github.com/tecodan/sharetribe/services/preauth/gateway"
)

// PreauthHandler handles HTTP requests for preauthorization saga operations
type PreauthHandler struct {
	preauthUC preauth.PreauthUC
}

// NewPreauthHandler creates a new preauthorization handler
func NewPreauthHandler(preauthUC preauth.PreauthUC) *PreauthHandler {
	return &PreauthHandler{preauthUC: preauthUC}
}

type bookingRequest struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	PerHour   bool      `json:"per_hour"`
}

type preauthorizeRequest struct {
	TransactionID   uuid.UUID               `json:"transaction_id"`
	PaymentGateway  models.GatewayKind      `json:"payment_gateway"`
	Availability    models.AvailabilityKind `json:"availability"`
	ListingID       uuid.UUID               `json:"listing_id"`
	ListingAuthorID uuid.UUID               `json:"listing_author_id"`
	StarterID       uuid.UUID               `json:"starter_id"`
	Booking         *bookingRequest         `json:"booking,omitempty"`
	GatewayFields   models.GatewayFields    `json:"gateway_fields,omitempty"`
}

type terminalRequest struct {
	Message  string    `json:"message,omitempty"`
	SenderID uuid.UUID `json:"sender_id,omitempty"`
}

// Preauthorize handles transaction creation requests: the transaction record
// is written first, then the payment authorization is dispatched
func (h *PreauthHandler) Preauthorize(c echo.Context) error {
	communityID, err := uuid.Parse(c.Param("community_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid community ID")
	}

	var req preauthorizeRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for preauthorization",
			logger.Err(err),
			logger.String("endpoint", "Preauthorize"))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx := &models.Transaction{
		ID:              req.TransactionID,
		CommunityID:     communityID,
		PaymentGateway:  req.PaymentGateway,
		Availability:    req.Availability,
		ListingID:       req.ListingID,
		ListingAuthorID: req.ListingAuthorID,
		StarterID:       req.StarterID,
	}
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if req.Booking != nil {
		tx.Booking = &models.Booking{
			TransactionID: tx.ID,
			StartTime:     req.Booking.StartTime,
			EndTime:       req.Booking.EndTime,
			PerHour:       req.Booking.PerHour,
		}
	}

	res := h.preauthUC.Create(c.Request().Context(), tx, req.GatewayFields, parseMode(c))
	return respond(c, res)
}

// FinalizeCreate completes a pending preauthorization
func (h *PreauthHandler) FinalizeCreate(c echo.Context) error {
	communityID, transactionID, ok := pathIDs(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid community or transaction ID")
	}

	res := h.preauthUC.FinalizeCreate(c.Request().Context(), communityID, transactionID, parseMode(c))
	return respond(c, res)
}

// Reject declines a preauthorized transaction
func (h *PreauthHandler) Reject(c echo.Context) error {
	return h.terminal(c, h.preauthUC.Reject)
}

// Capture settles the preauthorized payment
func (h *PreauthHandler) Capture(c echo.Context) error {
	return h.terminal(c, h.preauthUC.CompletePreauthorization)
}

// Complete marks a paid transaction as confirmed
func (h *PreauthHandler) Complete(c echo.Context) error {
	return h.terminal(c, h.preauthUC.Complete)
}

// Cancel marks a paid transaction as disputed
func (h *PreauthHandler) Cancel(c echo.Context) error {
	return h.terminal(c, h.preauthUC.Cancel)
}

// GetProcess returns the status of an asynchronously dispatched operation
func (h *PreauthHandler) GetProcess(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return utils.BadRequestResponse(c, "Invalid process token")
	}

	handle, err := h.preauthUC.GetProcess(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, gateway.ErrProcessNotFound) {
			return utils.NotFoundResponse(c, "Process not found")
		}
		logger.Error("Failed to retrieve process",
			logger.String("token", token),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve process")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Process retrieved successfully", handle)
}

type terminalOp func(ctx context.Context, communityID, transactionID uuid.UUID, message string, senderID uuid.UUID, mode preauth.Mode) result.Result[models.OpOutcome]

func (h *PreauthHandler) terminal(c echo.Context, op terminalOp) error {
	communityID, transactionID, ok := pathIDs(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid community or transaction ID")
	}

	var req terminalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	res := op(c.Request().Context(), communityID, transactionID, req.Message, req.SenderID, parseMode(c))
	return respond(c, res)
}

func pathIDs(c echo.Context) (uuid.UUID, uuid.UUID, bool) {
	communityID, err := uuid.Parse(c.Param("community_id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	return communityID, transactionID, true
}

// parseMode reads the dispatch mode from the query string, defaulting to
// synchronous execution
func parseMode(c echo.Context) preauth.Mode {
	if c.QueryParam("mode") == string(preauth.ModeAsync) {
		return preauth.ModeAsync
	}
	return preauth.ModeSync
}

// respond maps an operation result onto the wire: successful synchronous
// steps return the transaction projection, asynchronous dispatches return the
// process handle with 202, failures return 422 with the failure details
func respond(c echo.Context, res result.Result[models.OpOutcome]) error {
	if res.IsErr() {
		opErr := res.Err()
		return utils.UnprocessableResponse(c, opErr.Message, opErr.Data)
	}

	outcome := res.Value()
	if outcome.Process != nil {
		return utils.SuccessResponse(c, http.StatusAccepted, "Operation dispatched", outcome.Process)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Operation completed successfully", outcome.Transaction)
}
