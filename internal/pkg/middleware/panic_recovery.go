package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/tecodan/sharetribe/internal/pkg/logger"
	"github.com/tecodan/sharetribe/internal/pkg/models"
)

// PanicRecoveryMiddleware recovers from panics raised during request
// processing, logs them with a stack trace, and returns a 500 response.
// Invariant violations (illegal state guards) surface here.
func PanicRecoveryMiddleware(zl *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zl)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zl *logger.ZapLogger) {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = c.Request().Header.Get(echo.HeaderXRequestID)
	}

	// A state guard violation is a caller error, not a server fault
	if stateErr, ok := r.(*models.IllegalStateError); ok {
		zl.Warn("Operation rejected by state guard",
			logger.String("operation", stateErr.Op),
			logger.String("transaction_id", stateErr.TransactionID.String()),
			logger.String("actual_state", string(stateErr.Actual)),
			logger.String("request_id", requestID),
		)
		if !c.Response().Committed {
			_ = c.JSON(http.StatusConflict, map[string]interface{}{
				"error":      "Conflict",
				"message":    stateErr.Error(),
				"request_id": requestID,
			})
		}
		return
	}

	stack := string(debug.Stack())

	zl.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("request_id", requestID),
		logger.String("stack_trace", stack),
	)

	if !c.Response().Committed {
		err := c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":      "Internal Server Error",
			"message":    fmt.Sprintf("%v", r),
			"request_id": requestID,
		})
		if err != nil {
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}
