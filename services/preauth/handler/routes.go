package handler

import (
	"github.com/labstack/echo/v4"
	httphandler "github.com/tecodan/sharetribe/services/preauth/handler/http"
)

// RegisterRoutes registers the preauthorization API routes
func RegisterRoutes(e *echo.Echo, h *httphandler.PreauthHandler) {
	transactions := e.Group("/communities/:community_id/transactions")
	transactions.POST("", h.Preauthorize)
	transactions.POST("/:id/finalize", h.FinalizeCreate)
	transactions.POST("/:id/reject", h.Reject)
	transactions.POST("/:id/capture", h.Capture)
	transactions.POST("/:id/complete", h.Complete)
	transactions.POST("/:id/cancel", h.Cancel)

	e.GET("/processes/:token", h.GetProcess)
}
