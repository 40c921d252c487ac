package routes

import (
	"checkout_pro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPlanRoutes(rg *gin.RouterGroup, h *handlers.PlanHandler) {
	plans := rg.Group("/plans")

	plans.GET("", h.ListPlans)
	plans.GET("/:plan_id", h.GetPlan)
}

func addCredentialRoutes(rg *gin.RouterGroup, h *handlers.CredentialHandler) {
	credentials := rg.Group("/credentials")

	credentials.PUT("", h.ConfigureCredential)
	credentials.GET("", h.GetCredential)
	credentials.DELETE("", h.ResetCredential)
}

func addCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler) {
	sessions := rg.Group("/checkout/sessions")

	sessions.POST("", h.CreateSession)
	sessions.GET("/:session_id", h.GetSession)
	sessions.POST("/:session_id/submit", h.SubmitPayment)
	sessions.POST("/:session_id/retry", h.RetrySession)
	sessions.DELETE("/:session_id", h.TeardownSession)
}
