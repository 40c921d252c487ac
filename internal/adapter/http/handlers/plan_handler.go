package handlers

import (
	"errors"
	"net/http"

	response "checkout_pro/internal/adapter/http/dto/response"
	"checkout_pro/internal/usecase"
	"checkout_pro/pkg"

	"github.com/gin-gonic/gin"
)

// PlanHandler serves the immutable plan catalog.

type PlanHandler struct {
	usecase usecase.IPlanUseCase
}

func NewPlanHandler(uc usecase.IPlanUseCase) *PlanHandler {
	return &PlanHandler{usecase: uc}
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPlans(h.usecase.List()))
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.usecase.GetByID(c.Param("plan_id"))
	if err != nil {
		if errors.Is(err, usecase.ErrPlanNotFound) {
			appErr := pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPlan(plan))
}
