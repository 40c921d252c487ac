package handlers

import (
	"errors"
	"log"
	"net/http"

	request "checkout_pro/internal/adapter/http/dto/request"
	response "checkout_pro/internal/adapter/http/dto/response"
	"checkout_pro/internal/usecase"
	"checkout_pro/internal/usecase/interfaces"
	"checkout_pro/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// CheckoutHandler handles HTTP requests for checkout sessions.

type CheckoutHandler struct {
	usecase usecase.ICheckoutSessionUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutSessionUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateSession opens a checkout attempt for a plan and a validated customer.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var payload request.CreateSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Create(c.Request.Context(), payload.PlanID, payload.Customer.ToRecord())
	if err != nil {
		log.Printf("[checkout][handler] create session failed plan_id=%s err=%v", payload.PlanID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] session created session_id=%s plan_id=%s", session.ID, session.PlanID)

	c.JSON(http.StatusCreated, response.FromCheckoutSession(session))
}

// SubmitPayment starts the payment for an idle session (pix or card).
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] submit start session_id=%s method=%s", sessionID, payload.Method)

	session, err := h.usecase.Submit(c.Request.Context(), sessionID, payload.ToMethod(), payload.ToCard())
	if err != nil {
		log.Printf("[checkout][handler] submit failed session_id=%s err=%v", sessionID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] submit accepted session_id=%s status=%s payment_id=%s", sessionID, session.Status, session.PaymentID)

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// GetSession returns the session status and, for PIX, the QR payload.
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	session, err := h.usecase.Get(sessionID)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// RetrySession returns a failed session to idle for a new submission.
func (h *CheckoutHandler) RetrySession(c *gin.Context) {
	sessionID := c.Param("session_id")

	session, err := h.usecase.Retry(sessionID)
	if err != nil {
		log.Printf("[checkout][handler] retry failed session_id=%s err=%v", sessionID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] session reset session_id=%s", sessionID)

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// TeardownSession discards the session and cancels any polling still running.
func (h *CheckoutHandler) TeardownSession(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.usecase.Teardown(sessionID); err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCheckoutError(err error) *pkg.AppError {
	var gatewayErr *interfaces.GatewayError

	switch {
	case errors.Is(err, usecase.ErrPlanNotFound):
		return pkg.NewDomainErrorSimple("PLAN_NOT_FOUND", "Plan not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER", "Customer record is incomplete or invalid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod), errors.Is(err, usecase.ErrMissingCardDetails):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotIdle):
		return pkg.NewDomainErrorSimple("SESSION_ALREADY_SUBMITTED", "Session already has a payment in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionNotRetryable):
		return pkg.NewDomainErrorSimple("SESSION_NOT_RETRYABLE", "Only rejected or timed out sessions can be retried", http.StatusConflict)
	case errors.Is(err, usecase.ErrCredentialNotConfigured):
		return pkg.NewDomainErrorSimple("CREDENTIAL_NOT_CONFIGURED", "Configure the payment gateway credential before submitting", http.StatusConflict)
	case errors.As(err, &gatewayErr):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider refused the request", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
