package handlers

import (
	"errors"
	"log"
	"net/http"

	request "checkout_pro/internal/adapter/http/dto/request"
	response "checkout_pro/internal/adapter/http/dto/response"
	"checkout_pro/internal/domain/entities"
	"checkout_pro/internal/usecase"
	"checkout_pro/pkg"

	"github.com/gin-gonic/gin"
)

// CredentialHandler manages the gateway bearer credential.

type CredentialHandler struct {
	usecase usecase.ICredentialUseCase
}

func NewCredentialHandler(uc usecase.ICredentialUseCase) *CredentialHandler {
	return &CredentialHandler{usecase: uc}
}

// ConfigureCredential stores (or replaces) the active credential.
func (h *CredentialHandler) ConfigureCredential(c *gin.Context) {
	var payload request.CredentialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cred, err := h.usecase.Configure(c.Request.Context(), payload.AccessToken)
	if err != nil {
		log.Printf("[credential][handler] configure failed err=%v", err)
		appErr := mapCredentialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCredential(cred))
}

// GetCredential reports whether a credential is configured, with the token
// masked.
func (h *CredentialHandler) GetCredential(c *gin.Context) {
	cred, err := h.usecase.Current(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrCredentialNotConfigured) {
			c.JSON(http.StatusOK, response.FromCredential(entities.Credential{}))
			return
		}
		appErr := mapCredentialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCredential(cred))
}

// ResetCredential removes the stored credential.
func (h *CredentialHandler) ResetCredential(c *gin.Context) {
	if err := h.usecase.Reset(c.Request.Context()); err != nil {
		log.Printf("[credential][handler] reset failed err=%v", err)
		appErr := mapCredentialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCredentialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredential):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIAL", "Access token cannot be empty", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
