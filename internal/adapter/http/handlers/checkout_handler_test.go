package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout_pro/internal/adapter/http/handlers/mocks"
	"checkout_pro/internal/domain/entities"
	"checkout_pro/internal/usecase"
	"checkout_pro/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const createSessionBody = `{
	"plan_id": "pro",
	"customer": {
		"name": "Ana Souza",
		"email": "ana@test.com",
		"phone": "+5511999990000",
		"document": "12345678909",
		"address": {
			"street": "Rua A",
			"number": "100",
			"city": "Sao Paulo",
			"state": "SP",
			"zip_code": "01000-000"
		}
	}
}`

func newCheckoutRouter(uc usecase.ICheckoutSessionUseCase) *gin.Engine {
	h := NewCheckoutHandler(uc)
	r := gin.New()
	r.POST("/v1/checkout/sessions", h.CreateSession)
	r.GET("/v1/checkout/sessions/:session_id", h.GetSession)
	r.POST("/v1/checkout/sessions/:session_id/submit", h.SubmitPayment)
	r.POST("/v1/checkout/sessions/:session_id/retry", h.RetrySession)
	r.DELETE("/v1/checkout/sessions/:session_id", h.TeardownSession)
	return r
}

func TestCheckoutHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/sessions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Create(gomock.Any(), "pro", gomock.Any()).Return(entities.CheckoutSession{}, usecase.ErrPlanNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/sessions", bytes.NewBufferString(createSessionBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Create(gomock.Any(), "pro", gomock.Any()).DoAndReturn(
			func(_ any, planID string, customer entities.CustomerRecord) (entities.CheckoutSession, error) {
				if customer.Name != "Ana Souza" || customer.Address.State != "SP" {
					t.Errorf("unexpected customer: %+v", customer)
				}
				return entities.CheckoutSession{ID: "sess-1", PlanID: planID, Status: entities.SessionStatusIdle}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/sessions", bytes.NewBufferString(createSessionBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["session_id"] != "sess-1" || body["status"] != "idle" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_SubmitPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/sessions/sess-1/submit", bytes.NewBufferString(`{"method":"boleto"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("credential not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "sess-1", entities.PaymentMethodPix, nil).
			Return(entities.CheckoutSession{}, usecase.ErrCredentialNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/sessions/sess-1/submit", bytes.NewBufferString(`{"method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "CREDENTIAL_NOT_CONFIGURED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("gateway error maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		gwErr := &interfaces.GatewayError{Op: "create payment", StatusCode: 500, Body: "oops"}
		uc.EXPECT().Submit(gomock.Any(), "sess-1", entities.PaymentMethodPix, nil).
			Return(entities.CheckoutSession{}, gwErr)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/sessions/sess-1/submit", bytes.NewBufferString(`{"method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("pix pending returns qr payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "sess-1", entities.PaymentMethodPix, nil).Return(entities.CheckoutSession{
			ID:        "sess-1",
			PlanID:    "pro",
			Status:    entities.SessionStatusProcessing,
			PaymentID: "X1",
			Pix:       &entities.PixTransactionData{QRCode: "copia-e-cola", QRCodeBase64: "aW1n"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/sessions/sess-1/submit", bytes.NewBufferString(`{"method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Status string `json:"status"`
			Pix    struct {
				QRCode string `json:"qr_code"`
			} `json:"pix"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Status != "processing" || body.Pix.QRCode != "copia-e-cola" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("card details forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "sess-1", entities.PaymentMethodCard, gomock.Any()).DoAndReturn(
			func(_ any, _ string, _ entities.PaymentMethod, card *entities.CardDetails) (entities.CheckoutSession, error) {
				if card == nil || card.Number != "5031433215406351" || card.Brand != "master" {
					t.Errorf("unexpected card: %+v", card)
				}
				return entities.CheckoutSession{ID: "sess-1", Status: entities.SessionStatusApproved, PaymentID: "X2"}, nil
			})

		payload := `{"method":"card","card":{"number":"5031 4332 1540 6351","expiration_month":11,"expiration_year":2030,"security_code":"123","holder_name":"ANA SOUZA","brand":"Master"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/sessions/sess-1/submit", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Get("missing").Return(entities.CheckoutSession{}, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/sessions/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Get("sess-1").Return(entities.CheckoutSession{
			ID:     "sess-1",
			PlanID: "starter",
			Status: entities.SessionStatusTimedOut,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/sessions/sess-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "timed_out" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_RetrySession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Retry("sess-1").Return(entities.CheckoutSession{}, usecase.ErrSessionNotRetryable)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/sessions/sess-1/retry", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Retry("sess-1").Return(entities.CheckoutSession{ID: "sess-1", Status: entities.SessionStatusIdle}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/checkout/sessions/sess-1/retry", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCheckoutHandler_TeardownSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Teardown("missing").Return(usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/checkout/sessions/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutSessionUseCase(ctrl)
		r := newCheckoutRouter(uc)

		uc.EXPECT().Teardown("sess-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/checkout/sessions/sess-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapCheckoutError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrPlanNotFound, http.StatusNotFound},
		{usecase.ErrSessionNotFound, http.StatusNotFound},
		{usecase.ErrInvalidCustomer, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentMethod, http.StatusBadRequest},
		{usecase.ErrMissingCardDetails, http.StatusBadRequest},
		{usecase.ErrSessionNotIdle, http.StatusConflict},
		{usecase.ErrSessionNotRetryable, http.StatusConflict},
		{usecase.ErrCredentialNotConfigured, http.StatusConflict},
		{&interfaces.GatewayError{Op: "create payment", StatusCode: 400}, http.StatusBadGateway},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapCheckoutError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
