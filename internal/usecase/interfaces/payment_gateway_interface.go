package interfaces

import (
	"context"
	"fmt"

	"checkout_pro/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// One call means one HTTP attempt; the gateway never retries. A gateway is
// bound to a single bearer credential at construction, so replacing the
// stored credential never affects calls issued through an existing gateway.
type IPaymentGateway interface {
	CreatePixPayment(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentRecord, error)
	CreateCardPayment(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentRecord, error)
	CreateCardToken(ctx context.Context, card entities.CardDetails) (string, error)
	GetPaymentStatus(ctx context.Context, id string) (entities.PaymentRecord, error)
}

// GatewayError is returned when the provider answers outside the success
// range or the transport fails. StatusCode and Body are kept verbatim for
// diagnostics; StatusCode is 0 when the HTTP status could not be determined.

type GatewayError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("payment gateway %s failed: status=%d body=%s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("payment gateway %s failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }
