package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"checkout_pro/internal/domain/entities"
	"checkout_pro/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/cardtoken"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingAccessToken = errors.New("missing mercado pago access token")
	ErrInvalidIntent      = errors.New("invalid payment intent")
)

// MercadoPagoGateway adapts the official Mercado Pago SDK to the checkout's
// gateway port. A gateway is bound to one access token at construction; the
// SDK stamps the Authorization header and a fresh X-Idempotency-Key on every
// creation call (still best-effort: a retried attempt gets a new key).

type MercadoPagoGateway struct {
	payments   payment.Client
	cardTokens cardtoken.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrMissingAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}

	return &MercadoPagoGateway{
		payments:   payment.NewClient(cfg),
		cardTokens: cardtoken.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreatePixPayment(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentRecord, error) {
	if intent.Method != entities.PaymentMethodPix {
		return entities.PaymentRecord{}, fmt.Errorf("%w: method %q, want pix", ErrInvalidIntent, intent.Method)
	}
	if err := validateIntent(intent); err != nil {
		return entities.PaymentRecord{}, err
	}

	req := payment.Request{
		TransactionAmount: intent.Amount,
		Description:       intent.Description,
		PaymentMethodID:   "pix",
		Payer:             payerRequest(intent.Payer),
	}

	log.Printf("[payment][gateway] create pix start amount=%.2f", intent.Amount)
	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] create pix failed err=%v", err)
		return entities.PaymentRecord{}, asGatewayError("create-pix-payment", err)
	}
	rec := fromResponse(resp)
	log.Printf("[payment][gateway] create pix success payment_id=%s status=%s", rec.ID, rec.Status)
	return rec, nil
}

func (g *MercadoPagoGateway) CreateCardPayment(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentRecord, error) {
	if intent.Method != entities.PaymentMethodCard {
		return entities.PaymentRecord{}, fmt.Errorf("%w: method %q, want card", ErrInvalidIntent, intent.Method)
	}
	if err := validateIntent(intent); err != nil {
		return entities.PaymentRecord{}, err
	}
	// Raw card data never reaches this path: only the single-use token does.
	if strings.TrimSpace(intent.CardToken) == "" {
		return entities.PaymentRecord{}, fmt.Errorf("%w: card payments require a card token", ErrInvalidIntent)
	}

	req := payment.Request{
		TransactionAmount: intent.Amount,
		Description:       intent.Description,
		PaymentMethodID:   intent.CardBrand,
		Token:             intent.CardToken,
		Installments:      1,
		Payer:             payerRequest(intent.Payer),
	}

	log.Printf("[payment][gateway] create card start amount=%.2f brand=%s", intent.Amount, intent.CardBrand)
	resp, err := g.payments.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] create card failed err=%v", err)
		return entities.PaymentRecord{}, asGatewayError("create-card-payment", err)
	}
	rec := fromResponse(resp)
	log.Printf("[payment][gateway] create card success payment_id=%s status=%s", rec.ID, rec.Status)
	return rec, nil
}

// CreateCardToken exchanges card details for a single-use token through the
// provider's tokenization endpoint.
func (g *MercadoPagoGateway) CreateCardToken(ctx context.Context, card entities.CardDetails) (string, error) {
	req := cardtoken.Request{
		CardNumber:      card.Number,
		ExpirationMonth: strconv.Itoa(card.ExpirationMonth),
		ExpirationYear:  strconv.Itoa(card.ExpirationYear),
		SecurityCode:    card.SecurityCode,
		Cardholder: &cardtoken.CardholderRequest{
			Name: card.HolderName,
		},
	}

	resp, err := g.cardTokens.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] card tokenization failed err=%v", err)
		return "", asGatewayError("create-card-token", err)
	}
	log.Printf("[payment][gateway] card tokenized")
	return resp.ID, nil
}

func (g *MercadoPagoGateway) GetPaymentStatus(ctx context.Context, id string) (entities.PaymentRecord, error) {
	numericID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		return entities.PaymentRecord{}, fmt.Errorf("invalid payment id %q: %w", id, err)
	}

	resp, err := g.payments.Get(ctx, numericID)
	if err != nil {
		return entities.PaymentRecord{}, asGatewayError("get-payment-status", err)
	}
	return fromResponse(resp), nil
}

func validateIntent(intent entities.PaymentIntent) error {
	if intent.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidIntent)
	}
	if strings.TrimSpace(intent.Payer.Email) == "" {
		return fmt.Errorf("%w: payer email is required", ErrInvalidIntent)
	}
	return nil
}

func payerRequest(p entities.Payer) *payment.PayerRequest {
	req := &payment.PayerRequest{
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
	if strings.TrimSpace(p.IdentificationNumber) != "" {
		req.Identification = &payment.IdentificationRequest{
			Type:   p.IdentificationType,
			Number: p.IdentificationNumber,
		}
	}
	return req
}

// fromResponse reduces the provider response to the record the session needs
// and normalizes the status vocabulary at this boundary.
func fromResponse(resp *payment.Response) entities.PaymentRecord {
	rec := entities.PaymentRecord{
		ID:           strconv.Itoa(resp.ID),
		Status:       normalizeStatus(resp.Status),
		StatusDetail: resp.StatusDetail,
	}
	td := resp.PointOfInteraction.TransactionData
	if td.QRCode != "" || td.QRCodeBase64 != "" || td.TicketURL != "" {
		rec.Pix = &entities.PixTransactionData{
			QRCodeBase64: td.QRCodeBase64,
			QRCode:       td.QRCode,
			TicketURL:    td.TicketURL,
		}
	}
	return rec
}

func normalizeStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected":
		return entities.PaymentStatusRejected
	case "cancelled":
		return entities.PaymentStatusCancelled
	default:
		// pending, in_process, authorized, in_mediation, ...
		return entities.PaymentStatusPending
	}
}

func asGatewayError(op string, err error) *interfaces.GatewayError {
	return &interfaces.GatewayError{
		Op:         op,
		StatusCode: statusCodeFromError(err),
		Body:       err.Error(),
		Err:        err,
	}
}

// The SDK flattens the provider response into the error text, so the HTTP
// status is recovered by probing for the status field the API reports.
func statusCodeFromError(err error) int {
	msg := strings.ToLower(err.Error())
	for _, probe := range []struct {
		needle string
		code   int
	}{
		{`"status":400`, 400},
		{`"status":401`, 401},
		{`"status":403`, 403},
		{`"status":404`, 404},
		{`"status":422`, 422},
		{`"status":500`, 500},
	} {
		if strings.Contains(msg, probe.needle) {
			return probe.code
		}
	}
	return 0
}
