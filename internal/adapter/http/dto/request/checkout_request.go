package request

import (
	"strings"

	"checkout_pro/internal/domain/entities"
)

type CustomerAddressRequest struct {
	Street  string `json:"street" binding:"required"`
	Number  string `json:"number" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required"`
}

type CustomerRequest struct {
	Name     string                 `json:"name" binding:"required"`
	Email    string                 `json:"email" binding:"required,email"`
	Phone    string                 `json:"phone" binding:"required"`
	Document string                 `json:"document" binding:"required"`
	Address  CustomerAddressRequest `json:"address" binding:"required"`
}

func (r CustomerRequest) ToRecord() entities.CustomerRecord {
	return entities.CustomerRecord{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Phone:    strings.TrimSpace(r.Phone),
		Document: strings.TrimSpace(r.Document),
		Address: entities.CustomerAddress{
			Street:  strings.TrimSpace(r.Address.Street),
			Number:  strings.TrimSpace(r.Address.Number),
			City:    strings.TrimSpace(r.Address.City),
			State:   strings.TrimSpace(r.Address.State),
			ZipCode: strings.TrimSpace(r.Address.ZipCode),
		},
	}
}

// CreateSessionRequest opens a checkout attempt for a plan and a customer.

type CreateSessionRequest struct {
	PlanID   string          `json:"plan_id" binding:"required"`
	Customer CustomerRequest `json:"customer" binding:"required"`
}

// CardRequest carries the data exchanged for a single-use token. It is never
// echoed back in any response.

type CardRequest struct {
	Number          string `json:"number"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
	SecurityCode    string `json:"security_code"`
	HolderName      string `json:"holder_name"`
	Brand           string `json:"brand"`
}

// SubmitPaymentRequest starts the payment for an idle session.

type SubmitPaymentRequest struct {
	Method string       `json:"method" binding:"required,oneof=pix card"`
	Card   *CardRequest `json:"card"`
}

func (r SubmitPaymentRequest) ToMethod() entities.PaymentMethod {
	return entities.PaymentMethod(r.Method)
}

func (r SubmitPaymentRequest) ToCard() *entities.CardDetails {
	if r.Card == nil {
		return nil
	}
	return &entities.CardDetails{
		Number:          strings.ReplaceAll(r.Card.Number, " ", ""),
		ExpirationMonth: r.Card.ExpirationMonth,
		ExpirationYear:  r.Card.ExpirationYear,
		SecurityCode:    r.Card.SecurityCode,
		HolderName:      strings.TrimSpace(r.Card.HolderName),
		Brand:           strings.ToLower(strings.TrimSpace(r.Card.Brand)),
	}
}
