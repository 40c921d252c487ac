package request

import (
	"testing"

	"checkout_pro/internal/domain/entities"
)

func TestCustomerRequest_ToRecord(t *testing.T) {
	req := CustomerRequest{
		Name:     "  Ana Souza  ",
		Email:    " ana@test.com ",
		Phone:    " +5511999990000 ",
		Document: " 12345678909 ",
		Address: CustomerAddressRequest{
			Street:  " Rua A ",
			Number:  " 100 ",
			City:    " Sao Paulo ",
			State:   " SP ",
			ZipCode: " 01000-000 ",
		},
	}

	rec := req.ToRecord()
	if rec.Name != "Ana Souza" || rec.Email != "ana@test.com" {
		t.Fatalf("expected trimmed fields, got %+v", rec)
	}
	if rec.Address.State != "SP" || rec.Address.ZipCode != "01000-000" {
		t.Fatalf("expected trimmed address, got %+v", rec.Address)
	}
}

func TestSubmitPaymentRequest_ToMethod(t *testing.T) {
	if got := (SubmitPaymentRequest{Method: "pix"}).ToMethod(); got != entities.PaymentMethodPix {
		t.Fatalf("expected pix, got %s", got)
	}
	if got := (SubmitPaymentRequest{Method: "card"}).ToMethod(); got != entities.PaymentMethodCard {
		t.Fatalf("expected card, got %s", got)
	}
}

func TestSubmitPaymentRequest_ToCard(t *testing.T) {
	t.Run("nil card", func(t *testing.T) {
		if got := (SubmitPaymentRequest{Method: "pix"}).ToCard(); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("normalizes number and brand", func(t *testing.T) {
		req := SubmitPaymentRequest{
			Method: "card",
			Card: &CardRequest{
				Number:          "5031 4332 1540 6351",
				ExpirationMonth: 11,
				ExpirationYear:  2030,
				SecurityCode:    "123",
				HolderName:      " ANA SOUZA ",
				Brand:           " Master ",
			},
		}

		card := req.ToCard()
		if card.Number != "5031433215406351" {
			t.Fatalf("expected spaces stripped, got %q", card.Number)
		}
		if card.Brand != "master" || card.HolderName != "ANA SOUZA" {
			t.Fatalf("expected normalized card, got %+v", card)
		}
	})
}
