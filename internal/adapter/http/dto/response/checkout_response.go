package response

import (
	"time"

	"checkout_pro/internal/domain/entities"
)

type PixResponse struct {
	QRCodeBase64 string `json:"qr_code_base64,omitempty"`
	QRCode       string `json:"qr_code,omitempty"`
	TicketURL    string `json:"ticket_url,omitempty"`
}

type SessionResponse struct {
	SessionID string       `json:"session_id"`
	PlanID    string       `json:"plan_id"`
	Status    string       `json:"status"`
	PaymentID string       `json:"payment_id,omitempty"`
	Pix       *PixResponse `json:"pix,omitempty"`
	LastError string       `json:"last_error,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func FromCheckoutSession(s entities.CheckoutSession) SessionResponse {
	resp := SessionResponse{
		SessionID: s.ID,
		PlanID:    s.PlanID,
		Status:    string(s.Status),
		PaymentID: s.PaymentID,
		LastError: s.LastError,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Pix != nil {
		resp.Pix = &PixResponse{
			QRCodeBase64: s.Pix.QRCodeBase64,
			QRCode:       s.Pix.QRCode,
			TicketURL:    s.Pix.TicketURL,
		}
	}
	return resp
}
