package entities

// PaymentMethod selects how a checkout session is paid.

type PaymentMethod string

const (
	PaymentMethodPix  PaymentMethod = "pix"
	PaymentMethodCard PaymentMethod = "card"
)

// PaymentStatus is the provider status vocabulary normalized into a closed
// set at the gateway boundary. Raw provider strings never reach the session
// state machine; anything that is not terminal maps to pending.

type PaymentStatus string

const (
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusPending   PaymentStatus = "pending"
)

// Terminal reports whether no further status change is expected.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusApproved, PaymentStatusRejected, PaymentStatusCancelled:
		return true
	}
	return false
}

// Payer identifies who is charged. Identification fields are optional for
// PIX and carried through when present.

type Payer struct {
	Email                string `json:"email"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	IdentificationType   string `json:"identification_type,omitempty"`
	IdentificationNumber string `json:"identification_number,omitempty"`
}

// PaymentIntent is the creation request handed to the payment gateway.
//
// Amount always equals the selected plan price at submission time. For card
// payments CardToken carries the single-use token produced by the provider's
// tokenization endpoint; raw card data never enters an intent.

type PaymentIntent struct {
	Amount      float64       `json:"amount"`
	Description string        `json:"description"`
	Method      PaymentMethod `json:"method"`
	Payer       Payer         `json:"payer"`
	CardToken   string        `json:"card_token,omitempty"`
	CardBrand   string        `json:"card_brand,omitempty"`
}

// PixTransactionData carries what the payer needs to complete a PIX charge.

type PixTransactionData struct {
	QRCodeBase64 string `json:"qr_code_base64,omitempty"`
	QRCode       string `json:"qr_code,omitempty"`
	TicketURL    string `json:"ticket_url,omitempty"`
}

// PaymentRecord is the gateway response reduced to what the session needs:
// the provider payment identifier, a normalized status and, for PIX, the QR
// presentation payload.

type PaymentRecord struct {
	ID           string              `json:"id"`
	Status       PaymentStatus       `json:"status"`
	StatusDetail string              `json:"status_detail,omitempty"`
	Pix          *PixTransactionData `json:"pix,omitempty"`
}

// CardDetails exists only long enough to be exchanged for a single-use token.
// It is never persisted and never placed on a PaymentIntent.

type CardDetails struct {
	Number          string `json:"number" validate:"required"`
	ExpirationMonth int    `json:"expiration_month" validate:"required,min=1,max=12"`
	ExpirationYear  int    `json:"expiration_year" validate:"required"`
	SecurityCode    string `json:"security_code" validate:"required"`
	HolderName      string `json:"holder_name" validate:"required"`
	Brand           string `json:"brand" validate:"required"`
}
