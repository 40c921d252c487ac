package entities

import "time"

// SessionStatus is the lifecycle of one checkout attempt.
//
// Transitions are owned by the checkout session use case:
//   - idle -> processing on submit
//   - processing -> approved | rejected on a terminal payment status
//   - processing -> timed_out when the poll ceiling elapses
//   - rejected | timed_out -> idle on retry

type SessionStatus string

const (
	SessionStatusIdle       SessionStatus = "idle"
	SessionStatusProcessing SessionStatus = "processing"
	SessionStatusApproved   SessionStatus = "approved"
	SessionStatusRejected   SessionStatus = "rejected"
	SessionStatusTimedOut   SessionStatus = "timed_out"
)

// CheckoutSession is a read snapshot of one checkout attempt. At most one
// payment identifier is associated with a session at any time; retry clears
// it before a new submission is allowed.

type CheckoutSession struct {
	ID        string              `json:"id"`
	PlanID    string              `json:"plan_id"`
	Customer  CustomerRecord      `json:"customer"`
	Status    SessionStatus       `json:"status"`
	PaymentID string              `json:"payment_id,omitempty"`
	Pix       *PixTransactionData `json:"pix,omitempty"`
	LastError string              `json:"last_error,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
