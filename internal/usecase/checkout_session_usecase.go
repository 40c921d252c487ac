package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"checkout_pro/internal/domain/entities"
	"checkout_pro/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrSessionNotFound      = errors.New("checkout session not found")
	ErrSessionNotIdle       = errors.New("checkout session already submitted")
	ErrSessionNotRetryable  = errors.New("checkout session is not in a failed state")
	ErrInvalidCustomer      = errors.New("invalid customer record")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrMissingCardDetails   = errors.New("missing or invalid card details")
)

// GatewayFactory builds a payment gateway bound to one access token. The
// credential is resolved once per session and pinned, so replacing the stored
// credential never changes the gateway a running session uses.

type GatewayFactory func(accessToken string) (interfaces.IPaymentGateway, error)

// CompletionCallback receives the final payment identifier. It fires at most
// once per session, when the session reaches approved.

type CompletionCallback func(sessionID, paymentID string)

// CheckoutConfig bounds the PIX confirmation polling loop.

type CheckoutConfig struct {
	PollInterval    time.Duration
	PollMaxAttempts int
}

// ICheckoutSessionUseCase drives one checkout attempt through the
// idle -> processing -> approved | rejected | timed_out state machine.
//
// Submit issues exactly one payment creation call per transition out of idle.
// A non-terminal creation status starts a polling loop whose lifetime is tied
// to the session: it stops on a terminal status, at the poll ceiling, or when
// the session is torn down.

type ICheckoutSessionUseCase interface {
	Create(ctx context.Context, planID string, customer entities.CustomerRecord) (entities.CheckoutSession, error)
	Submit(ctx context.Context, sessionID string, method entities.PaymentMethod, card *entities.CardDetails) (entities.CheckoutSession, error)
	Get(sessionID string) (entities.CheckoutSession, error)
	Retry(sessionID string) (entities.CheckoutSession, error)
	Teardown(sessionID string) error
}

type CheckoutSessionUseCase struct {
	plans       IPlanUseCase
	credentials ICredentialUseCase
	newGateway  GatewayFactory
	onApproved  CompletionCallback
	validate    *validator.Validate
	cfg         CheckoutConfig

	mu       sync.Mutex
	sessions map[string]*checkoutSession
}

var _ ICheckoutSessionUseCase = (*CheckoutSessionUseCase)(nil)

func NewCheckoutSessionUseCase(plans IPlanUseCase, credentials ICredentialUseCase, newGateway GatewayFactory, cfg CheckoutConfig, onApproved CompletionCallback) *CheckoutSessionUseCase {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 3 * time.Second
	}
	if cfg.PollMaxAttempts <= 0 {
		cfg.PollMaxAttempts = 100
	}
	return &CheckoutSessionUseCase{
		plans:       plans,
		credentials: credentials,
		newGateway:  newGateway,
		onApproved:  onApproved,
		validate:    validator.New(),
		cfg:         cfg,
		sessions:    map[string]*checkoutSession{},
	}
}

// checkoutSession is the mutable server-side state of one checkout attempt.
// All fields are guarded by mu; snapshots are handed out by value.
type checkoutSession struct {
	mu sync.Mutex

	id        string
	plan      entities.Plan
	customer  entities.CustomerRecord
	status    entities.SessionStatus
	paymentID string
	pix       *entities.PixTransactionData
	lastError string
	createdAt time.Time
	updatedAt time.Time

	gateway    interfaces.IPaymentGateway
	cancelPoll context.CancelFunc
	notified   bool
	tornDown   bool
}

func (s *checkoutSession) snapshotLocked() entities.CheckoutSession {
	snap := entities.CheckoutSession{
		ID:        s.id,
		PlanID:    s.plan.ID,
		Customer:  s.customer,
		Status:    s.status,
		PaymentID: s.paymentID,
		LastError: s.lastError,
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
	if s.pix != nil {
		pix := *s.pix
		snap.Pix = &pix
	}
	return snap
}

func (u *CheckoutSessionUseCase) Create(ctx context.Context, planID string, customer entities.CustomerRecord) (entities.CheckoutSession, error) {
	plan, err := u.plans.GetByID(planID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if err := u.validate.Struct(customer); err != nil {
		log.Printf("[checkout][usecase] customer validation failed plan_id=%s err=%v", planID, err)
		return entities.CheckoutSession{}, errors.Join(ErrInvalidCustomer, err)
	}

	now := time.Now().UTC()
	s := &checkoutSession{
		id:        uuid.NewString(),
		plan:      plan,
		customer:  customer,
		status:    entities.SessionStatusIdle,
		createdAt: now,
		updatedAt: now,
	}

	u.mu.Lock()
	u.sessions[s.id] = s
	u.mu.Unlock()

	log.Printf("[checkout][usecase] session created session_id=%s plan_id=%s price=%.2f", s.id, plan.ID, plan.Price)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

func (u *CheckoutSessionUseCase) Get(sessionID string) (entities.CheckoutSession, error) {
	s := u.lookup(sessionID)
	if s == nil {
		return entities.CheckoutSession{}, ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

// Submit moves an idle session to processing and issues the payment creation
// call. No network call is issued when no credential is configured.
func (u *CheckoutSessionUseCase) Submit(ctx context.Context, sessionID string, method entities.PaymentMethod, card *entities.CardDetails) (entities.CheckoutSession, error) {
	s := u.lookup(sessionID)
	if s == nil {
		return entities.CheckoutSession{}, ErrSessionNotFound
	}

	switch method {
	case entities.PaymentMethodPix:
	case entities.PaymentMethodCard:
		if card == nil {
			return entities.CheckoutSession{}, ErrMissingCardDetails
		}
		if err := u.validate.Struct(*card); err != nil {
			return entities.CheckoutSession{}, errors.Join(ErrMissingCardDetails, err)
		}
	default:
		return entities.CheckoutSession{}, ErrInvalidPaymentMethod
	}

	s.mu.Lock()
	if s.status != entities.SessionStatusIdle {
		defer s.mu.Unlock()
		return s.snapshotLocked(), ErrSessionNotIdle
	}
	if s.gateway == nil {
		cred, err := u.credentials.Current(ctx)
		if err != nil {
			s.mu.Unlock()
			log.Printf("[checkout][usecase] submit blocked session_id=%s err=%v", sessionID, err)
			return entities.CheckoutSession{}, err
		}
		gw, err := u.newGateway(cred.AccessToken)
		if err != nil {
			s.mu.Unlock()
			return entities.CheckoutSession{}, err
		}
		s.gateway = gw
	}
	gw := s.gateway
	intent := u.intentFor(s, method)
	s.status = entities.SessionStatusProcessing
	s.lastError = ""
	s.updatedAt = time.Now().UTC()
	s.mu.Unlock()

	log.Printf("[checkout][usecase] submit start session_id=%s method=%s amount=%.2f", sessionID, method, intent.Amount)

	var rec entities.PaymentRecord
	var err error
	switch method {
	case entities.PaymentMethodPix:
		rec, err = gw.CreatePixPayment(ctx, intent)
	case entities.PaymentMethodCard:
		var token string
		token, err = gw.CreateCardToken(ctx, *card)
		if err == nil {
			intent.CardToken = token
			intent.CardBrand = card.Brand
			rec, err = gw.CreateCardPayment(ctx, intent)
		}
	}
	if err != nil {
		// Creation failures are fatal to the attempt; the caller may retry.
		u.reject(s, err.Error())
		log.Printf("[checkout][usecase] payment creation failed session_id=%s method=%s err=%v", sessionID, method, err)
		snap, _ := u.Get(sessionID)
		return snap, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The session may have been torn down while the creation call was in
	// flight; a torn-down session never starts a poller and never notifies.
	if s.tornDown {
		log.Printf("[checkout][usecase] payment created for torn-down session session_id=%s payment_id=%s", sessionID, rec.ID)
		return entities.CheckoutSession{}, ErrSessionNotFound
	}
	s.paymentID = rec.ID
	s.pix = rec.Pix
	s.updatedAt = time.Now().UTC()

	switch rec.Status {
	case entities.PaymentStatusApproved:
		s.status = entities.SessionStatusApproved
		u.notifyLocked(s)
		log.Printf("[checkout][usecase] payment approved session_id=%s payment_id=%s", sessionID, rec.ID)
	case entities.PaymentStatusRejected, entities.PaymentStatusCancelled:
		s.status = entities.SessionStatusRejected
		s.lastError = rejectionMessage(rec)
		log.Printf("[checkout][usecase] payment rejected session_id=%s payment_id=%s detail=%s", sessionID, rec.ID, rec.StatusDetail)
	default:
		// Pending confirmation: poll until terminal, ceiling or teardown.
		pollCtx, cancel := context.WithCancel(context.Background())
		s.cancelPoll = cancel
		go u.poll(pollCtx, s, gw, rec.ID)
		log.Printf("[checkout][usecase] awaiting confirmation session_id=%s payment_id=%s interval=%s max_attempts=%d",
			sessionID, rec.ID, u.cfg.PollInterval, u.cfg.PollMaxAttempts)
	}

	return s.snapshotLocked(), nil
}

// Retry returns a failed session to idle so the caller may resubmit. The
// previous payment identifier and QR payload are discarded.
func (u *CheckoutSessionUseCase) Retry(sessionID string) (entities.CheckoutSession, error) {
	s := u.lookup(sessionID)
	if s == nil {
		return entities.CheckoutSession{}, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != entities.SessionStatusRejected && s.status != entities.SessionStatusTimedOut {
		return s.snapshotLocked(), ErrSessionNotRetryable
	}
	s.status = entities.SessionStatusIdle
	s.paymentID = ""
	s.pix = nil
	s.lastError = ""
	s.updatedAt = time.Now().UTC()
	log.Printf("[checkout][usecase] session reset for retry session_id=%s", sessionID)
	return s.snapshotLocked(), nil
}

// Teardown discards the session and cancels any polling still running.
func (u *CheckoutSessionUseCase) Teardown(sessionID string) error {
	u.mu.Lock()
	s, ok := u.sessions[sessionID]
	if ok {
		delete(u.sessions, sessionID)
	}
	u.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	s.mu.Lock()
	s.tornDown = true
	cancel := s.cancelPoll
	s.cancelPoll = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	log.Printf("[checkout][usecase] session torn down session_id=%s", sessionID)
	return nil
}

// poll checks the payment status at a fixed interval until a terminal status
// is observed or the ceiling elapses. Polls never overlap: the next tick is
// consumed only after the previous call returned. Individual poll failures
// are logged and skipped so a transient network error cannot fail a payment
// that in fact succeeded.
func (u *CheckoutSessionUseCase) poll(ctx context.Context, s *checkoutSession, gw interfaces.IPaymentGateway, paymentID string) {
	ticker := time.NewTicker(u.cfg.PollInterval)
	defer ticker.Stop()

	for attempt := 1; attempt <= u.cfg.PollMaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		rec, err := gw.GetPaymentStatus(ctx, paymentID)
		if err != nil {
			log.Printf("[checkout][usecase] status poll failed session_id=%s payment_id=%s attempt=%d err=%v", s.id, paymentID, attempt, err)
			continue
		}

		switch rec.Status {
		case entities.PaymentStatusApproved:
			u.approve(s, paymentID)
			return
		case entities.PaymentStatusRejected, entities.PaymentStatusCancelled:
			u.reject(s, rejectionMessage(rec))
			return
		}
	}

	// Ceiling reached without a terminal status: terminal timed_out instead
	// of leaving the session in processing forever.
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tornDown || s.status != entities.SessionStatusProcessing {
		return
	}
	s.status = entities.SessionStatusTimedOut
	s.lastError = "payment confirmation timed out; retry to start a new attempt"
	s.cancelPoll = nil
	s.updatedAt = time.Now().UTC()
	log.Printf("[checkout][usecase] confirmation timed out session_id=%s payment_id=%s attempts=%d", s.id, paymentID, u.cfg.PollMaxAttempts)
}

func (u *CheckoutSessionUseCase) approve(s *checkoutSession, paymentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tornDown || s.status != entities.SessionStatusProcessing {
		return
	}
	s.status = entities.SessionStatusApproved
	s.paymentID = paymentID
	s.cancelPoll = nil
	s.updatedAt = time.Now().UTC()
	u.notifyLocked(s)
	log.Printf("[checkout][usecase] payment approved session_id=%s payment_id=%s", s.id, paymentID)
}

func (u *CheckoutSessionUseCase) reject(s *checkoutSession, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tornDown || s.status != entities.SessionStatusProcessing {
		return
	}
	s.status = entities.SessionStatusRejected
	s.lastError = reason
	s.cancelPoll = nil
	s.updatedAt = time.Now().UTC()
}

// notifyLocked fires the completion callback exactly once per session. The
// callback runs on its own goroutine so a slow consumer cannot hold the
// session lock.
func (u *CheckoutSessionUseCase) notifyLocked(s *checkoutSession) {
	if s.notified || u.onApproved == nil {
		return
	}
	s.notified = true
	go u.onApproved(s.id, s.paymentID)
}

func (u *CheckoutSessionUseCase) intentFor(s *checkoutSession, method entities.PaymentMethod) entities.PaymentIntent {
	first, last := s.customer.FirstLastName()
	return entities.PaymentIntent{
		Amount:      s.plan.Price,
		Description: s.plan.Name + " - " + s.plan.Description,
		Method:      method,
		Payer: entities.Payer{
			Email:                s.customer.Email,
			FirstName:            first,
			LastName:             last,
			IdentificationType:   "CPF",
			IdentificationNumber: s.customer.Document,
		},
	}
}

func (u *CheckoutSessionUseCase) lookup(sessionID string) *checkoutSession {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sessions[sessionID]
}

func rejectionMessage(rec entities.PaymentRecord) string {
	msg := "payment " + string(rec.Status)
	if rec.StatusDetail != "" {
		msg += ": " + rec.StatusDetail
	}
	return msg
}
