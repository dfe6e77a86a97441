package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zaiqaeats/storefront/internal/cart"
	"github.com/zaiqaeats/storefront/internal/notify"
	"github.com/zaiqaeats/storefront/pkg/config"
	"github.com/zaiqaeats/storefront/pkg/enums"
	pkgerrors "github.com/zaiqaeats/storefront/pkg/errors"
	"github.com/zaiqaeats/storefront/pkg/logger"
	"github.com/zaiqaeats/storefront/pkg/metrics"
)

const (
	orderIDMin = 10000
	orderIDMax = 99999
)

type cartAccess interface {
	Get(ctx context.Context, sessionID string) (cart.Snapshot, error)
	Clear(ctx context.Context, sessionID string) error
}

type submitLocker interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) error
	SubmitLockKey(sessionID string) string
}

// Confirmation is the result of a completed order submission.
type Confirmation struct {
	OrderID          int                 `json:"order_id"`
	State            string              `json:"state"`
	PaymentMethod    enums.PaymentMethod `json:"payment_method"`
	Subtotal         string              `json:"subtotal"`
	DeliveryFee      string              `json:"delivery_fee"`
	Total            string              `json:"total"`
	NotificationSent bool                `json:"notification_sent"`
}

// Service runs the order submission workflow.
type Service interface {
	Submit(ctx context.Context, sessionID string, fields Fields) (*Confirmation, error)
}

type service struct {
	carts   cartAccess
	locker  submitLocker
	sender  notify.Sender
	cfg     config.CheckoutConfig
	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics
	idGen   func() int
	now     func() time.Time
}

// Option tunes service construction; used by tests to pin randomness and time.
type Option func(*service)

// WithOrderIDGenerator overrides the random order id source.
func WithOrderIDGenerator(gen func() int) Option {
	return func(s *service) { s.idGen = gen }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService builds the checkout workflow service.
func NewService(carts cartAccess, locker submitLocker, sender notify.Sender, cfg config.CheckoutConfig, logg *logger.Logger, m *metrics.StorefrontMetrics, opts ...Option) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart access required")
	}
	if locker == nil {
		return nil, fmt.Errorf("submit locker required")
	}
	if sender == nil {
		return nil, fmt.Errorf("notification sender required")
	}
	svc := &service{
		carts:   carts,
		locker:  locker,
		sender:  sender,
		cfg:     cfg,
		logg:    logg,
		metrics: m,
		idGen:   randomOrderID,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func randomOrderID() int {
	return orderIDMin + rand.Intn(orderIDMax-orderIDMin+1)
}

// Submit validates the form, totals the cart, and confirms the order. The
// confirmation never depends on the notification email: a failed send is
// logged and counted, and the order still confirms. Concurrent submissions
// for the same session are rejected while the first one holds the lock.
func (s *service) Submit(ctx context.Context, sessionID string, fields Fields) (*Confirmation, error) {
	started := s.now()
	state := enums.SubmissionStateIdle

	state, err := s.advance(state, enums.SubmissionStateValidating)
	if err != nil {
		return nil, err
	}

	fields = fields.Normalized()
	if fieldErr := fields.Validate(s.cfg.AddressMinLen); fieldErr != nil {
		s.observe("validation_failed", started)
		return nil, validationError(fieldErr)
	}
	method, err := enums.ParsePaymentMethod(fields.PaymentMethod)
	if err != nil {
		s.observe("validation_failed", started)
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}

	snapshot, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		s.observe("error", started)
		return nil, err
	}
	if snapshot.ItemCount == 0 {
		s.observe("empty_cart", started)
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "cart is empty")
	}

	lockKey := s.locker.SubmitLockKey(sessionID)
	acquired, err := s.locker.SetNX(ctx, lockKey, "1", s.cfg.SubmitLockTTL)
	if err != nil {
		s.observe("error", started)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquiring submit lock")
	}
	if !acquired {
		s.observe("locked", started)
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "an order submission is already in progress")
	}
	defer func() {
		if err := s.locker.Del(ctx, lockKey); err != nil && s.logg != nil {
			s.logg.Error(ctx, "releasing submit lock", err)
		}
	}()

	state, err = s.advance(state, enums.SubmissionStateSubmitting)
	if err != nil {
		s.observe("error", started)
		return nil, err
	}

	orderID := s.idGen()
	ctx = s.withOrderContext(ctx, sessionID, orderID)

	fee, err := s.cfg.DeliveryFeeAmount()
	if err != nil {
		s.observe("error", started)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reading delivery fee")
	}
	subtotal := snapshot.Subtotal
	total := subtotal.Add(fee).Round(2)

	notified := s.notifyOrder(ctx, orderID, fields, method, snapshot, fee, total)

	if err := s.carts.Clear(ctx, sessionID); err != nil && s.logg != nil {
		// The order already went through; a lingering cart slot just expires.
		s.logg.Error(ctx, "clearing cart after order", err)
	}

	if _, err = s.advance(state, enums.SubmissionStateConfirmed); err != nil {
		s.observe("error", started)
		return nil, err
	}

	if s.logg != nil {
		s.logg.Info(ctx, "order confirmed")
	}
	s.metrics.IncOrderConfirmed(method.String())
	s.observe("confirmed", started)

	return &Confirmation{
		OrderID:          orderID,
		State:            enums.SubmissionStateConfirmed.String(),
		PaymentMethod:    method,
		Subtotal:         subtotal.StringFixed(2),
		DeliveryFee:      fee.StringFixed(2),
		Total:            total.StringFixed(2),
		NotificationSent: notified,
	}, nil
}

func (s *service) notifyOrder(ctx context.Context, orderID int, fields Fields, method enums.PaymentMethod, snapshot cart.Snapshot, fee, total decimal.Decimal) bool {
	summaries := make([]string, 0, len(snapshot.Lines))
	orders := make([]notify.OrderLine, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		summaries = append(summaries, fmt.Sprintf("%s x %d", line.Name, line.Quantity))
		orders = append(orders, notify.OrderLine{
			Name:  line.Name,
			Units: line.Quantity,
			Price: line.UnitPrice.StringFixed(2),
		})
	}
	params := notify.TemplateParams{
		ToEmail:       fields.Email,
		ToName:        fields.Name,
		OrderID:       orderID,
		Phone:         fields.Phone,
		Address:       fields.Address,
		PaymentMethod: method.Label(),
		Orders:        orders,
		Cost: notify.CostBreakdown{
			Subtotal: snapshot.Subtotal.StringFixed(2),
			Delivery: fee.StringFixed(2),
			Total:    total.StringFixed(2),
		},
		Items: strings.Join(summaries, "<br>"),
		Total: snapshot.Subtotal.StringFixed(2),
	}

	notifyCtx, cancel := context.WithTimeout(ctx, s.cfg.NotifyTimeout)
	defer cancel()

	if err := s.sender.Send(notifyCtx, params); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "order email failed; confirming anyway", err)
		}
		s.metrics.IncNotifyFailure()
		return false
	}
	return true
}

func (s *service) advance(from, to enums.SubmissionState) (enums.SubmissionState, error) {
	if !from.CanTransition(to) {
		return from, pkgerrors.New(pkgerrors.CodeStateConflict, "submission state transition disallowed").
			WithDetails(map[string]string{"from": from.String(), "to": to.String()})
	}
	return to, nil
}

func (s *service) withOrderContext(ctx context.Context, sessionID string, orderID int) context.Context {
	if s.logg == nil {
		return ctx
	}
	ctx = s.logg.WithSessionID(ctx, sessionID)
	return s.logg.WithOrderID(ctx, orderID)
}

func (s *service) observe(outcome string, started time.Time) {
	s.metrics.ObserveSubmitDuration(outcome, s.now().Sub(started))
}
