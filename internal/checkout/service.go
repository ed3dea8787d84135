package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tamonkoch/drink-shop-backend/internal/cart"
	"github.com/tamonkoch/drink-shop-backend/internal/directory"
	"github.com/tamonkoch/drink-shop-backend/internal/notify"
	"github.com/tamonkoch/drink-shop-backend/internal/order"
)

var (
	// ErrEmptyCart means checkout cannot proceed: the caller should send
	// the visitor back to the catalog.
	ErrEmptyCart     = errors.New("cart is empty")
	ErrPaymentFailed = errors.New("payment failed")
)

// QuarterDirectory is the slice of the directory service checkout needs
// to verify that a submitted quarter belongs to the submitted city.
type QuarterDirectory interface {
	QuartersByCity(ctx context.Context, cityValue string) []directory.Quarter
}

// OrderRecorder is satisfied by order.Service.
type OrderRecorder interface {
	Create(sessionID string, ord order.Order) (order.Order, error)
}

// Service drives the checkout wizard. All step movement goes through the
// transition table; handlers never decide steps themselves.
type Service struct {
	sessions  Repository
	cart      cart.ServiceInterface
	orders    OrderRecorder
	directory QuarterDirectory
	gateway   Gateway
	notifier  notify.Notifier
}

func NewService(sessions Repository, cartSvc cart.ServiceInterface, orders OrderRecorder, dir QuarterDirectory, gw Gateway, notifier notify.Notifier) *Service {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	return &Service{
		sessions:  sessions,
		cart:      cartSvc,
		orders:    orders,
		directory: dir,
		gateway:   gw,
		notifier:  notifier,
	}
}

// View is the checkout state returned to the client, with totals
// recomputed on every read so a delivery method change is always
// reflected before final submission.
type View struct {
	Step          Step            `json:"step"`
	Shipping      *ShippingData   `json:"shipping,omitempty"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
	Cart          cart.Summary    `json:"cart"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee"`
	OrderTotal    decimal.Decimal `json:"orderTotal"`
	OrderID       int             `json:"orderID,omitempty"`
}

func (s *Service) view(sess Session, summary cart.Summary) View {
	fee := decimal.Zero
	if sess.Shipping != nil {
		fee = DeliveryFee(sess.Shipping.DeliveryMethod)
	}
	return View{
		Step:          sess.Step,
		Shipping:      sess.Shipping,
		PaymentMethod: sess.PaymentMethod,
		Cart:          summary,
		DeliveryFee:   fee,
		OrderTotal:    summary.TotalPrice.Add(fee),
		OrderID:       sess.OrderID,
	}
}

func (s *Service) getOrCreate(sessionID string) Session {
	if sess, ok := s.sessions.Get(sessionID); ok {
		return sess
	}
	sess := Session{ID: sessionID, Step: StepShipping}
	s.sessions.Save(sess)
	return sess
}

// Get returns the current checkout view, creating a fresh shipping-step
// session for first-time visitors.
func (s *Service) Get(sessionID string) (View, error) {
	sess := s.getOrCreate(sessionID)
	summary, err := s.cart.GetCart(sessionID)
	if err != nil {
		return View{}, err
	}
	return s.view(sess, summary), nil
}

// SubmitShipping validates the shipping form and advances to payment.
// A non-empty error map means the form was rejected field by field.
func (s *Service) SubmitShipping(ctx context.Context, sessionID string, data ShippingData) (View, map[string]string, error) {
	sess := s.getOrCreate(sessionID)
	next, err := transition(sess.Step, eventSubmitShipping)
	if err != nil {
		return View{}, nil, err
	}

	// a city change invalidates any previously chosen quarter
	if sess.Shipping != nil && sess.Shipping.City != data.City {
		sess.Shipping.Quarter = ""
		s.sessions.Save(sess)
	}

	errs := ValidateShipping(data)
	if _, bad := errs["quarter"]; !bad && data.City != "" {
		if !s.quarterInCity(ctx, data.City, data.Quarter) {
			errs["quarter"] = fmt.Sprintf("quarter %q does not belong to city %q", data.Quarter, data.City)
		}
	}
	if len(errs) > 0 {
		return View{}, errs, nil
	}

	summary, err := s.cart.GetCart(sessionID)
	if err != nil {
		return View{}, nil, err
	}
	if summary.TotalItems == 0 {
		// checkout is not meaningful with zero line items
		return View{}, nil, ErrEmptyCart
	}

	sess.Shipping = &data
	sess.Step = next
	s.sessions.Save(sess)
	return s.view(sess, summary), nil, nil
}

func (s *Service) quarterInCity(ctx context.Context, city, quarter string) bool {
	quarter = strings.ToLower(strings.TrimSpace(quarter))
	for _, q := range s.directory.QuartersByCity(ctx, city) {
		if strings.ToLower(q.Value) == quarter {
			return true
		}
	}
	return false
}

// SubmitPayment validates the payment form, charges the gateway and on
// success records the order and clears the cart. On failure the session
// stays on the payment step and the cart is untouched.
func (s *Service) SubmitPayment(ctx context.Context, sessionID string, data PaymentData) (View, map[string]string, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return View{}, nil, ErrInvalidTransition
	}
	next, err := transition(sess.Step, eventSubmitPayment)
	if err != nil {
		return View{}, nil, err
	}

	errs := ValidatePayment(data)
	if len(errs) > 0 {
		return View{}, errs, nil
	}

	summary, err := s.cart.GetCart(sessionID)
	if err != nil {
		return View{}, nil, err
	}
	if summary.TotalItems == 0 {
		return View{}, nil, ErrEmptyCart
	}

	fee := DeliveryFee(sess.Shipping.DeliveryMethod)
	amount := summary.TotalPrice.Add(fee)

	res, err := s.gateway.Charge(ctx, data, amount)
	if err != nil {
		s.notifier.Notify("Payment failed", err.Error(), notify.KindError)
		return View{}, nil, ErrPaymentFailed
	}
	if !res.Success {
		s.notifier.Notify("Payment failed", res.FailureReason, notify.KindError)
		return View{}, nil, ErrPaymentFailed
	}

	cartMap := make(map[string]int, len(summary.Items))
	for _, it := range summary.Items {
		cartMap[strconv.Itoa(it.ID)] = it.Quantity
	}
	created, err := s.orders.Create(sessionID, order.Order{
		Cart:          cartMap,
		Quantity:      summary.TotalItems,
		TotalPrice:    summary.TotalPrice,
		ShippingPrice: fee,
		GrandPrice:    amount,
		Status:        order.StatusConfirmed,
	})
	if err != nil {
		return View{}, nil, err
	}

	if err := s.cart.ClearCart(sessionID); err != nil {
		return View{}, nil, err
	}

	sess.Step = next
	sess.PaymentMethod = data.Method
	sess.OrderID = created.OrderID
	s.sessions.Save(sess)
	s.notifier.Notify("Order confirmed", fmt.Sprintf("order #%d placed", created.OrderID), notify.KindSuccess)

	cleared, err := s.cart.GetCart(sessionID)
	if err != nil {
		return View{}, nil, err
	}
	return s.view(sess, cleared), nil, nil
}

// Back returns from payment to shipping, the only backward edge.
func (s *Service) Back(sessionID string) (View, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return View{}, ErrInvalidTransition
	}
	next, err := transition(sess.Step, eventBack)
	if err != nil {
		return View{}, err
	}
	sess.Step = next
	s.sessions.Save(sess)

	summary, err := s.cart.GetCart(sessionID)
	if err != nil {
		return View{}, err
	}
	return s.view(sess, summary), nil
}

// Abandon discards the checkout session entirely.
func (s *Service) Abandon(sessionID string) {
	s.sessions.Delete(sessionID)
}
