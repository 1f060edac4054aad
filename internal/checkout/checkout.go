package checkout

import (
	"strings"
	"sync"
	"time"

	"github.com/idir2023/argan-project/internal/domain"
)

// Step is the position of a checkout in its flow. Forward transitions
// are shipping -> payment -> review -> success; payment and review can
// step back for edits without losing entered data.
type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
	StepReview   Step = "review"
	StepSuccess  Step = "success"
)

func (s Step) String() string {
	return string(s)
}

// IsTerminal reports whether the checkout is finished for the session.
func (s Step) IsTerminal() bool {
	return s == StepSuccess
}

type PaymentMethod string

const (
	MethodCashOnDelivery PaymentMethod = "cod"
	MethodCard           PaymentMethod = "card"
)

// ShippingInfo is the address form. Email and Zip are optional.
type ShippingInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

// CardDetails is the card sub-form, collected only for card payments.
type CardDetails struct {
	NameOnCard string `json:"nameOnCard"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// PaymentInfo is the payment form.
type PaymentInfo struct {
	Method PaymentMethod `json:"method"`
	Card   CardDetails   `json:"card"`
}

// Checkout is one session's flow through the steps. Form data is held
// independently of the step pointer, so stepping back for edits keeps
// everything already entered. Handlers for the same session run
// concurrently, so every access goes through mu.
type Checkout struct {
	mu       sync.Mutex
	step     Step
	shipping ShippingInfo
	payment  PaymentInfo

	// Snapshot of the cart captured at submission, kept so the
	// confirmation payloads can still be composed after the live cart
	// has been cleared.
	order *domain.Order
}

func New() *Checkout {
	return &Checkout{
		step:    StepShipping,
		payment: PaymentInfo{Method: MethodCashOnDelivery},
	}
}

func (c *Checkout) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

func (c *Checkout) Shipping() ShippingInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shipping
}

func (c *Checkout) Payment() PaymentInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.payment
}

// Order returns the persisted order once the flow reached success, nil
// before that.
func (c *Checkout) Order() *domain.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order
}

// SubmitShipping validates the address form and advances to payment.
func (c *Checkout) SubmitShipping(info ShippingInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepShipping {
		return ErrIllegalTransition
	}

	if err := validateShipping(info); err != nil {
		return err
	}

	c.shipping = info
	c.step = StepPayment
	return nil
}

// SubmitPayment validates the chosen method and advances to review.
// Cash on delivery passes through; card details are checked against
// the current month/year.
func (c *Checkout) SubmitPayment(info PaymentInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepPayment {
		return ErrIllegalTransition
	}

	if info.Method != MethodCashOnDelivery && info.Method != MethodCard {
		verr := domain.NewValidationError()
		verr.Add("method", "unknown payment method")
		return verr
	}

	if info.Method == MethodCard {
		info.Card.CardNumber = FormatCardNumber(info.Card.CardNumber)
		info.Card.Expiry = FormatExpiry(info.Card.Expiry)
		info.Card.CVV = digitsOnly(info.Card.CVV, 4)
		if err := ValidateCard(info.Card, time.Now()); err != nil {
			c.payment = info // keep what was typed for the next attempt
			return err
		}
	}

	c.payment = info
	c.step = StepReview
	return nil
}

// Back steps payment to shipping or review to payment, keeping all
// entered data.
func (c *Checkout) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.step {
	case StepPayment:
		c.step = StepShipping
	case StepReview:
		c.step = StepPayment
	default:
		return ErrIllegalTransition
	}
	return nil
}

// Edit jumps from review back to an earlier step. These are the review
// screen's edit shortcuts, not resets.
func (c *Checkout) Edit(step Step) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step != StepReview || (step != StepShipping && step != StepPayment) {
		return ErrIllegalTransition
	}
	c.step = step
	return nil
}

// Customer flattens the collected forms into the shape stored on an
// order record.
func (c *Checkout) Customer() domain.Customer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customerLocked()
}

func (c *Checkout) customerLocked() domain.Customer {
	return domain.Customer{
		FirstName:     c.shipping.FirstName,
		LastName:      c.shipping.LastName,
		Phone:         c.shipping.Phone,
		Email:         c.shipping.Email,
		Address:       c.shipping.Address,
		City:          c.shipping.City,
		PaymentMethod: string(c.payment.Method),
	}
}

func validateShipping(info ShippingInfo) error {
	verr := domain.NewValidationError()
	required := map[string]string{
		"firstName": info.FirstName,
		"lastName":  info.LastName,
		"phone":     info.Phone,
		"address":   info.Address,
		"city":      info.City,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			verr.Add(field, "required")
		}
	}
	return verr.ErrOrNil()
}
