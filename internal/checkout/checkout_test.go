package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/idir2023/argan-project/internal/cart"
	"github.com/idir2023/argan-project/internal/domain"
	"github.com/idir2023/argan-project/internal/orders"
	"github.com/idir2023/argan-project/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipping() ShippingInfo {
	return ShippingInfo{
		FirstName: "سارة",
		LastName:  "العمراني",
		Phone:     "0600000000",
		Email:     "sara@example.com",
		Address:   "شارع الحسن الثاني",
		City:      "أكادير",
	}
}

func TestSubmitShipping_RequiredFields(t *testing.T) {
	c := New()

	err := c.SubmitShipping(ShippingInfo{Email: "sara@example.com"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"firstName", "lastName", "phone", "address", "city"} {
		assert.Contains(t, verr.Fields, field)
	}
	assert.NotContains(t, verr.Fields, "email")
	assert.Equal(t, StepShipping, c.Step())
}

func TestSubmitShipping_AdvancesToPayment(t *testing.T) {
	c := New()

	require.NoError(t, c.SubmitShipping(validShipping()))
	assert.Equal(t, StepPayment, c.Step())
}

func TestSubmitPayment_CashOnDeliveryPassesThrough(t *testing.T) {
	c := New()
	require.NoError(t, c.SubmitShipping(validShipping()))

	require.NoError(t, c.SubmitPayment(PaymentInfo{Method: MethodCashOnDelivery}))
	assert.Equal(t, StepReview, c.Step())
}

func TestSubmitPayment_FifteenDigitCardRejected(t *testing.T) {
	c := New()
	require.NoError(t, c.SubmitShipping(validShipping()))

	err := c.SubmitPayment(PaymentInfo{
		Method: MethodCard,
		Card: CardDetails{
			NameOnCard: "SARA AMRANI",
			CardNumber: "4111 1111 1111 111",
			Expiry:     "12/28",
			CVV:        "123",
		},
	})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "cardNumber")
	assert.Equal(t, StepPayment, c.Step())
}

func TestSubmitPayment_SixteenDigitCardAccepted(t *testing.T) {
	c := New()
	require.NoError(t, c.SubmitShipping(validShipping()))

	err := c.SubmitPayment(PaymentInfo{
		Method: MethodCard,
		Card: CardDetails{
			NameOnCard: "SARA AMRANI",
			CardNumber: "4111111111111111",
			Expiry:     "12/39",
			CVV:        "123",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, StepReview, c.Step())
	// Raw input was normalized into display form.
	assert.Equal(t, "4111 1111 1111 1111", c.Payment().Card.CardNumber)
}

func TestBack_PreservesEnteredData(t *testing.T) {
	c := New()
	shipping := validShipping()
	require.NoError(t, c.SubmitShipping(shipping))
	require.NoError(t, c.SubmitPayment(PaymentInfo{Method: MethodCashOnDelivery}))

	require.NoError(t, c.Back())
	assert.Equal(t, StepPayment, c.Step())
	require.NoError(t, c.Back())
	assert.Equal(t, StepShipping, c.Step())

	// Nothing entered was lost by stepping back.
	assert.Equal(t, shipping, c.Shipping())
	assert.Equal(t, MethodCashOnDelivery, c.Payment().Method)
}

func TestBack_FromShippingIsIllegal(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Back(), ErrIllegalTransition)
}

func TestEdit_OnlyFromReview(t *testing.T) {
	c := New()
	require.NoError(t, c.SubmitShipping(validShipping()))
	assert.ErrorIs(t, c.Edit(StepShipping), ErrIllegalTransition)

	require.NoError(t, c.SubmitPayment(PaymentInfo{Method: MethodCashOnDelivery}))
	require.NoError(t, c.Edit(StepShipping))
	assert.Equal(t, StepShipping, c.Step())
	assert.Equal(t, validShipping(), c.Shipping())
}

func TestSubmitShipping_OutOfOrderIsIllegal(t *testing.T) {
	c := New()
	require.NoError(t, c.SubmitShipping(validShipping()))

	assert.ErrorIs(t, c.SubmitShipping(validShipping()), ErrIllegalTransition)
}

// failingRepo rejects every write so the submission rollback path can
// be exercised.
type failingRepo struct{}

var errStoreDown = errors.New("store down")

func (failingRepo) List(context.Context) ([]domain.Order, error) { return nil, nil }
func (failingRepo) ListByEmail(context.Context, string) ([]domain.Order, error) {
	return nil, nil
}
func (failingRepo) Create(context.Context, []domain.CartItem, domain.Customer, int64) (*domain.Order, error) {
	return nil, errStoreDown
}
func (failingRepo) UpdateStatus(context.Context, string, domain.OrderStatus) ([]domain.Order, error) {
	return nil, errStoreDown
}
func (failingRepo) Delete(context.Context, string) ([]domain.Order, error) {
	return nil, errStoreDown
}

func newTestService(t *testing.T) (*Service, *cart.Manager, orders.Repository) {
	t.Helper()
	store := storage.NewMemoryStore()
	repo := orders.NewStoreRepository(store)
	carts := cart.NewManager()
	return NewService(carts, repo), carts, repo
}

func TestSubmit_FullFlowWithCashOnDelivery(t *testing.T) {
	ctx := context.Background()
	svc, carts, repo := newTestService(t)

	product := domain.Product{ID: 1, Name: "زيت أرغان", Price: 100, Images: []string{"a.jpg"}}
	carts.Add("session", product)
	carts.Add("session", product)
	require.Equal(t, int64(200), carts.Total("session"))

	flow := svc.Flow("session")
	require.NoError(t, flow.SubmitShipping(validShipping()))
	require.NoError(t, flow.SubmitPayment(PaymentInfo{Method: MethodCashOnDelivery}))

	order, err := svc.Submit(ctx, "session")
	require.NoError(t, err)

	assert.Equal(t, int64(200), order.Total)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "cod", order.PaymentMethod)
	assert.Equal(t, "sara@example.com", order.Email)

	// Cart is cleared only after the order is persisted.
	assert.Empty(t, carts.Items("session"))
	assert.Equal(t, StepSuccess, flow.Step())

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, order.ID, list[0].ID)
}

func TestSubmit_EmptyCartRejected(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	flow := svc.Flow("session")
	require.NoError(t, flow.SubmitShipping(validShipping()))
	require.NoError(t, flow.SubmitPayment(PaymentInfo{Method: MethodCashOnDelivery}))

	_, err := svc.Submit(ctx, "session")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, StepReview, flow.Step())
}

func TestSubmit_BeforeReviewIsIllegal(t *testing.T) {
	ctx := context.Background()
	svc, carts, _ := newTestService(t)
	carts.Add("session", domain.Product{ID: 1, Name: "p", Price: 10, Images: []string{"i"}})

	_, err := svc.Submit(ctx, "session")
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.NotEmpty(t, carts.Items("session"), "cart must survive a failed submission")
}

func TestCheckout_ConcurrentAccessIsSafe(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.SubmitShipping(validShipping())
		}()
		go func() {
			defer wg.Done()
			_ = c.Step()
			_ = c.Shipping()
			_ = c.Payment()
			_ = c.Customer()
		}()
	}
	wg.Wait()

	assert.Equal(t, StepPayment, c.Step())
	assert.Equal(t, validShipping(), c.Shipping())
}

func TestSubmit_ConcurrentSubmitsPlaceOneOrder(t *testing.T) {
	ctx := context.Background()
	svc, carts, repo := newTestService(t)

	carts.Add("session", domain.Product{ID: 1, Name: "p", Price: 10, Images: []string{"i"}})
	flow := svc.Flow("session")
	require.NoError(t, flow.SubmitShipping(validShipping()))
	require.NoError(t, flow.SubmitPayment(PaymentInfo{Method: MethodCashOnDelivery}))

	const workers = 8
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Submit(ctx, "session")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	placed := 0
	for err := range results {
		if err == nil {
			placed++
		} else {
			assert.ErrorIs(t, err, ErrIllegalTransition)
		}
	}
	assert.Equal(t, 1, placed)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "exactly one order may be persisted")
}

func TestSubmit_FailedPersistKeepsCartAndStep(t *testing.T) {
	ctx := context.Background()
	carts := cart.NewManager()
	svc := NewService(carts, failingRepo{})

	carts.Add("session", domain.Product{ID: 1, Name: "p", Price: 10, Images: []string{"i"}})
	flow := svc.Flow("session")
	require.NoError(t, flow.SubmitShipping(validShipping()))
	require.NoError(t, flow.SubmitPayment(PaymentInfo{Method: MethodCashOnDelivery}))

	_, err := svc.Submit(ctx, "session")
	require.Error(t, err)

	assert.Equal(t, StepReview, flow.Step())
	assert.Len(t, carts.Items("session"), 1)
}
