package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chakravarthikakarla/imagify/internal/model"
	"github.com/chakravarthikakarla/imagify/internal/shared"
)

// --- helpers ---

type fakePaymentStorage struct {
	users        map[uuid.UUID]*model.User
	transactions map[uuid.UUID]*model.Transaction
}

func newFakePaymentStorage() *fakePaymentStorage {
	return &fakePaymentStorage{
		users:        make(map[uuid.UUID]*model.User),
		transactions: make(map[uuid.UUID]*model.Transaction),
	}
}

func (f *fakePaymentStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	return u, nil
}

func (f *fakePaymentStorage) CreateTransaction(ctx context.Context, t *model.Transaction) error {
	cp := *t
	f.transactions[t.ID] = &cp
	return nil
}

func (f *fakePaymentStorage) GetTransactionByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	t, ok := f.transactions[id]
	if !ok {
		return nil, shared.ErrTransactionNotFound
	}
	return t, nil
}

func (f *fakePaymentStorage) SetTransactionOrderID(ctx context.Context, id uuid.UUID, orderID string) error {
	t, ok := f.transactions[id]
	if !ok {
		return shared.ErrTransactionNotFound
	}
	t.RazorpayOrderID = orderID
	return nil
}

func (f *fakePaymentStorage) CompleteTransaction(ctx context.Context, id, userID uuid.UUID, credits int64) error {
	t, ok := f.transactions[id]
	if !ok {
		return shared.ErrTransactionNotFound
	}
	if t.Payment {
		return shared.ErrAlreadyProcessed
	}
	u, ok := f.users[userID]
	if !ok {
		return shared.ErrUserNotFound
	}
	t.Payment = true
	u.CreditBalance += credits
	return nil
}

func (f *fakePaymentStorage) singleTransaction(t *testing.T) *model.Transaction {
	t.Helper()
	require.Len(t, f.transactions, 1)
	for _, tr := range f.transactions {
		return tr
	}
	return nil
}

type fakeOrdersClient struct {
	createErr   error
	fetchErr    error
	fetchStatus string

	lastCreateData map[string]interface{}
	lastReceipt    string
}

func (f *fakeOrdersClient) Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastCreateData = data
	f.lastReceipt, _ = data["receipt"].(string)
	return map[string]interface{}{
		"id":       "order_test123",
		"amount":   data["amount"],
		"currency": data["currency"],
		"receipt":  f.lastReceipt,
		"status":   "created",
	}, nil
}

func (f *fakeOrdersClient) Fetch(orderID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return map[string]interface{}{
		"id":      orderID,
		"status":  f.fetchStatus,
		"receipt": f.lastReceipt,
	}, nil
}

func newPaymentService(t *testing.T) (*PaymentService, *fakePaymentStorage, *fakeOrdersClient) {
	t.Helper()
	st := newFakePaymentStorage()
	orders := &fakeOrdersClient{fetchStatus: "paid"}
	return NewPaymentService(orders, st, "INR", zap.NewNop()), st, orders
}

func addUser(st *fakePaymentStorage) *model.User {
	u := &model.User{ID: uuid.New(), Name: "user1", Email: "user1@example.com"}
	st.users[u.ID] = u
	return u
}

// --- tests ---

func TestCreateOrderBasic(t *testing.T) {
	svc, st, orders := newPaymentService(t)
	u := addUser(st)

	order, err := svc.CreateOrder(context.Background(), u.ID, "Basic")
	require.NoError(t, err)
	assert.Equal(t, "order_test123", order["id"])

	tr := st.singleTransaction(t)
	assert.Equal(t, u.ID, tr.UserID)
	assert.Equal(t, shared.PlanBasic, tr.Plan)
	assert.Equal(t, int64(100), tr.Credits)
	assert.Equal(t, int64(10), tr.Amount)
	assert.False(t, tr.Payment)
	assert.Equal(t, "order_test123", tr.RazorpayOrderID)

	// Провайдеру сумма уходит в минорных единицах
	assert.Equal(t, int64(1000), orders.lastCreateData["amount"])
	assert.Equal(t, "INR", orders.lastCreateData["currency"])
	assert.Equal(t, tr.ID.String(), orders.lastCreateData["receipt"])
}

func TestCreateOrderUnknownPlan(t *testing.T) {
	svc, st, _ := newPaymentService(t)
	u := addUser(st)

	_, err := svc.CreateOrder(context.Background(), u.ID, "Platinum")
	assert.ErrorIs(t, err, shared.ErrPlanNotFound)
	assert.Empty(t, st.transactions)
}

func TestCreateOrderMissingPlan(t *testing.T) {
	svc, st, _ := newPaymentService(t)
	u := addUser(st)

	_, err := svc.CreateOrder(context.Background(), u.ID, "")
	assert.ErrorIs(t, err, shared.ErrValidation)
	assert.Empty(t, st.transactions)
}

func TestCreateOrderProviderRejects(t *testing.T) {
	svc, st, orders := newPaymentService(t)
	u := addUser(st)
	orders.createErr = errors.New("gateway unavailable")

	_, err := svc.CreateOrder(context.Background(), u.ID, "Advanced")
	assert.ErrorIs(t, err, shared.ErrExternalService)

	// Транзакция остаётся, но неоплаченной
	tr := st.singleTransaction(t)
	assert.False(t, tr.Payment)
	assert.Empty(t, tr.RazorpayOrderID)
}

func TestVerifyOrderCreditsOnce(t *testing.T) {
	svc, st, _ := newPaymentService(t)
	u := addUser(st)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, u.ID, "Basic")
	require.NoError(t, err)

	require.NoError(t, svc.VerifyOrder(ctx, "order_test123"))
	assert.Equal(t, int64(100), u.CreditBalance)
	assert.True(t, st.singleTransaction(t).Payment)

	// Повторная верификация того же заказа — no-op
	err = svc.VerifyOrder(ctx, "order_test123")
	assert.ErrorIs(t, err, shared.ErrAlreadyProcessed)
	assert.Equal(t, int64(100), u.CreditBalance)
}

func TestVerifyOrderNotPaid(t *testing.T) {
	svc, st, orders := newPaymentService(t)
	u := addUser(st)
	ctx := context.Background()
	orders.fetchStatus = "created"

	_, err := svc.CreateOrder(ctx, u.ID, "Basic")
	require.NoError(t, err)

	err = svc.VerifyOrder(ctx, "order_test123")
	assert.ErrorIs(t, err, shared.ErrPaymentNotCompleted)
	assert.Equal(t, int64(0), u.CreditBalance)
	assert.False(t, st.singleTransaction(t).Payment)
}

func TestVerifyOrderFetchError(t *testing.T) {
	svc, _, orders := newPaymentService(t)
	orders.fetchErr = errors.New("gateway unavailable")

	err := svc.VerifyOrder(context.Background(), "order_test123")
	assert.ErrorIs(t, err, shared.ErrExternalService)
}

func TestVerifyOrderUnknownReceipt(t *testing.T) {
	svc, _, orders := newPaymentService(t)
	orders.lastReceipt = uuid.NewString()

	err := svc.VerifyOrder(context.Background(), "order_test123")
	assert.ErrorIs(t, err, shared.ErrTransactionNotFound)
}
