package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chakravarthikakarla/imagify/internal/model"
	"github.com/chakravarthikakarla/imagify/internal/shared"
)

// OrdersClient — клиент Orders API платёжного провайдера.
// Интерфейсу удовлетворяет *razorpay.Order из razorpay-go,
// в тестах подставляется фейк.
type OrdersClient interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
	Fetch(orderID string, queryParams map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// PaymentStorage описывает доступ к пользователям и транзакциям в БД
type PaymentStorage interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	CreateTransaction(ctx context.Context, t *model.Transaction) error
	GetTransactionByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	SetTransactionOrderID(ctx context.Context, id uuid.UUID, orderID string) error
	CompleteTransaction(ctx context.Context, id, userID uuid.UUID, credits int64) error
}

type PaymentService struct {
	orders   OrdersClient
	storage  PaymentStorage
	currency string
	log      *zap.Logger
}

func NewPaymentService(orders OrdersClient, storage PaymentStorage, currency string, log *zap.Logger) *PaymentService {
	return &PaymentService{
		orders:   orders,
		storage:  storage,
		currency: currency,
		log:      log,
	}
}

// CreateOrder создаёт неоплаченную транзакцию и заказ Razorpay под неё.
// В receipt заказа кладётся id транзакции, по нему заказ сверяется
// при верификации.
func (s *PaymentService) CreateOrder(ctx context.Context, userID uuid.UUID, planID string) (map[string]interface{}, error) {
	if userID == uuid.Nil || planID == "" {
		return nil, shared.ErrValidation
	}
	plan, ok := shared.Plans[shared.PlanID(planID)]
	if !ok {
		return nil, shared.ErrPlanNotFound
	}

	// Сохраняем транзакцию в БД
	t := &model.Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Plan:      shared.PlanID(planID),
		Amount:    plan.Amount,
		Credits:   plan.Credits,
		CreatedAt: time.Now(),
	}
	if err := s.storage.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}

	// Сумма для провайдера в минорных единицах
	order, err := s.orders.Create(map[string]interface{}{
		"amount":   plan.Amount * 100,
		"currency": s.currency,
		"receipt":  t.ID.String(),
	}, nil)
	if err != nil {
		s.log.Warn("razorpay order creation failed",
			zap.String("transaction_id", t.ID.String()), zap.Error(err))
		return nil, shared.ErrExternalService
	}

	if orderID, ok := order["id"].(string); ok {
		if err := s.storage.SetTransactionOrderID(ctx, t.ID, orderID); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// VerifyOrder сверяет статус заказа у провайдера и один раз начисляет
// кредиты владельцу транзакции.
func (s *PaymentService) VerifyOrder(ctx context.Context, orderID string) error {
	if orderID == "" {
		return shared.ErrValidation
	}

	order, err := s.orders.Fetch(orderID, nil, nil)
	if err != nil {
		s.log.Warn("razorpay order fetch failed",
			zap.String("order_id", orderID), zap.Error(err))
		return shared.ErrExternalService
	}

	status, _ := order["status"].(string)
	if status != "paid" {
		return shared.ErrPaymentNotCompleted
	}

	receipt, ok := order["receipt"].(string)
	if !ok {
		return shared.ErrTransactionNotFound
	}
	transactionID, err := uuid.Parse(receipt)
	if err != nil {
		return shared.ErrTransactionNotFound
	}

	t, err := s.storage.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if t.Payment {
		return shared.ErrAlreadyProcessed
	}

	// Условный UPDATE внутри: параллельная верификация того же
	// заказа начислит кредиты только один раз
	return s.storage.CompleteTransaction(ctx, t.ID, t.UserID, t.Credits)
}
