package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/chakravarthikakarla/imagify/internal/model"
	"github.com/chakravarthikakarla/imagify/internal/shared"
)

func (s *Storage) CreateTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, plan, amount, credits, payment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	res, err := s.DB.Exec(
		ctx, query, t.ID, t.UserID, t.Plan, t.Amount, t.Credits, t.Payment, t.CreatedAt,
	)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Storage) GetTransactionByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	query := `
		SELECT id, user_id, plan, amount, credits, payment, razorpay_order_id, created_at
		FROM transactions
		WHERE id = $1
	`
	var t model.Transaction
	err := s.DB.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.UserID, &t.Plan, &t.Amount, &t.Credits,
		&t.Payment, &t.RazorpayOrderID, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrTransactionNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *Storage) SetTransactionOrderID(ctx context.Context, id uuid.UUID, orderID string) error {
	res, err := s.DB.Exec(ctx,
		`UPDATE transactions
		 SET razorpay_order_id = $1
		 WHERE id = $2`,
		orderID, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return shared.ErrTransactionNotFound
	}
	return nil
}

// CompleteTransaction переводит транзакцию в оплаченные и начисляет кредиты.
// Флаг payment переключается условным UPDATE, поэтому повторная верификация
// того же заказа получает ErrAlreadyProcessed и баланс не меняется.
func (s *Storage) CompleteTransaction(ctx context.Context, id, userID uuid.UUID, credits int64) error {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	res, err := tx.Exec(ctx,
		`UPDATE transactions
		 SET payment = true
		 WHERE id = $1 AND payment = false`,
		id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return shared.ErrAlreadyProcessed
	}

	res, err = tx.Exec(ctx,
		`UPDATE users
		 SET credit_balance = credit_balance + $1
		 WHERE id = $2`,
		credits, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return shared.ErrUserNotFound
	}

	return tx.Commit(ctx)
}
