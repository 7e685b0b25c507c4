package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/chakravarthikakarla/imagify/internal/shared"
)

type Transaction struct {
	ID              uuid.UUID     `db:"id"`
	UserID          uuid.UUID     `db:"user_id"`
	Plan            shared.PlanID `db:"plan"`
	Amount          int64         `db:"amount"`
	Credits         int64         `db:"credits"`
	Payment         bool          `db:"payment"`
	RazorpayOrderID string        `db:"razorpay_order_id"`
	CreatedAt       time.Time     `db:"created_at"`
}
