package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	Password      string    `db:"password"`
	CreditBalance int64     `db:"credit_balance"`
	CreatedAt     time.Time `db:"created_at"`
}
