package shared

import "errors"

var (

	// common errors
	ErrValidation   = errors.New("missing details")
	ErrUserNotFound = errors.New("user not found")

	// auth-specific errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAlreadyExists      = errors.New("user already exists")

	// payment-specific errors
	ErrPlanNotFound        = errors.New("plan not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrExternalService     = errors.New("payment provider error")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrAlreadyProcessed    = errors.New("payment already processed")
)
