package model

// RegisterRequest содержит данные для регистрации нового пользователя
type RegisterRequest struct {
	Name     string `json:"name" example:"user1"`
	Email    string `json:"email" example:"user1@example.com"`
	Password string `json:"password" example:"password123"`
}

// LoginRequest содержит данные для аутентификации пользователя
type LoginRequest struct {
	Email    string `json:"email" example:"user1@example.com"`
	Password string `json:"password" example:"password123"`
}

// PayOrderRequest содержит план для покупки кредитов
type PayOrderRequest struct {
	PlanID string `json:"planId" example:"Basic"`
}

// VerifyOrderRequest содержит идентификатор заказа Razorpay
type VerifyOrderRequest struct {
	RazorpayOrderID string `json:"razorpay_order_id" example:"order_Mh3kJ9pLxW2Qab"`
}
