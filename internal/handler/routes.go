package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes описывает таблицу маршрутов API
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/health", h.Health)

	// Авторизация
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)

	// Кредиты и оплата
	authorized := r.Group("/")
	authorized.Use(h.AuthMiddleware())
	{
		authorized.GET("/credits", h.GetCredits)
		authorized.POST("/pay-order", h.PayOrder)
	}

	// Провайдер дёргает верификацию по id заказа, без токена
	r.POST("/verify-order", h.VerifyOrder)
}
