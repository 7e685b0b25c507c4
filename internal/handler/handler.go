package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chakravarthikakarla/imagify/internal/model"
	"github.com/chakravarthikakarla/imagify/internal/service"
	"github.com/chakravarthikakarla/imagify/internal/shared"
)

type Handler struct {
	users     *service.UserService
	payments  *service.PaymentService
	jwtSecret []byte
	log       *zap.Logger
}

func NewHandler(users *service.UserService, payments *service.PaymentService, jwtSecret []byte, log *zap.Logger) *Handler {
	return &Handler{users: users, payments: payments, jwtSecret: jwtSecret, log: log}
}

// Все ответы идут со статусом 200, ошибки сигналятся в теле
// через {success:false, message}
func (h *Handler) fail(c *gin.Context, err error) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": h.message(err)})
}

func (h *Handler) message(err error) string {
	switch {
	case errors.Is(err, shared.ErrValidation):
		return "Missing details"
	case errors.Is(err, shared.ErrUserNotFound):
		return "User doesn't exist"
	case errors.Is(err, shared.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, shared.ErrAlreadyExists):
		return "User already exists"
	case errors.Is(err, shared.ErrInvalidToken):
		return "Not Authorized. Invalid token."
	case errors.Is(err, shared.ErrPlanNotFound):
		return "Plan not found"
	case errors.Is(err, shared.ErrTransactionNotFound):
		return "Transaction not found"
	case errors.Is(err, shared.ErrExternalService):
		return "Payment provider error"
	case errors.Is(err, shared.ErrPaymentNotCompleted):
		return "Payment not completed"
	case errors.Is(err, shared.ErrAlreadyProcessed):
		return "Payment already processed"
	}
	// Неожиданные ошибки логируем, наружу текст не отдаём
	h.log.Error("unexpected error", zap.Error(err))
	return "Internal error"
}

func (h *Handler) Register(c *gin.Context) {
	var input model.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, shared.ErrValidation)
		return
	}
	token, user, err := h.users.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    gin.H{"name": user.Name, "email": user.Email},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var input model.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, shared.ErrValidation)
		return
	}
	token, user, err := h.users.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    gin.H{"name": user.Name, "email": user.Email},
	})
}

func (h *Handler) GetCredits(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)
	user, err := h.users.GetCredits(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"credits": user.CreditBalance,
		"user":    gin.H{"name": user.Name},
	})
}

func (h *Handler) PayOrder(c *gin.Context) {
	var input model.PayOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, shared.ErrValidation)
		return
	}
	userID := c.MustGet("user_id").(uuid.UUID)
	order, err := h.payments.CreateOrder(c.Request.Context(), userID, input.PlanID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) VerifyOrder(c *gin.Context) {
	var input model.VerifyOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, shared.ErrValidation)
		return
	}
	if err := h.payments.VerifyOrder(c.Request.Context(), input.RazorpayOrderID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Credits added"})
}

func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("token")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{
				"success": false, "message": "Not Authorized. Please log in again.",
			})
			return
		}
		userID, err := service.ParseToken(tokenStr, h.jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusOK, gin.H{
				"success": false, "message": "Not Authorized. Invalid token.",
			})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "ok"})
}
