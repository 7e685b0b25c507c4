package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"

	"github.com/chakravarthikakarla/imagify/internal/config"
	"github.com/chakravarthikakarla/imagify/internal/handler"
	"github.com/chakravarthikakarla/imagify/internal/service"
	"github.com/chakravarthikakarla/imagify/internal/storage/postgres"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Загрузка переменных окружения (local)
	if err := godotenv.Load(".env.local"); err != nil {
		logger.Info("no .env.local file, using environment")
	}
	cfg := config.LoadConfig()

	// БД
	db, err := postgres.InitDB(context.Background(), cfg)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}
	defer db.Close()

	// Клиент Razorpay: создаётся один раз и внедряется в сервис,
	// в тестах вместо него фейк
	rzp := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	// Сервисы
	userService := service.NewUserService(db, []byte(cfg.JWTSecret))
	paymentService := service.NewPaymentService(rzp.Order, db, cfg.Currency, logger)

	// Обработчик
	h := handler.NewHandler(userService, paymentService, []byte(cfg.JWTSecret), logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered", zap.Any("error", recovered))
		c.AbortWithStatusJSON(http.StatusOK, gin.H{"success": false, "message": "Internal error"})
	}))

	// Настройка CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(r, h)

	logger.Info("server started", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
