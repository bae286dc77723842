package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"campuschars/backend/internal/api/handler"
	"campuschars/backend/internal/complaint"
	"campuschars/backend/internal/logger"
	"campuschars/backend/internal/notifyhub"
	"campuschars/backend/internal/storage"
	"campuschars/backend/internal/telegram"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupDependencies(log *logger.Logger) (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "user"),
		getenv("DB_PASSWORD", "password"),
		getenv("DB_NAME", "campuschars"),
		getenv("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect PostgreSQL", "err", err)
	}

	// 2. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	// Перевірка з'єднання Redis
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to connect Redis", "err", err)
	}

	return db, rdb
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: Error loading .env file")
	}

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting CampusCHARS backend")

	// 1. Ініціалізація залежностей
	db, rdb := setupDependencies(log)
	s := storage.NewStorageService(db, rdb, log)

	// 2. Міграції (створення таблиць)
	if err := s.Migrate(); err != nil {
		log.Fatal("failed to run migrations", "err", err)
	}

	// 3. Стартові користувачі (admin, техніки, студент)
	if err := s.SeedUsers(); err != nil {
		log.Warn("seeding users failed", "err", err)
	}

	// 4. Сервіс скарг та хаб live-сповіщень
	svc := complaint.NewService(s)
	hub := notifyhub.NewManagerService(s, log)
	go hub.Run()

	// 5. Telegram-канал для адмінів (опційний)
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_ADMIN_CHAT_ID"), 10, 64)
		if err != nil {
			log.Fatal("TELEGRAM_ADMIN_CHAT_ID must be a chat id", "err", err)
		}
		notifier, err := telegram.NewNotifier(token, chatID, rdb, log)
		if err != nil {
			log.Fatal("failed to start telegram notifier", "err", err)
		}
		go notifier.Run()
	}

	// 6. Налаштування Gin та роутингу
	r := gin.Default()
	h := handler.NewHandler(svc, s, hub, log)

	api := r.Group("/api")
	{
		api.POST("/complaints", h.CreateComplaint)
		api.GET("/complaints", h.ListComplaints)
		api.POST("/complaints/resolve", h.ResolveTop)
		api.POST("/complaints/undo", h.UndoWithdraw)
		api.GET("/complaints/:id", h.GetComplaint)
		api.POST("/complaints/:id/vote", h.VoteComplaint)
		api.POST("/complaints/:id/withdraw", h.WithdrawComplaint)
		api.POST("/complaints/:id/assign", h.AssignComplaint)
		api.POST("/complaints/:id/markResolved", h.MarkResolved)
		api.GET("/notifications", h.ListNotifications)
		api.GET("/technicians", h.ListTechnicians)
		api.POST("/login", h.Login)
	}
	r.GET("/ws", h.ServeWebSocket) // WebSocket-стрім сповіщень

	// Запуск HTTP-сервера
	server := &http.Server{
		Addr:           ":" + getenv("PORT", "3000"),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Info("server listening", "addr", server.Addr)
	log.Fatal("server stopped", "err", server.ListenAndServe())
}
