// Package telegram forwards admin-scoped notification events to a Telegram
// chat. It is an optional one-way side channel over the same Redis stream
// the websocket hub consumes; the persisted notification row remains the
// source of truth.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"

	"campuschars/backend/internal/logger"
	"campuschars/backend/internal/models"
	"campuschars/backend/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"
)

type Notifier struct {
	BotAPI *tgbotapi.BotAPI
	Redis  *redis.Client
	ChatID int64
	Log    *logger.Logger
}

func NewNotifier(token string, chatID int64, rdb *redis.Client, log *logger.Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Notifier{
		BotAPI: bot,
		Redis:  rdb,
		ChatID: chatID,
		Log:    log.With("component", "telegram"),
	}, nil
}

// Run слухає Redis Pub/Sub і пересилає admin-сповіщення в Telegram.
func (n *Notifier) Run() {
	ctx := context.Background()

	pubsub := n.Redis.Subscribe(ctx, storage.NotificationChannel)
	defer pubsub.Close()

	n.Log.Info("telegram notifier started", "chat_id", n.ChatID)

	for msg := range pubsub.Channel() {
		var event models.Notification
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			n.Log.Error("failed to unmarshal notification event", "err", err)
			continue
		}

		if event.RecipientRole != models.RoleAdmin {
			continue
		}

		text := fmt.Sprintf("🔔 %s\n%s", event.Type, event.Message)
		tgMsg := tgbotapi.NewMessage(n.ChatID, text)
		if _, err := n.BotAPI.Send(tgMsg); err != nil {
			n.Log.Warn("failed to send telegram alert", "err", err)
		}
	}
}
