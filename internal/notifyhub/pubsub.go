package notifyhub

import (
	"context"
	"encoding/json"

	"campuschars/backend/internal/models"
	"campuschars/backend/internal/storage"
)

// StartPubSubListener запускає Goroutine, яка слухає Redis Pub/Sub.
// Local and remote instances publish on the same channel, so a multi-node
// deployment fans out to clients connected anywhere.
func (m *ManagerService) StartPubSubListener() {
	if m.Storage == nil || m.Storage.Redis == nil {
		m.Log.Warn("redis not configured, live notifications disabled")
		return
	}

	go func() {
		ctx := context.Background()

		pubsub := m.Storage.Redis.Subscribe(ctx, storage.NotificationChannel)
		defer pubsub.Close()

		ch := pubsub.Channel()

		for msg := range ch {
			var n models.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				m.Log.Error("failed to unmarshal notification event", "err", err)
				continue
			}

			// Надсилаємо подію у головний канал обробки (ManagerService)
			m.BroadcastCh <- n
		}
	}()
}
