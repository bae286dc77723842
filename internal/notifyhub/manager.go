package notifyhub

import (
	"campuschars/backend/internal/logger"
	"campuschars/backend/internal/models"
	"campuschars/backend/internal/storage"
)

// ManagerService is the central dispatcher for live notifications. Clients
// register over channels; every notification published on the Redis stream
// is fanned out to the connected clients whose role (and, for targeted
// events, username) matches the recipient scoping.
type ManagerService struct {
	Clients map[string]Client

	// Channels
	RegisterCh   chan Client
	UnregisterCh chan Client
	BroadcastCh  chan models.Notification

	Storage *storage.Service
	Log     *logger.Logger
}

// NewManagerService (ініціалізація каналів хаба)
func NewManagerService(s *storage.Service, log *logger.Logger) *ManagerService {
	return &ManagerService{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		BroadcastCh:  make(chan models.Notification, 64),
		Storage:      s,
		Log:          log.With("component", "notifyhub"),
	}
}

// Run is the hub's main loop. It owns the Clients map, so registration,
// unregistration and dispatch never race.
func (m *ManagerService) Run() {
	m.StartPubSubListener()

	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetConnID()] = client
			m.Log.Debug("client registered", "conn", client.GetConnID(), "role", client.GetRole())

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client.GetConnID()]; ok {
				delete(m.Clients, client.GetConnID())
				client.Close()
			}

		case n := <-m.BroadcastCh:
			m.dispatch(n)
		}
	}
}

// dispatch forwards one notification to every matching client. A client
// whose send buffer is full is dropped rather than allowed to stall the hub.
func (m *ManagerService) dispatch(n models.Notification) {
	for connID, client := range m.Clients {
		if !targets(client, n) {
			continue
		}
		select {
		case client.GetSendChannel() <- n:
		default:
			m.Log.Warn("dropping slow client", "conn", connID)
			delete(m.Clients, connID)
			client.Close()
		}
	}
}

// targets reports whether the notification is meant for the client: the
// role must match, and a non-empty RecipientName restricts the event to
// that one identity.
func targets(c Client, n models.Notification) bool {
	if c.GetRole() != n.RecipientRole {
		return false
	}
	if n.RecipientName == "" {
		return true
	}
	return c.GetUsername() == n.RecipientName
}
