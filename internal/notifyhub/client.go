package notifyhub

import "campuschars/backend/internal/models"

// Client is the interface for any live notification consumer (currently
// WebSocket connections). It abstracts the underlying transport, allowing
// the hub to manage different client types uniformly.
type Client interface {
	// GetConnID returns the unique identifier of this connection. One user
	// may hold several connections at once.
	GetConnID() string
	// GetRole returns the role the connection is scoped to
	// (admin, technician or student).
	GetRole() string
	// GetUsername returns the identity behind the connection, used to match
	// recipient-targeted notifications.
	GetUsername() string

	// GetSendChannel returns the channel on which the ManagerService (hub)
	// delivers notifications intended for this client. Send-only.
	GetSendChannel() chan<- models.Notification

	// Run starts the client's read and write pumps.
	Run()
	// Close gracefully shuts down the client's connection and channels.
	Close()
}
