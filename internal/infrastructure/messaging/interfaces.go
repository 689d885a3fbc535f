// Package messaging defines interfaces for real-time communication.
package messaging

// Broadcaster manages change-stream clients and fans store changes out to them.
type Broadcaster interface {
	AddClient() (clientID string, ch <-chan StoreEvent)
	RemoveClient(clientID string)
	ClientCount() int
	Broadcast(store string, version uint64)
}
