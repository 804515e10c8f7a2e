package websocket

import "sync"

// Registry tracks live connections, their users, and their ride
// subscriptions. All state is process-local with connection lifetime;
// maps are mutex-guarded for concurrent handler access.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]*Client            // connID -> client
	users map[string]map[string]*Client // userID -> connID -> client
	rides map[string]map[string]*Client // rideID -> connID -> client
}

// NewRegistry creates an empty connection registry
func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]*Client),
		users: make(map[string]map[string]*Client),
		rides: make(map[string]map[string]*Client),
	}
}

// Register adds an authenticated connection
func (r *Registry) Register(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conns[client.ID] = client
	if r.users[client.UserID] == nil {
		r.users[client.UserID] = make(map[string]*Client)
	}
	r.users[client.UserID][client.ID] = client
}

// Deregister removes a connection and purges it from every ride's
// subscriber set. Subscriber sets left empty are removed entirely.
func (r *Registry) Deregister(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.conns[connID]
	if !ok {
		return
	}
	delete(r.conns, connID)

	if userConns := r.users[client.UserID]; userConns != nil {
		delete(userConns, connID)
		if len(userConns) == 0 {
			delete(r.users, client.UserID)
		}
	}

	for rideID, subs := range r.rides {
		delete(subs, connID)
		if len(subs) == 0 {
			delete(r.rides, rideID)
		}
	}
}

// Subscribe adds the connection to a ride's subscriber set. Idempotent.
// Returns false if the connection is not registered.
func (r *Registry) Subscribe(connID, rideID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.conns[connID]
	if !ok {
		return false
	}

	if r.rides[rideID] == nil {
		r.rides[rideID] = make(map[string]*Client)
	}
	r.rides[rideID][connID] = client
	return true
}

// Unsubscribe removes the connection from a ride's subscriber set,
// dropping the set when it becomes empty
func (r *Registry) Unsubscribe(connID, rideID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.rides[rideID]
	if subs == nil {
		return
	}
	delete(subs, connID)
	if len(subs) == 0 {
		delete(r.rides, rideID)
	}
}

// SubscribersOf returns the connections subscribed to a ride
func (r *Registry) SubscribersOf(rideID string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := r.rides[rideID]
	clients := make([]*Client, 0, len(subs))
	for _, c := range subs {
		clients = append(clients, c)
	}
	return clients
}

// ClientsOfUser returns every live connection belonging to a user
func (r *Registry) ClientsOfUser(userID string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns := r.users[userID]
	clients := make([]*Client, 0, len(conns))
	for _, c := range conns {
		clients = append(clients, c)
	}
	return clients
}

// UserOf returns the user behind a connection
func (r *Registry) UserOf(connID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.conns[connID]
	if !ok {
		return "", false
	}
	return client.UserID, true
}

// SubscriptionCount returns the number of rides with at least one subscriber
func (r *Registry) SubscriptionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rides)
}

// ConnectionCount returns the number of live connections
func (r *Registry) ConnectionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
