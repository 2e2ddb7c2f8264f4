package client

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrExists is returned by Registry.Create when a client already exists for
// the API key.
var ErrExists = errors.New("client already exists for api key")

// Registry hands out at most one Client per API key. It replaces hidden
// global state: construct one Registry at process start and pass it to call
// sites. API keys are case-folded, so keys differing only in case address
// the same client. Safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*Client
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]*Client),
	}
}

// Create builds a new Client for apiKey and records it. It fails with
// ErrExists when a client is already registered for the key; use Get to
// retrieve it.
func (r *Registry) Create(apiKey string, options ...Option) (*Client, error) {
	key, err := normalizeAPIKey(apiKey)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[key]; ok {
		return nil, ErrExists
	}

	c, err := New(apiKey, options...)
	if err != nil {
		return nil, err
	}
	r.clients[key] = c
	return c, nil
}

// Get returns the client registered for apiKey, or nil when there is none.
func (r *Registry) Get(apiKey string) *Client {
	key, err := normalizeAPIKey(apiKey)
	if err != nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clients[key]
}

// Destroy closes the client registered for apiKey and removes it. It does
// nothing when no client is registered.
func (r *Registry) Destroy(apiKey string) {
	key, err := normalizeAPIKey(apiKey)
	if err != nil {
		return
	}

	r.mu.Lock()
	c, ok := r.clients[key]
	delete(r.clients, key)
	r.mu.Unlock()

	if ok {
		if err := c.Close(); err != nil {
			log.Errorw("Cannot close client", "err", err)
		}
	}
}

// DestroyAll closes and removes every registered client. It is safe to call
// multiple times.
func (r *Registry) DestroyAll() {
	r.mu.Lock()
	clients := r.clients
	r.clients = make(map[string]*Client)
	r.mu.Unlock()

	for _, c := range clients {
		if err := c.Close(); err != nil {
			log.Errorw("Cannot close client", "err", err)
		}
	}
}

// Len returns the number of registered clients.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

func normalizeAPIKey(apiKey string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", fmt.Errorf("api key must not be blank")
	}
	return strings.ToLower(apiKey), nil
}
