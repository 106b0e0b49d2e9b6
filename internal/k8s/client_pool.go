package k8s

import (
	"container/list"
	"fmt"
	"sync"

	"sigs.k8s.io/controller-runtime/pkg/client"
)

// ClientFactory builds an API client for one kubeconfig context
type ClientFactory func(contextName string) (client.Client, error)

type poolEntry struct {
	client client.Client
}

// ClientPool caches one API client per context with LRU eviction. The
// active context is never evicted.
type ClientPool struct {
	mu      sync.Mutex
	clients map[string]*poolEntry
	active  string
	maxSize int
	lru     *list.List
	factory ClientFactory
}

// NewClientPool creates a pool. maxSize <= 0 falls back to DefaultPoolSize.
func NewClientPool(maxSize int, factory ClientFactory) *ClientPool {
	if maxSize <= 0 {
		maxSize = DefaultPoolSize
	}
	return &ClientPool{
		clients: make(map[string]*poolEntry),
		lru:     list.New(),
		maxSize: maxSize,
		factory: factory,
	}
}

// Get returns the cached client for contextName, creating it on first use.
// The factory runs outside the lock; concurrent first calls may both build a
// client but only the first one stored is kept.
func (p *ClientPool) Get(contextName string) (client.Client, error) {
	p.mu.Lock()
	if entry, ok := p.clients[contextName]; ok {
		p.markUsed(contextName)
		p.mu.Unlock()
		return entry.client, nil
	}
	p.mu.Unlock()

	c, err := p.factory(contextName)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for context %q: %w", contextName, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if entry, ok := p.clients[contextName]; ok {
		p.markUsed(contextName)
		return entry.client, nil
	}

	if len(p.clients) >= p.maxSize {
		p.evictLRU()
	}

	p.clients[contextName] = &poolEntry{client: c}
	p.lru.PushFront(contextName)
	return c, nil
}

// SetActive marks contextName as the context that must stay cached
func (p *ClientPool) SetActive(contextName string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.active = contextName
	p.markUsed(contextName)
}

// Reset drops every cached client
func (p *ClientPool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clients = make(map[string]*poolEntry)
	p.lru.Init()
}

// Len returns the number of cached clients
func (p *ClientPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.clients)
}

// markUsed moves contextName to the front of the LRU list.
// Must be called with p.mu held.
func (p *ClientPool) markUsed(contextName string) {
	for e := p.lru.Front(); e != nil; e = e.Next() {
		if e.Value.(string) == contextName {
			p.lru.MoveToFront(e)
			return
		}
	}
}

// evictLRU evicts the least recently used context that is not active.
// Must be called with p.mu held.
func (p *ClientPool) evictLRU() {
	for e := p.lru.Back(); e != nil; e = e.Prev() {
		contextName := e.Value.(string)
		if contextName == p.active {
			continue
		}
		delete(p.clients, contextName)
		p.lru.Remove(e)
		return
	}
}
