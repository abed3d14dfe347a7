// Package stream keeps list views live. Each registered collection is polled
// for a full snapshot; whenever the snapshot changes, every subscriber gets
// the complete new state. Clients replace their local list wholesale with
// each event, so a dropped event only leaves them stale until the next
// state change.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrUnknownCollection = errors.New("unknown collection")

// subscriberBuffer absorbs a slow reader for a few snapshots; beyond that,
// events are dropped because the next one carries the full state anyway.
const subscriberBuffer = 4

// FetchFunc produces the current full snapshot of one collection.
type FetchFunc func(ctx context.Context) (any, error)

type subscriber chan []byte

type collection struct {
	fetch FetchFunc

	mu   sync.Mutex
	last []byte
	subs map[subscriber]struct{}
}

// Hub polls registered collections and fans snapshots out to subscribers.
type Hub struct {
	interval     time.Duration
	fetchTimeout time.Duration
	log          *logrus.Logger

	mu          sync.RWMutex
	collections map[string]*collection
}

// NewHub builds a hub that polls every interval. Each fetch runs under
// fetchTimeout so one hung store call cannot stall polling of the other
// collections.
func NewHub(interval, fetchTimeout time.Duration, log *logrus.Logger) *Hub {
	return &Hub{
		interval:     interval,
		fetchTimeout: fetchTimeout,
		log:          log,
		collections:  make(map[string]*collection),
	}
}

// Register makes a collection subscribable. Registration happens once during
// wiring, before Run.
func (h *Hub) Register(name string, fetch FetchFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.collections[name] = &collection{fetch: fetch, subs: make(map[subscriber]struct{})}
}

// Collections lists the registered collection names.
func (h *Hub) Collections() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	names := make([]string, 0, len(h.collections))
	for name := range h.collections {
		names = append(names, name)
	}
	return names
}

// Subscribe attaches to a collection and immediately receives the current
// snapshot. The returned cancel func detaches and closes the channel.
func (h *Hub) Subscribe(ctx context.Context, name string) (<-chan []byte, func(), error) {
	h.mu.RLock()
	col, ok := h.collections[name]
	h.mu.RUnlock()
	if !ok {
		return nil, nil, ErrUnknownCollection
	}

	fctx, cancelFetch := context.WithTimeout(ctx, h.fetchTimeout)
	snapshot, err := col.snapshot(fctx)
	cancelFetch()
	if err != nil {
		return nil, nil, err
	}

	sub := make(subscriber, subscriberBuffer)
	sub <- snapshot

	col.mu.Lock()
	col.subs[sub] = struct{}{}
	col.mu.Unlock()

	cancel := func() {
		col.mu.Lock()
		if _, ok := col.subs[sub]; ok {
			delete(col.subs, sub)
			close(sub)
		}
		col.mu.Unlock()
	}
	return sub, cancel, nil
}

// Run polls until the context ends. Collections without subscribers are
// skipped so an idle dashboard costs no table scans.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.pollAll(ctx)
		}
	}
}

func (h *Hub) pollAll(ctx context.Context) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for name, col := range h.collections {
		col.mu.Lock()
		active := len(col.subs) > 0
		col.mu.Unlock()
		if !active {
			continue
		}
		if err := h.poll(ctx, col); err != nil {
			h.log.WithError(err).WithField("collection", name).Warn("snapshot poll failed")
		}
	}
}

func (h *Hub) poll(ctx context.Context, col *collection) error {
	fctx, cancel := context.WithTimeout(ctx, h.fetchTimeout)
	defer cancel()

	data, err := col.fetch(fctx)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	col.mu.Lock()
	defer col.mu.Unlock()
	if string(encoded) == string(col.last) {
		return nil
	}
	col.last = encoded
	for sub := range col.subs {
		select {
		case sub <- encoded:
		default:
		}
	}
	return nil
}

// snapshot fetches and caches the current state for a fresh subscriber.
func (c *collection) snapshot(ctx context.Context) ([]byte, error) {
	data, err := c.fetch(ctx)
	if err != nil {
		return nil, err
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.last = encoded
	c.mu.Unlock()
	return encoded, nil
}
