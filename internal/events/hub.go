package events

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Refresh tells subscribers which tables changed since the last flush.
type Refresh struct {
	Tables []string `json:"tables"`
}

// Notifier is the write side of the hub. Services call Notify after a
// successful mutation; they never block on delivery.
type Notifier interface {
	Notify(table string)
}

// Hub coalesces change notifications inside a short window so a burst
// of writes (a reorder, a bulk edit) produces a single Refresh.
type Hub struct {
	mu      sync.Mutex
	window  time.Duration
	pending map[string]struct{}
	timer   *time.Timer
	subs    map[chan Refresh]struct{}
	log     *zap.Logger
	closed  bool
}

const defaultWindow = 300 * time.Millisecond

func NewHub(log *zap.Logger) *Hub {
	return newHub(log, defaultWindow)
}

func newHub(log *zap.Logger, window time.Duration) *Hub {
	return &Hub{
		window:  window,
		pending: make(map[string]struct{}),
		subs:    make(map[chan Refresh]struct{}),
		log:     log.Named("events.hub"),
	}
}

func (h *Hub) Notify(table string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.pending[table] = struct{}{}
	if h.timer == nil {
		h.timer = time.AfterFunc(h.window, h.flush)
	}
}

// Subscribe registers a buffered channel for Refresh batches. The
// returned cancel func must be called when the subscriber goes away.
func (h *Hub) Subscribe() (<-chan Refresh, func()) {
	ch := make(chan Refresh, 8)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *Hub) flush() {
	h.mu.Lock()
	if len(h.pending) == 0 || h.closed {
		h.timer = nil
		h.mu.Unlock()
		return
	}

	tables := make([]string, 0, len(h.pending))
	for table := range h.pending {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	h.pending = make(map[string]struct{})
	h.timer = nil

	batch := Refresh{Tables: tables}
	for ch := range h.subs {
		select {
		case ch <- batch:
		default:
			// Slow subscriber; it will catch up on the next batch.
		}
	}
	h.mu.Unlock()

	h.log.Debug("refresh flushed", zap.Strings("tables", tables))
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
}
