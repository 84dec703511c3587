// Package changefeed delivers live-query change notifications, either through
// Redis pub/sub or inside the process.
package changefeed

import (
	"sync"

	"autohub/internal/domain/service"
)

// hub fans changes out to local subscribers. Each subscriber channel holds at
// most one pending change: subscribers re-query on every notification, so a
// pending one already covers any change that arrives before it is read.
type hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan service.Change]struct{}
}

func newHub() *hub {
	return &hub{subscribers: make(map[string]map[chan service.Change]struct{})}
}

// add registers a subscriber and reports whether it is the first for topic.
func (h *hub) add(topic string) (chan service.Change, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	first := false
	if h.subscribers[topic] == nil {
		h.subscribers[topic] = make(map[chan service.Change]struct{})
		first = true
	}

	ch := make(chan service.Change, 1)
	h.subscribers[topic][ch] = struct{}{}

	return ch, first
}

// remove closes a subscriber and reports whether the topic has none left.
func (h *hub) remove(topic string, ch chan service.Change) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	subscribers, ok := h.subscribers[topic]
	if !ok {
		return false
	}

	if _, ok := subscribers[ch]; !ok {
		return false
	}

	delete(subscribers, ch)
	close(ch)

	if len(subscribers) == 0 {
		delete(h.subscribers, topic)

		return true
	}

	return false
}

func (h *hub) broadcast(change service.Change) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for subscriber := range h.subscribers[change.Topic] {
		select {
		case subscriber <- change:
		default:
		}
	}
}

func (h *hub) count(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[topic])
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for topic, subscribers := range h.subscribers {
		for subscriber := range subscribers {
			close(subscriber)
		}

		delete(h.subscribers, topic)
	}
}
