package events

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrBusClosed is returned when publishing to a closed bus.
var ErrBusClosed = errors.New("event bus closed")

// Bus fans events out to in-process subscribers. Delivery is non-blocking:
// a subscriber whose buffer is full misses the event rather than stalling the
// store's writer.
type Bus struct {
	mu      sync.Mutex
	subs    map[int]chan Event
	nextID  int
	closed  bool
	metrics *Metrics
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event), metrics: NewMetrics()}
}

// Subscribe registers a subscriber with the given buffer size. The returned
// cancel func unregisters it and closes the channel.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.metrics.Subscribers.Add(1)

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
				b.metrics.Subscribers.Add(-1)
			}
		})
	}
}

// Publish delivers event to every subscriber with room in its buffer.
func (b *Bus) Publish(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}
	b.metrics.Published.Add(1)

	for id, ch := range b.subs {
		select {
		case ch <- event:
			b.metrics.Delivered.Add(1)
		default:
			b.metrics.Dropped.Add(1)
			slog.Debug("event dropped for slow subscriber",
				"subscriber", id,
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}
	return nil
}

// Dropped returns how many deliveries were skipped because a subscriber was full.
func (b *Bus) Dropped() int64 {
	return b.metrics.Dropped.Load()
}

// Metrics returns a snapshot of the bus counters.
func (b *Bus) Metrics() MetricsSnapshot {
	return b.metrics.Snapshot()
}

// Close closes every subscriber channel. Further publishes fail.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
	b.metrics.Subscribers.Store(0)
	return nil
}
