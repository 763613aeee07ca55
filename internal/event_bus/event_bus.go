package event_bus

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Topic identifies a kind of event on the bus.
type Topic string

// Event is the envelope delivered to subscribers. Data holds one of the payload
// types declared in events.go; subscribers type-assert on it.
type Event struct {
	ctx       context.Context
	Topic     Topic
	Timestamp time.Time
	Data      any
}

// Context returns the context the event was published with. Handlers should use it
// for cancellation and for request-scoped values such as the current user.
func (e Event) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

type Handler func(Event) error

// Bus is a concurrency-safe synchronous dispatcher. Publish runs all handlers for the
// topic in registration order before returning.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[Topic][]subscription
}

type subscription struct {
	id      uint64
	handler Handler
}

func New() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

// Subscribe registers a handler for the topic and returns a function that removes it.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, handler: h})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[topic]
		for i, s := range subs {
			if s.id == id {
				b.subs[topic] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
		if len(b.subs[topic]) == 0 {
			delete(b.subs, topic)
		}
	}
}

// Publish delivers the payload to every handler registered for the topic. Handler
// errors are logged and do not stop delivery; publishing never fails the caller.
func (b *Bus) Publish(ctx context.Context, topic Topic, data any) {
	b.mu.RLock()
	subs := make([]subscription, len(b.subs[topic]))
	copy(subs, b.subs[topic])
	b.mu.RUnlock()

	e := Event{ctx: ctx, Topic: topic, Timestamp: time.Now(), Data: data}
	for _, s := range subs {
		if err := ctx.Err(); err != nil {
			log.Debugf("event %s: context cancelled, skipping remaining handlers", topic)
			return
		}
		if err := s.handler(e); err != nil {
			log.Errorf("event %s: handler %d failed: %v", topic, s.id, err)
		}
	}
}
