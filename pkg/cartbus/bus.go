// Package cartbus is the in-process change-notification channel for cart
// state. Notifications never carry the cart itself: subscribers re-read the
// store, which keeps the store the single source of truth even when
// notifications arrive out of order.
package cartbus

import (
	"fmt"
	"sync"
)

// Handler is a plain callback; the topic it was subscribed under is all the
// context it gets.
type Handler func()

// Subscription identifies one registered handler so it can be removed.
// Consumers own their teardown: whoever subscribes must unsubscribe.
type Subscription struct {
	topic string
	id    uint64
}

// Bus dispatches synchronously, on the calling goroutine, in subscription
// order. There is no queue: Emit returns after the last handler does.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	topics map[string][]entry
}

type entry struct {
	id uint64
	fn Handler
}

func New() *Bus {
	return &Bus{topics: make(map[string][]entry)}
}

// CartTopic is the per-user cart-changed topic name.
func CartTopic(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (b *Bus) Subscribe(topic string, fn Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.topics[topic] = append(b.topics[topic], entry{id: b.nextID, fn: fn})
	return &Subscription{topic: topic, id: b.nextID}
}

func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := b.topics[sub.topic]
	for i, e := range entries {
		if e.id == sub.id {
			b.topics[sub.topic] = append(entries[:i:i], entries[i+1:]...)
			break
		}
	}
	if len(b.topics[sub.topic]) == 0 {
		delete(b.topics, sub.topic)
	}
}

// Emit invokes every handler currently subscribed to topic. Handlers
// registered or removed by a running handler take effect from the next Emit.
func (b *Bus) Emit(topic string) {
	b.mu.Lock()
	entries := b.topics[topic]
	fns := make([]Handler, len(entries))
	for i, e := range entries {
		fns[i] = e.fn
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
