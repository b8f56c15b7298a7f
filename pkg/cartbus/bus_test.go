package cartbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitRunsHandlersInSubscriptionOrder(t *testing.T) {
	b := New()
	var got []int

	b.Subscribe("cart:1", func() { got = append(got, 1) })
	b.Subscribe("cart:1", func() { got = append(got, 2) })
	b.Subscribe("cart:1", func() { got = append(got, 3) })

	b.Emit("cart:1")
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestEmitIsSynchronous(t *testing.T) {
	b := New()
	fired := false
	b.Subscribe("cart:1", func() { fired = true })

	b.Emit("cart:1")
	assert.True(t, fired, "handler must run before Emit returns")
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	count := 0
	sub := b.Subscribe("cart:1", func() { count++ })

	b.Emit("cart:1")
	b.Unsubscribe(sub)
	b.Emit("cart:1")

	assert.Equal(t, 1, count)
}

func TestTopicsAreIndependent(t *testing.T) {
	b := New()
	count := 0
	b.Subscribe(CartTopic(1), func() { count++ })

	b.Emit(CartTopic(2))
	assert.Equal(t, 0, count)

	b.Emit(CartTopic(1))
	assert.Equal(t, 1, count)
}

func TestUnsubscribeNilAndTwiceIsSafe(t *testing.T) {
	b := New()
	sub := b.Subscribe("cart:1", func() {})

	b.Unsubscribe(nil)
	b.Unsubscribe(sub)
	b.Unsubscribe(sub)
	b.Emit("cart:1")
}
