package events

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvent(t *testing.T, eventType string, payload any) *Event {
	t.Helper()
	event, err := NewEvent(eventType, payload)
	require.NoError(t, err)
	return event
}

func TestNewEvent(t *testing.T) {
	event := mustEvent(t, "system_update", map[string]float64{"cpu": 12.5})

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.False(t, event.CreatedAt.IsZero())

	raw, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"system_update","data":{"cpu":12.5}}`, string(raw))

	var decoded map[string]float64
	require.NoError(t, event.UnmarshalData(&decoded))
	assert.Equal(t, 12.5, decoded["cpu"])
}

func TestNewEvent_UnserializablePayload(t *testing.T) {
	_, err := NewEvent("bad", make(chan int))
	assert.Error(t, err)
}

func TestHub_PublishReachesEverySubscriber(t *testing.T) {
	hub := NewHub(4, nil)
	a := hub.Subscribe()
	b := hub.Subscribe()
	event := mustEvent(t, "ping", 1)

	delivered := hub.Publish(event)

	assert.Equal(t, 2, delivered)
	assert.Same(t, event, <-a.C)
	assert.Same(t, event, <-b.C)
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	hub := NewHub(1, nil)
	assert.Equal(t, 0, hub.Publish(mustEvent(t, "ping", 1)))
	assert.NoError(t, hub.EmitEvent(context.Background(), mustEvent(t, "ping", 2)))
}

func TestHub_FullBufferDropsOldest(t *testing.T) {
	hub := NewHub(2, nil)
	sub := hub.Subscribe()

	for i := 1; i <= 5; i++ {
		hub.Publish(mustEvent(t, "tick", i))
	}

	var got []int
	for range 2 {
		var n int
		require.NoError(t, (<-sub.C).UnmarshalData(&n))
		got = append(got, n)
	}
	assert.Equal(t, []int{4, 5}, got)
	assert.Empty(t, sub.C)
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub(1, nil)
	sub := hub.Subscribe()
	other := hub.Subscribe()
	require.Equal(t, 2, hub.Count())

	hub.Unsubscribe(sub.ID)
	hub.Unsubscribe(sub.ID)

	_, open := <-sub.C
	assert.False(t, open, "channel should be closed")
	assert.Equal(t, 1, hub.Count())
	assert.Equal(t, 1, hub.Publish(mustEvent(t, "ping", 1)))
	assert.Len(t, other.C, 1)
}

func TestHub_DefaultBufferSize(t *testing.T) {
	hub := NewHub(0, nil)
	sub := hub.Subscribe()
	assert.Equal(t, DefaultBufferSize, cap(sub.C))
}

func TestHub_ConcurrentSubscribePublish(t *testing.T) {
	hub := NewHub(1, nil)
	event := mustEvent(t, "ping", 1)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sub := hub.Subscribe()
			hub.Unsubscribe(sub.ID)
		}()
		go func() {
			defer wg.Done()
			hub.Publish(event)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Count())
}
