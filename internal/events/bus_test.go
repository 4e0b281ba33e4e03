package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()
	defer func() { _ = bus.Close() }()

	a, cancelA := bus.Subscribe(4)
	defer cancelA()
	b, cancelB := bus.Subscribe(4)
	defer cancelB()

	require.NoError(t, bus.Publish(Event{Type: EventTaskMoved, EntityID: "t1", SequenceID: 1}))

	gotA := <-a
	gotB := <-b
	assert.Equal(t, EventTaskMoved, gotA.Type)
	assert.Equal(t, "t1", gotB.EntityID)
}

func TestBus_FullSubscriberDoesNotBlock(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)
	defer cancel()

	require.NoError(t, bus.Publish(Event{SequenceID: 1}))
	require.NoError(t, bus.Publish(Event{SequenceID: 2}))

	assert.Equal(t, int64(1), bus.Dropped())
	assert.Equal(t, int64(1), (<-ch).SequenceID)
}

func TestBus_CancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe(1)
	cancel()
	cancel() // second cancel is a no-op

	_, open := <-ch
	assert.False(t, open)
	assert.NoError(t, bus.Publish(Event{}))
}

func TestBus_Close(t *testing.T) {
	bus := NewBus()
	ch, _ := bus.Subscribe(1)

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	_, open := <-ch
	assert.False(t, open)
	assert.ErrorIs(t, bus.Publish(Event{}), ErrBusClosed)

	late, _ := bus.Subscribe(1)
	_, open = <-late
	assert.False(t, open, "subscribing to a closed bus yields a closed channel")
}
