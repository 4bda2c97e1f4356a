package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingListener struct {
	received []Event
}

func (l *countingListener) OnEvent(e Event) {
	l.received = append(l.received, e)
}

func TestDispatchReachesAllSubscribers(t *testing.T) {
	d := NewDispatcher()
	first := &countingListener{}
	second := &countingListener{}
	d.Subscribe(WaveStart, first)
	d.Subscribe(WaveStart, second)

	d.Dispatch(Event{Type: WaveStart, Data: "payload"})

	assert.Len(t, first.received, 1)
	assert.Len(t, second.received, 1)
	assert.Equal(t, "payload", first.received[0].Data)
}

func TestDispatchFiltersByType(t *testing.T) {
	d := NewDispatcher()
	listener := &countingListener{}
	d.Subscribe(MobSpawn, listener)

	d.Dispatch(Event{Type: WaveStart})
	d.Dispatch(Event{Type: MobSpawn})

	assert.Len(t, listener.received, 1)
	assert.Equal(t, MobSpawn, listener.received[0].Type)
}

func TestDispatchWithoutSubscribersIsNoop(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Type: GameEnd})
	})
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	keep := &countingListener{}
	drop := &countingListener{}
	d.Subscribe(MobKilled, keep)
	d.Subscribe(MobKilled, drop)

	d.Unsubscribe(MobKilled, drop)
	// Unsubscribing twice, or a never-subscribed listener, is harmless.
	d.Unsubscribe(MobKilled, drop)
	d.Unsubscribe(GameStart, drop)

	d.Dispatch(Event{Type: MobKilled})
	assert.Len(t, keep.received, 1)
	assert.Empty(t, drop.received)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var got []Event
	d.Subscribe(GoldChanged, ListenerFunc(func(e Event) {
		got = append(got, e)
	}))

	d.Dispatch(Event{Type: GoldChanged})
	assert.Len(t, got, 1)
}
