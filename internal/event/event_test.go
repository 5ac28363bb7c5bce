package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(WaveStarted, ListenerFunc(func(e Event) { got = append(got, "a") }))
	d.Subscribe(WaveStarted, ListenerFunc(func(e Event) { got = append(got, "b") }))
	d.Subscribe(WaveEnded, ListenerFunc(func(e Event) { got = append(got, "other") }))

	d.Dispatch(Event{Type: WaveStarted, Data: 1})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	count := 0
	d.SubscribeAll(ListenerFunc(func(Event) { count++ }), EnemyKilled, EnemyReachedBase)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: EnemyReachedBase})
	d.Dispatch(Event{Type: GameOver})
	assert.Equal(t, 2, count)
}

func TestDispatchWithoutListeners(t *testing.T) {
	assert.NotPanics(t, func() {
		NewDispatcher().Dispatch(Event{Type: TowerPlaced})
	})
}
