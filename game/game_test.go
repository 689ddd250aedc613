package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyGameSetup(t *testing.T) {
	var bus Bus
	var events []any
	bus.Subscribe(func(e any) { events = append(events, e) })

	g := NewEmptyGame(&bus)
	g.Setup()

	assert.Equal(t, []any{
		PreStateChange{Game: g, From: Preparing, To: PreStart},
		PostStateChange{Game: g, From: Preparing, To: PreStart},
	}, events)
}

func TestEmptyGameIsInert(t *testing.T) {
	g := NewEmptyGame(&Bus{})
	g.SetState(Ended)
	assert.Equal(t, PreStart, g.State())
	assert.Equal(t, Alive, g.PlayerState("Steve"))
	assert.Empty(t, g.Name())
	g.Teardown()
}

func TestBusOrder(t *testing.T) {
	var bus Bus
	var order []int
	bus.Subscribe(func(any) { order = append(order, 1) })
	bus.Subscribe(func(any) { order = append(order, 2) })
	bus.Publish(struct{}{})
	assert.Equal(t, []int{1, 2}, order)
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "pre-start", PreStart.String())
	assert.Equal(t, "spectator", Spectator.String())
	assert.Equal(t, "unknown", GameState(42).String())
}
