package main

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

type channelPublisher struct {
	events chan publishedEvent
}

func newChannelPublisher() *channelPublisher {
	return &channelPublisher{events: make(chan publishedEvent, 64)}
}

func (p *channelPublisher) PublishToRoom(roomID string, message any) {
	p.events <- publishedEvent{roomID: roomID, message: message}
}

func (p *channelPublisher) PublishToAll(message any) {
	p.events <- publishedEvent{message: message}
}

func (p *channelPublisher) next(t *testing.T) publishedEvent {
	t.Helper()
	select {
	case event := <-p.events:
		return event
	case <-time.After(time.Second):
		t.Fatalf("no event published")
		return publishedEvent{}
	}
}

func (p *channelPublisher) expectQuiet(t *testing.T) {
	t.Helper()
	select {
	case event := <-p.events:
		t.Fatalf("unexpected event %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func expectTick(t *testing.T, event publishedEvent, roomID string, turnTime int) {
	t.Helper()
	if event.roomID != roomID {
		t.Fatalf("tick for wrong room: %q", event.roomID)
	}
	tick, ok := event.message.(TurnTimerMessage)
	if !ok {
		t.Fatalf("expected TurnTimerMessage got %+v", event.message)
	}
	if tick.TurnTime != turnTime {
		t.Fatalf("expected turnTime %d got %d", turnTime, tick.TurnTime)
	}
}

func TestRoundCountsDownAndStops(t *testing.T) {
	clock := clockwork.NewFakeClock()
	pub := newChannelPublisher()
	timers := NewTurnTimerService(clock, pub)

	timers.StartRound("room")
	first := pub.next(t)
	if _, ok := first.message.(NavigateToGameplayMessage); !ok || first.roomID != "room" {
		t.Fatalf("expected navigateToGameplay for the room, got %+v", first)
	}

	clock.BlockUntil(1)
	for want := turnTimeStart - 1; want >= 0; want-- {
		clock.Advance(time.Second)
		expectTick(t, pub.next(t), "room", want)
	}

	// Expiry is silent and the schedule is gone.
	clock.Advance(3 * time.Second)
	pub.expectQuiet(t)
}

func TestStartRoundResetsCountdown(t *testing.T) {
	clock := clockwork.NewFakeClock()
	pub := newChannelPublisher()
	timers := NewTurnTimerService(clock, pub)

	timers.StartRound("room")
	pub.next(t) // navigateToGameplay
	clock.BlockUntil(1)
	clock.Advance(time.Second)
	expectTick(t, pub.next(t), "room", 9)
	clock.Advance(time.Second)
	expectTick(t, pub.next(t), "room", 8)

	// A new round cancels the old schedule and starts back at the top.
	timers.StartRound("room")
	pub.next(t) // navigateToGameplay
	clock.BlockUntil(1)
	clock.Advance(time.Second)
	expectTick(t, pub.next(t), "room", 9)
	pub.expectQuiet(t)
}

func TestRoundsAreScopedToTheirRoom(t *testing.T) {
	clock := clockwork.NewFakeClock()
	pub := newChannelPublisher()
	timers := NewTurnTimerService(clock, pub)

	timers.StartRound("roomA")
	navigate := pub.next(t)
	if navigate.roomID != "roomA" {
		t.Fatalf("navigate broadcast leaked to %q", navigate.roomID)
	}
	clock.BlockUntil(1)
	clock.Advance(time.Second)
	expectTick(t, pub.next(t), "roomA", 9)
}
