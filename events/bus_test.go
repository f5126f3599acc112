package events

import (
	"testing"
	"time"
)

func TestBusDeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()
	first, cancelFirst := bus.Subscribe()
	second, cancelSecond := bus.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	want := Event{Entity: "deck", Op: OpCreated, PublicID: "abc"}
	bus.Publish(want)

	for _, ch := range []<-chan Event{first, second} {
		select {
		case got := <-ch:
			if got != want {
				t.Errorf("event = %+v, want %+v", got, want)
			}
		case <-time.After(time.Second):
			t.Fatal("event not delivered")
		}
	}
}

func TestBusCancelClosesChannel(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe()
	cancel()

	if _, open := <-ch; open {
		t.Error("channel still open after cancel")
	}

	// Cancel twice is fine, and publishing after cancel must not panic.
	cancel()
	bus.Publish(Event{Entity: "flashcard", Op: OpReviewed, PublicID: "x"})
}

func TestBusDropsWhenSubscriberFull(t *testing.T) {
	bus := NewBus()
	_, cancelSlow := bus.Subscribe() // never drained
	defer cancelSlow()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(Event{Entity: "deck", Op: OpUpdated, PublicID: "d"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}
