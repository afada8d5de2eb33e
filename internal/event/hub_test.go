package event

import "testing"

func TestSubscribeAndBroadcast(t *testing.T) {
	hub := NewHub()

	a := hub.Subscribe()
	b := hub.Subscribe()
	defer hub.Unsubscribe(a.ID)
	defer hub.Unsubscribe(b.ID)

	want := Event{Action: ActionProductAdded, Message: "Product added successfully!"}
	hub.Broadcast(want)

	for _, sub := range []*Subscription{a, b} {
		select {
		case got := <-sub.C:
			if got != want {
				t.Errorf("event = %+v, want %+v", got, want)
			}
		default:
			t.Error("subscriber received no event")
		}
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe()
	hub.Unsubscribe(sub.ID)

	if _, open := <-sub.C; open {
		t.Error("channel still open after Unsubscribe")
	}

	// Unsubscribing twice must not panic.
	hub.Unsubscribe(sub.ID)
}

func TestBroadcast_DoesNotBlockOnSlowSubscriber(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub.ID)

	// Never drained: once the buffer fills, further events are
	// dropped instead of stalling mutations.
	for i := 0; i < 100; i++ {
		hub.Broadcast(Event{Action: ActionProductDeleted})
	}

	if len(sub.C) == 0 {
		t.Error("buffered events missing")
	}
}

func TestBroadcast_NoSubscribers(t *testing.T) {
	hub := NewHub()
	hub.Broadcast(Event{Action: ActionProductsImported, Count: 2})
}
