// Package events carries typed change notifications between the mutating
// handlers and whoever needs to recompute: instead of invalidating every
// cached query on any write, each mutation names exactly what changed.
package events

import "sync"

// Op says what happened to the entity.
type Op string

const (
	OpCreated  Op = "created"
	OpUpdated  Op = "updated"
	OpDeleted  Op = "deleted"
	OpReviewed Op = "reviewed"
)

// Event names one changed entity. DeckID is the public ID of the deck the
// change belongs to (the deck itself, or the deck owning the flashcard), so
// consumers can recompute just that deck's stats.
type Event struct {
	Entity   string `json:"entity"` // "deck" or "flashcard"
	Op       Op     `json:"op"`
	PublicID string `json:"id"`
	DeckID   string `json:"deck_id,omitempty"`
}

// Bus fans events out to subscribers. Publish never blocks: a subscriber that
// stops draining its channel misses events rather than stalling mutations.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe returns a channel of future events and a cancel function. The
// channel is buffered; cancel closes it.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, 16)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default: // subscriber is full, drop
		}
	}
}
