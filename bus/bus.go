// Package bus provides the battle engine's internal publish/subscribe
// plumbing. The engine publishes a combatant entering the field, damage
// landing, and a combatant fainting; the entry event is what drives the
// ability hook and the hazard engine, in a fixed subscriber order rather
// than a call order hard-wired into the Turn Resolver.
package bus

import (
	"fmt"
	"sync"
)

// Topic names the battle-lifecycle events the engine publishes. Unlike the
// teacher's reflective, ref-keyed bus, every topic here is a plain domain
// event relevant only within one battle, so a simple string key is enough.
type Topic string

const (
	// TopicCombatantEntered fires when a combatant takes the field, at
	// battle start or after a switch. Subscribers fire in registration
	// order — the engine always registers the ability hook before the
	// hazard engine, so on-entry abilities resolve first.
	TopicCombatantEntered Topic = "combatant_entered"
	// TopicTurnStart names a turn-start event (payload TurnStartEvent).
	// The Turn Resolver does not publish it.
	TopicTurnStart Topic = "turn_start"
	// TopicTurnEnd names a turn-end event (payload TurnEndEvent). The Turn
	// Resolver does not publish it.
	TopicTurnEnd Topic = "turn_end"
	// TopicDamageDealt fires whenever a combatant's HP is reduced by a move.
	TopicDamageDealt Topic = "damage_dealt"
	// TopicFaint fires the instant a combatant's HP reaches 0.
	TopicFaint Topic = "faint"
)

// Handler processes one published event. A non-nil error aborts delivery to
// any remaining subscribers for that Publish call and is returned to the
// publisher.
type Handler func(event any) error

// Bus is a synchronous, registration-order event dispatcher scoped to a
// single battle. It is not safe for use across battles running
// concurrently; each battle session owns its own Bus.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[Topic][]subscription
}

type subscription struct {
	id      string
	handler Handler
}

// New returns an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

// Subscribe registers handler to run whenever topic is published, after any
// handler already subscribed to the same topic. It returns an id usable with
// Unsubscribe.
func (b *Bus) Subscribe(topic Topic, handler Handler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := fmt.Sprintf("sub-%d", b.nextID)
	b.subs[topic] = append(b.subs[topic], subscription{id: id, handler: handler})
	return id
}

// Unsubscribe removes a subscription by id. It is a no-op if id is unknown.
func (b *Bus) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for topic, entries := range b.subs {
		for i, s := range entries {
			if s.id == id {
				b.subs[topic] = append(entries[:i], entries[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers event to every subscriber of topic, in the fixed order
// they subscribed. Delivery stops at the first handler error.
func (b *Bus) Publish(topic Topic, event any) error {
	b.mu.Lock()
	entries := make([]subscription, len(b.subs[topic]))
	copy(entries, b.subs[topic])
	b.mu.Unlock()

	for _, s := range entries {
		if err := s.handler(event); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every subscription. Primarily useful in tests.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = make(map[Topic][]subscription)
}
