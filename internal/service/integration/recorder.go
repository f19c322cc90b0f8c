package integration

import (
	"context"
	"sync"
)

// PublishedEvent is one call captured by Recorder.
type PublishedEvent struct {
	RoutingKey string
	Event      any
}

// Recorder keeps published events in memory for tests.
type Recorder struct {
	mu     sync.Mutex
	events []PublishedEvent
}

func (r *Recorder) Publish(_ context.Context, routingKey string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, PublishedEvent{RoutingKey: routingKey, Event: event})
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Events() []PublishedEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]PublishedEvent, len(r.events))
	copy(out, r.events)
	return out
}

// RoutingKeys returns the keys of all recorded events in publish order.
func (r *Recorder) RoutingKeys() []string {
	events := r.Events()
	keys := make([]string, len(events))
	for i, e := range events {
		keys[i] = e.RoutingKey
	}
	return keys
}
