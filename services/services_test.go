package services

import (
	"context"
	"errors"
	"sync"

	"blog-admin/eventbus"
	"blog-admin/events"
	"blog-admin/repositories"
)

// recordingBus collects published blog events.
type recordingBus struct {
	mu     sync.Mutex
	topics []string
	events []events.BlogEvent
	err    error
}

func (b *recordingBus) Publish(_ context.Context, topic string, evt eventbus.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	decoded, err := eventbus.DecodeJSON[events.BlogEvent](evt)
	if err != nil {
		return err
	}
	b.topics = append(b.topics, topic)
	b.events = append(b.events, decoded)
	return nil
}

func (b *recordingBus) Close() {}

func (b *recordingBus) types() []events.EventType {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]events.EventType, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type)
	}
	return out
}

var errBusDown = errors.New("broker unavailable")

func newTestBlogService() (*BlogService, *recordingBus) {
	bus := &recordingBus{}
	return NewBlogService(repositories.NewMemoryBlogRepository(), bus, eventbus.TopicBlogEvents), bus
}
