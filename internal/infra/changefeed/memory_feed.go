package changefeed

import (
	"context"

	"autohub/internal/domain/service"
)

// memoryFeed is used when no Redis address is configured. Changes only reach
// subscribers of the same process.
type memoryFeed struct {
	hub *hub
}

// NewMemoryFeed creates an in-process change feed.
func NewMemoryFeed() service.ChangeFeed {
	return &memoryFeed{hub: newHub()}
}

func (f *memoryFeed) Publish(_ context.Context, change service.Change) error {
	f.hub.broadcast(change)

	return nil
}

func (f *memoryFeed) Subscribe(ctx context.Context, topic string) (<-chan service.Change, error) {
	ch, _ := f.hub.add(topic)

	go func() {
		<-ctx.Done()
		f.hub.remove(topic, ch)
	}()

	return ch, nil
}

func (f *memoryFeed) Close() error {
	f.hub.closeAll()

	return nil
}
