package changefeed

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"autohub/config"
	"autohub/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func receiveChange(t *testing.T, ch <-chan service.Change) service.Change {
	t.Helper()

	select {
	case change, ok := <-ch:
		require.True(t, ok, "channel closed before a change arrived")

		return change
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
	}

	return service.Change{}
}

func newMiniredisFeed(t *testing.T) (*miniredis.Miniredis, service.ChangeFeed) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	feed := NewRedisFeed(client, "test:", discardLogger())
	t.Cleanup(func() { _ = feed.Close() })

	return mr, feed
}

func TestRedisFeed_PublishReachesSubscribers(t *testing.T) {
	_, feed := newMiniredisFeed(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	topic := "orders:shop:abc"
	first, err := feed.Subscribe(ctx, topic)
	require.NoError(t, err)
	second, err := feed.Subscribe(ctx, topic)
	require.NoError(t, err)

	require.NoError(t, feed.Publish(ctx, service.Change{Topic: topic, EntityID: "o-1", Kind: "created"}))

	assert.Equal(t, "o-1", receiveChange(t, first).EntityID)
	assert.Equal(t, "o-1", receiveChange(t, second).EntityID)
}

func TestRedisFeed_UsesPrefixedChannel(t *testing.T) {
	mr, feed := newMiniredisFeed(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := feed.Subscribe(ctx, "appointments:shop:1")
	require.NoError(t, err)

	mr.Publish("test:appointments:shop:1", `{"topic":"appointments:shop:1","entity_id":"a-9","kind":"status"}`)

	change := receiveChange(t, ch)
	assert.Equal(t, "a-9", change.EntityID)
	assert.Equal(t, "status", change.Kind)
}

func TestRedisFeed_CancelClosesChannel(t *testing.T) {
	mr, feed := newMiniredisFeed(t)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := feed.Subscribe(ctx, "orders:customer:1")
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel was not closed after cancel")
	}

	assert.Eventually(t, func() bool {
		return len(mr.PubSubChannels("")) == 0
	}, 2*time.Second, 20*time.Millisecond)
}

func TestRedisFeed_ConcurrentSubscribers(t *testing.T) {
	_, feed := newMiniredisFeed(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	topics := []string{"orders:shop:1", "orders:shop:2", "appointments:shop:1"}
	channels := make([][]<-chan service.Change, len(topics))

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for i, topic := range topics {
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()

				ch, err := feed.Subscribe(ctx, topic)
				assert.NoError(t, err)

				mu.Lock()
				channels[i] = append(channels[i], ch)
				mu.Unlock()
			}()
		}
	}
	wg.Wait()

	for i, topic := range topics {
		require.NoError(t, feed.Publish(ctx, service.Change{Topic: topic, EntityID: topic}))
		require.Len(t, channels[i], 4)
		for _, ch := range channels[i] {
			assert.Equal(t, topic, receiveChange(t, ch).EntityID)
		}
	}
}

func TestRedisFeed_CanceledSubscribeLeavesTopicUsable(t *testing.T) {
	_, feed := newMiniredisFeed(t)

	canceled, cancelNow := context.WithCancel(context.Background())
	cancelNow()

	// Either outcome is fine for the canceled caller; the topic must stay usable.
	_, _ = feed.Subscribe(canceled, "orders:shop:9")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := feed.Subscribe(ctx, "orders:shop:9")
	require.NoError(t, err)

	require.NoError(t, feed.Publish(ctx, service.Change{Topic: "orders:shop:9", EntityID: "o-9"}))
	assert.Equal(t, "o-9", receiveChange(t, ch).EntityID)
}

func TestMemoryFeed_OnlyMatchingTopic(t *testing.T) {
	feed := NewMemoryFeed()
	defer feed.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shop, err := feed.Subscribe(ctx, "orders:shop:1")
	require.NoError(t, err)
	other, err := feed.Subscribe(ctx, "orders:shop:2")
	require.NoError(t, err)

	require.NoError(t, feed.Publish(ctx, service.Change{Topic: "orders:shop:1", EntityID: "x"}))

	assert.Equal(t, "x", receiveChange(t, shop).EntityID)
	select {
	case <-other:
		t.Fatal("unexpected change on another topic")
	default:
	}
}

func TestMemoryFeed_CoalescesPendingChanges(t *testing.T) {
	feed := NewMemoryFeed()
	defer feed.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := feed.Subscribe(ctx, "t")
	require.NoError(t, err)

	for range 5 {
		require.NoError(t, feed.Publish(ctx, service.Change{Topic: "t"}))
	}

	receiveChange(t, ch)
	select {
	case <-ch:
		t.Fatal("pending changes should coalesce into one")
	default:
	}
}

func TestNew_SelectsImplementation(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	feed, err := New(Params{Lc: lc, Config: &config.Config{}, Logger: discardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &memoryFeed{}, feed)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	feed, err = New(Params{
		Lc:     lc,
		Config: &config.Config{Redis: &config.RedisConfig{Addr: mr.Addr()}},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	assert.IsType(t, &redisFeed{}, feed)

	lc.RequireStart().RequireStop()
}
