package changefeed

import (
	"context"
	"log/slog"
	"time"

	"autohub/config"
	"autohub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const pingTimeout = 5 * time.Second

// Params holds the dependencies of the change feed.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New selects the Redis feed when an address is configured and the in-process
// feed otherwise.
func New(params Params) (service.ChangeFeed, error) {
	cfg := params.Config.Redis

	var feed service.ChangeFeed
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("redis not configured, using in-process change feed")
		feed = NewMemoryFeed()
	} else {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()

			return nil, errors.Wrap(err, "failed to connect to redis")
		}

		params.Logger.Info("using redis change feed", slog.String("addr", cfg.Addr))
		feed = NewRedisFeed(client, cfg.ChannelPrefix, params.Logger)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return feed.Close()
		},
	})

	return feed, nil
}

// Module provides the change feed.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
