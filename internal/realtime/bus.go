package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/velvetbox/settlecore/internal/domain"
)

const publishTimeout = time.Second * 5

// Bus fans order status changes out to subscribers. Push delivery rides on
// Redis pub/sub; subscribers that can't hold a push channel degrade to
// polling (see subscription.go).
type Bus struct {
	rdb  redis.UniversalClient
	opts Options
}

// Options bound the reconnect/backoff behavior of subscriptions. The
// defaults match production; tests shrink the delays.
type Options struct {
	InitialDelay    time.Duration
	Multiplier      float64
	MaxDelay        time.Duration
	MaxRetries      int
	OrderPollEvery  time.Duration
	VendorPollEvery time.Duration
}

func DefaultOptions() Options {
	return Options{
		InitialDelay:    time.Second,
		Multiplier:      2,
		MaxDelay:        time.Second * 30,
		MaxRetries:      5,
		OrderPollEvery:  time.Second * 5,
		VendorPollEvery: time.Second * 10,
	}
}

func New(rdb redis.UniversalClient) *Bus {
	return NewWithOptions(rdb, DefaultOptions())
}

func NewWithOptions(rdb redis.UniversalClient, opts Options) *Bus {
	return &Bus{
		rdb:  rdb,
		opts: opts,
	}
}

func OrderChannel(orderID int64) string {
	return fmt.Sprintf("order:%d", orderID)
}

func VendorChannel(vendorID int) string {
	return fmt.Sprintf("vendor:%d:orders", vendorID)
}

// Publish sends a status change to the order channel and the owning
// vendor's order-list channel. Publish failures are logged, never
// propagated: subscribers recover through polling.
func (b *Bus) Publish(ctx context.Context, event domain.StatusChanged) {
	payload, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't marshal status event", zap.Error(err))
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	for _, channel := range []string{OrderChannel(event.OrderID), VendorChannel(event.VendorID)} {
		if err := b.rdb.Publish(pubCtx, channel, payload).Err(); err != nil {
			zap.L().Warn("push publish failed, subscribers will catch up by polling",
				zap.String("channel", channel),
				zap.Error(err),
			)
		}
	}
}
