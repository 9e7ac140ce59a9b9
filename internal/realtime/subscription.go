package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/velvetbox/settlecore/internal/domain"
)

// Mode of a subscription's delivery channel.
type Mode string

const (
	// ModeConnecting первая попытка открыть push-канал ещё не завершена;
	ModeConnecting Mode = "connecting"
	// ModePush подписка получает события через push-канал;
	ModePush Mode = "push"
	// ModePolling push-канал исчерпал попытки, подписка опрашивает по таймеру.
	ModePolling Mode = "polling"
)

// Update is what subscribers receive, whether it arrived by push or by a
// polling read.
type Update struct {
	OrderID   int64     `json:"orderId"`
	Status    string    `json:"status"`
	SubStatus string    `json:"subStatus,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PollFunc fetches the current state when the push channel is unavailable.
// Order subscriptions return one element, vendor subscriptions a list.
type PollFunc func(ctx context.Context) ([]Update, error)

type Callback func(Update)

// Subscription is one subscriber's view of a channel. It connects, holds
// push while it can, and after the retry budget is spent it polls for the
// rest of its lifetime; it never re-promotes to push.
type Subscription struct {
	bus       *Bus
	channel   string
	pollEvery time.Duration
	poll      PollFunc
	callback  Callback

	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
	done   chan struct{}

	mu            sync.Mutex
	mode          Mode
	retryAttempt  int
	lastDelivered map[int64]string
}

// SubscribeOrder follows a single order's status.
func (b *Bus) SubscribeOrder(ctx context.Context, orderID int64, poll PollFunc, callback Callback) *Subscription {
	return b.subscribe(ctx, OrderChannel(orderID), b.opts.OrderPollEvery, poll, callback)
}

// SubscribeVendorOrders follows a vendor's open-order list.
func (b *Bus) SubscribeVendorOrders(ctx context.Context, vendorID int, poll PollFunc, callback Callback) *Subscription {
	return b.subscribe(ctx, VendorChannel(vendorID), b.opts.VendorPollEvery, poll, callback)
}

func (b *Bus) subscribe(ctx context.Context, channel string, pollEvery time.Duration, poll PollFunc, callback Callback) *Subscription {
	subCtx, cancel := context.WithCancel(ctx)
	s := &Subscription{
		bus:           b,
		channel:       channel,
		pollEvery:     pollEvery,
		poll:          poll,
		callback:      callback,
		ctx:           subCtx,
		cancel:        cancel,
		done:          make(chan struct{}),
		mode:          ModeConnecting,
		lastDelivered: make(map[int64]string),
	}
	go s.run()
	return s
}

func (s *Subscription) run() {
	defer close(s.done)

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.bus.opts.InitialDelay
	bo.Multiplier = s.bus.opts.Multiplier
	bo.MaxInterval = s.bus.opts.MaxDelay
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	bo.Reset()

	for {
		err := s.consumePush(bo)
		if s.ctx.Err() != nil {
			return
		}
		s.mu.Lock()
		s.retryAttempt++
		attempt := s.retryAttempt
		s.mu.Unlock()

		if attempt > s.bus.opts.MaxRetries {
			zap.L().Warn("push retries exhausted, degrading to polling",
				zap.String("channel", s.channel),
				zap.Int("attempts", attempt),
			)
			break
		}

		delay := bo.NextBackOff()
		zap.L().Info("push channel lost, reconnecting",
			zap.String("channel", s.channel),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		select {
		case <-s.ctx.Done():
			return
		case <-time.After(delay):
		}
	}

	s.setMode(ModePolling)
	s.pollLoop()
}

// consumePush opens the push channel and drains it until the channel dies
// or the subscription is torn down. A successful connect starts the retry
// budget over: both the attempt counter and the backoff schedule reset.
func (s *Subscription) consumePush(bo *backoff.ExponentialBackOff) error {
	pubsub := s.bus.rdb.Subscribe(s.ctx, s.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(s.ctx); err != nil {
		return err
	}

	s.setMode(ModePush)
	s.mu.Lock()
	s.retryAttempt = 0
	s.mu.Unlock()
	bo.Reset()

	ch := pubsub.Channel()
	for {
		select {
		case <-s.ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return errors.New("push channel closed")
			}
			var event domain.StatusChanged
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				zap.L().Error("can't decode push payload", zap.String("channel", s.channel), zap.Error(err))
				continue
			}
			s.deliver(Update{
				OrderID:   event.OrderID,
				Status:    event.NewStatus,
				SubStatus: event.SubStatus,
				UpdatedAt: event.UpdatedAt,
			})
		}
	}
}

func (s *Subscription) pollLoop() {
	ticker := time.NewTicker(s.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			updates, err := s.poll(s.ctx)
			if err != nil {
				zap.L().Warn("polling read failed", zap.String("channel", s.channel), zap.Error(err))
				continue
			}
			for _, update := range updates {
				s.deliver(update)
			}
		}
	}
}

// deliver invokes the callback only when the effective status changed
// since the last delivery. A stale push arriving after a fresher polling
// read of the same status is dropped here, not reordered.
func (s *Subscription) deliver(update Update) {
	s.mu.Lock()
	if s.lastDelivered[update.OrderID] == update.Status {
		s.mu.Unlock()
		return
	}
	s.lastDelivered[update.OrderID] = update.Status
	s.mu.Unlock()

	s.callback(update)
}

// Unsubscribe tears the subscription down: pending retry timers and the
// polling ticker stop, the channel handle is released. Safe to call more
// than once and before the first connection attempt completes.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// Done is closed when the subscription's goroutine has fully stopped.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Subscription) RetryAttempt() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.retryAttempt
}

func (s *Subscription) setMode(mode Mode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
}
