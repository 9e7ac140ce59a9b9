package settlementservice

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/velvetbox/settlecore/internal/domain"
)

// Worker re-drives failed settlement records through the route transfer.
// Customer-visible order progress never waits on it.
type Worker struct {
	service        *Service
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

var retryingSettlements sync.Map

func NewWorker(service *Service) *Worker {
	return &Worker{
		service:        service,
		limit:          100,
		workerPool:     NewWorkerPool(5),
		updateInterval: time.Second * 30,
	}
}

func (w *Worker) Start(ctx context.Context) {
	zap.L().Info("Settlement retry worker started")
	go w.run(ctx)
}

func (w *Worker) run(ctx context.Context) {
	ticker := time.NewTicker(w.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement retry worker")
			return
		case <-ticker.C:
			w.processFailed(ctx)
		}
	}
}

func (w *Worker) processFailed(ctx context.Context) {
	items, err := w.service.repo.FindFailed(ctx, w.limit)
	if err != nil {
		zap.L().Error("Failed to fetch settlements for retry", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, item := range items {
		item := item

		if _, loaded := retryingSettlements.LoadOrStore(item.Record.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := w.workerPool.AddTask(ctx, func() error {
				defer retryingSettlements.Delete(item.Record.ID)
				return w.retryTransfer(ctx, item)
			})
			if err != nil {
				retryingSettlements.Delete(item.Record.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error retrying settlements", zap.Error(err))
	}
}

func (w *Worker) retryTransfer(ctx context.Context, item RetryItem) error {
	transferID, err := w.service.transfer.RouteTransfer(ctx, item.VendorAccount,
		item.Record.VendorAmount, "settlement for order "+item.OrderNumber)
	if err != nil {
		zap.L().Warn("Settlement retry failed, will pick up on next tick",
			zap.String("settlementID", item.Record.ID),
			zap.Error(err),
		)
		return nil
	}

	if err := w.service.repo.UpdateStatus(ctx, item.Record.ID, domain.SettlementProcessed, transferID); err != nil {
		return err
	}

	zap.L().Info("Settlement retried successfully",
		zap.String("settlementID", item.Record.ID),
		zap.Int64("vendorAmount", item.Record.VendorAmount),
	)
	return nil
}
