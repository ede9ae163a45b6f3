package jobs

import (
	"context"
	"log/slog"
	"time"

	"procurement/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// LateDeliveryJob periodically scans for orders whose expected delivery date
// has passed while they are still waiting for goods. Overdue orders are only
// reported; chasing the supplier stays a human decision.
type LateDeliveryJob struct {
	orders ports.OrderRepository
	cron   *cron.Cron
	logger *slog.Logger
}

// NewLateDeliveryJob creates the watchdog over the given order repository.
func NewLateDeliveryJob(orders ports.OrderRepository, logger *slog.Logger) *LateDeliveryJob {
	return &LateDeliveryJob{
		orders: orders,
		cron:   cron.New(),
		logger: logger.With("component", "late_delivery_job"),
	}
}

// Start schedules the hourly scan.
func (j *LateDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", j.scan)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Late delivery job started (running hourly)")
	return nil
}

// Stop stops the scheduled scan.
func (j *LateDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Late delivery job stopped")
}

func (j *LateDeliveryJob) scan() {
	ctx := context.Background()
	now := time.Now().UTC()

	overdue, err := j.orders.GetAllOverdue(ctx, now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Late delivery scan failed", "error", err)
		return
	}

	for _, ord := range overdue {
		j.logger.WarnContext(ctx, "Order is past its expected delivery date",
			"order_id", ord.ID().String(),
			"supplier_id", ord.SupplierID().String(),
			"status", ord.Status().String(),
			"expected_delivery", ord.ExpectedDelivery().Format(time.RFC3339),
		)
	}

	if len(overdue) > 0 {
		j.logger.InfoContext(ctx, "Late delivery scan finished", "overdue_orders", len(overdue))
	}
}
