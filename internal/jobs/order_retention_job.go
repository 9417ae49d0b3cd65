package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultRetentionSchedule runs the purge at the top of every hour.
const DefaultRetentionSchedule = "@hourly"

type orderPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredOrdersCommand) (int64, error)
}

// OrderRetentionJob periodically removes orders older than the retention
// window together with their payment attempts.
type OrderRetentionJob struct {
	purger    orderPurger
	schedule  string
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewOrderRetentionJob(
	purger orderPurger,
	schedule string,
	retention time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) *OrderRetentionJob {
	if schedule == "" {
		schedule = DefaultRetentionSchedule
	}

	return &OrderRetentionJob{
		purger:    purger,
		schedule:  schedule,
		retention: retention,
		now:       func() time.Time { return time.Now().UTC() },
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		metrics:   m,
		logger:    logger.With("component", "order_retention_job"),
	}
}

func (j *OrderRetentionJob) Name() string {
	return "order retention"
}

// Start registers the purge on the configured schedule and starts the scheduler.
func (j *OrderRetentionJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order retention job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// RunOnce purges everything that expired as of now and returns the number of removed orders.
func (j *OrderRetentionJob) RunOnce(ctx context.Context) (int64, error) {
	cmd, err := commands.NewPurgeExpiredOrdersCommand(j.now(), j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order retention job misconfigured", "error", err)
		return 0, err
	}

	purged, err := j.purger.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order retention job failed", "error", err)
		return 0, err
	}

	j.metrics.ObservePurgedOrders(purged)
	if purged > 0 {
		j.logger.InfoContext(ctx, "Expired orders purged", "count", purged, "cutoff", cmd.Cutoff())
	}
	return purged, nil
}

// Stop stops the scheduler and waits for a purge in progress to finish.
func (j *OrderRetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order retention job stopped")
}
