package jobs

import (
	"context"
	"log/slog"
	"time"

	"pos/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob periodically reports orders stuck in the Pending state.
// An order that nobody moved into preparation within the configured age
// usually means a kitchen ticket got lost, so the job surfaces it in the
// logs for the staff to chase.
type StaleOrderJob struct {
	handler  queries.StaleOrdersQueryHandler
	staleAge time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrderJob creates a new job that reports pending orders older
// than staleAge. The check runs once a minute.
func NewStaleOrderJob(
	handler queries.StaleOrdersQueryHandler,
	staleAge time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:  handler,
		staleAge: staleAge,
		cron:     cron.New(),
		logger:   logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order check on a one-minute schedule.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)",
		"stale_age", j.staleAge)
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}

func (j *StaleOrderJob) run() {
	ctx := context.Background()

	query, err := queries.NewStaleOrdersQuery(time.Now().UTC().Add(-j.staleAge))
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order job failed to build query", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order job failed", "error", err)
		return
	}

	for _, o := range stale {
		j.logger.WarnContext(ctx, "Order pending for too long",
			"order_id", o.ID,
			"tenant_id", o.TenantID,
			"kitchen_ticket", o.KitchenTicket,
			"created_at", o.CreatedAt,
		)
	}
}
