package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type PendingOrdersLister interface {
	Handle(ctx context.Context, query queries.GetPendingOrdersQuery) ([]queries.OrderResponse, error)
}

type DeliveryQueueLister interface {
	Handle(ctx context.Context, query queries.GetDeliveryQueueQuery) ([]queries.OrderResponse, error)
}

// QueueReport is what QueueReportJob logs on each tick.
type QueueReport struct {
	Pending          int
	AwaitingDispatch int

	// NextDispatch is the id at the front of the dispatch queue, zero when it is empty.
	NextDispatch int64
}

// QueueReportJob periodically logs the size of the admission stack and dispatch queue.
type QueueReportJob struct {
	pending    PendingOrdersLister
	deliveries DeliveryQueueLister
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewQueueReportJob creates a report job on the given schedule.
func NewQueueReportJob(
	pending PendingOrdersLister,
	deliveries DeliveryQueueLister,
	schedule string,
	logger *slog.Logger,
) (*QueueReportJob, error) {
	j := &QueueReportJob{
		pending:    pending,
		deliveries: deliveries,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "queue_report_job"),
	}

	if _, err := j.cron.AddFunc(schedule, func() {
		_, _ = j.Report(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("report schedule %q: %w", schedule, err)
	}
	return j, nil
}

// Report collects and logs the queue sizes once.
func (j *QueueReportJob) Report(ctx context.Context) (QueueReport, error) {
	pending, errPending := j.pending.Handle(ctx, queries.NewGetPendingOrdersQuery())
	deliveries, errDeliveries := j.deliveries.Handle(ctx, queries.NewGetDeliveryQueueQuery())
	if err := errors.Join(errPending, errDeliveries); err != nil {
		j.logger.ErrorContext(ctx, "Queue report failed", "error", err)
		return QueueReport{}, err
	}

	report := QueueReport{Pending: len(pending), AwaitingDispatch: len(deliveries)}
	if len(deliveries) > 0 {
		report.NextDispatch = int64(deliveries[0].ID)
	}

	j.logger.InfoContext(ctx, "Order queues",
		"pending", report.Pending,
		"awaiting_dispatch", report.AwaitingDispatch,
		"next_dispatch", report.NextDispatch,
	)
	return report, nil
}

// Start begins running the job on its schedule.
func (j *QueueReportJob) Start() {
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue report job started")
}

// Stop stops the schedule and waits for a running report to complete.
func (j *QueueReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Queue report job stopped")
}
