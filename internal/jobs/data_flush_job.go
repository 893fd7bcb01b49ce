package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DataSaver persists a snapshot of the order-independent data.
type DataSaver interface {
	Handle(ctx context.Context, cmd commands.SaveDataCommand) (ports.Snapshot, error)
}

// DataFlushJob periodically writes accounts, menu and promo codes to storage.
type DataFlushJob struct {
	handler DataSaver
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDataFlushJob creates a flush job on the given schedule.
func NewDataFlushJob(handler DataSaver, schedule string, logger *slog.Logger) (*DataFlushJob, error) {
	j := &DataFlushJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "data_flush_job"),
	}

	if _, err := j.cron.AddFunc(schedule, func() {
		_ = j.Flush(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("flush schedule %q: %w", schedule, err)
	}
	return j, nil
}

// Flush saves once. It is also used for the final flush at shutdown.
func (j *DataFlushJob) Flush(ctx context.Context) error {
	snapshot, err := j.handler.Handle(ctx, commands.NewSaveDataCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Data flush failed", "error", err)
		return err
	}

	j.logger.DebugContext(ctx, "Data flushed",
		"accounts", len(snapshot.Accounts),
		"menu_items", len(snapshot.MenuItems),
		"promo_codes", len(snapshot.PromoCodes),
	)
	return nil
}

// Start begins running the job on its schedule.
func (j *DataFlushJob) Start() {
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Data flush job started")
}

// Stop stops the schedule and waits for a running flush to complete.
func (j *DataFlushJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Data flush job stopped")
}
