package jobs

import (
	"context"
	"log/slog"
)

// Schedules holds the cron expressions, with seconds, of every job.
type Schedules struct {
	Flush  string
	Report string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dataFlushJob   *DataFlushJob
	queueReportJob *QueueReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// An invalid schedule is reported here, before any job runs.
func NewJobManager(
	saver DataSaver,
	pending PendingOrdersLister,
	deliveries DeliveryQueueLister,
	schedules Schedules,
	logger *slog.Logger,
) (*JobManager, error) {
	flush, err := NewDataFlushJob(saver, schedules.Flush, logger)
	if err != nil {
		return nil, err
	}

	report, err := NewQueueReportJob(pending, deliveries, schedules.Report, logger)
	if err != nil {
		return nil, err
	}

	return &JobManager{dataFlushJob: flush, queueReportJob: report}, nil
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() {
	jm.dataFlushJob.Start()
	jm.queueReportJob.Start()
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.queueReportJob.Stop()
	jm.dataFlushJob.Stop()
}

// FinalFlush saves once more after the jobs are stopped.
func (jm *JobManager) FinalFlush(ctx context.Context) error {
	return jm.dataFlushJob.Flush(ctx)
}
