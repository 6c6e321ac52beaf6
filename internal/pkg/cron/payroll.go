package cron

import (
	"context"
	"log/slog"
	"time"
)

// PayrollProcessor is satisfied by *store.Store.
type PayrollProcessor interface {
	ProcessBatchPayroll(period string) (int, error)
}

type PayrollJobs struct {
	processor PayrollProcessor
	logger    *slog.Logger
	now       func() time.Time
}

func NewPayrollJobs(processor PayrollProcessor, logger *slog.Logger) *PayrollJobs {
	if logger == nil {
		logger = slog.Default()
	}
	return &PayrollJobs{processor: processor, logger: logger, now: time.Now}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("process_batch_payroll", interval, j.ProcessCurrentPeriod)
}

// ProcessCurrentPeriod creates the missing payroll rows of the current month.
// Re-running it within the same month only fills in new employees.
func (j *PayrollJobs) ProcessCurrentPeriod(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	period := j.now().Format("2006-01")
	count, err := j.processor.ProcessBatchPayroll(period)
	if err != nil {
		return err
	}
	if count > 0 {
		j.logger.InfoContext(ctx, "cron: payroll batch processed", slog.String("period", period), slog.Int("records", count))
	}
	return nil
}
