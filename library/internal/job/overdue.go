package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultOverdueSchedule = "@daily"

type OverdueNotifier interface {
	NotifyOverdue(ctx context.Context) (int, error)
}

// Scheduler runs the overdue sweep on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	notifier OverdueNotifier
	timeout  time.Duration
	log      *zap.Logger
}

func NewScheduler(spec string, notifier OverdueNotifier, log *zap.Logger) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultOverdueSchedule
	}
	log = log.Named("job")
	cronLog := zapCronLogger{log: log.Sugar()}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog)),
		),
		notifier: notifier,
		timeout:  time.Minute,
		log:      log,
	}
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	n, err := s.notifier.NotifyOverdue(ctx)
	if err != nil {
		s.log.Error("overdue sweep", zap.Error(err))
		return
	}
	s.log.Debug("overdue sweep", zap.Int("records", n))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running sweep to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// zapCronLogger routes cron's scheduling and recovered panic logs to zap.
type zapCronLogger struct {
	log *zap.SugaredLogger
}

func (l zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debugw(msg, keysAndValues...)
}

func (l zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Errorw(msg, append(keysAndValues, "error", err)...)
}
