package cronjob

import (
	"context"
	"time"

	"github.com/GoSim-25-26J-441/c4model-api/config"
	"github.com/GoSim-25-26J-441/c4model-api/internal/c4model/service"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const publishTimeout = 30 * time.Second

type Scheduler struct {
	c   *cron.Cron
	pub *service.Publisher
	log *zap.SugaredLogger
}

func NewScheduler(pub *service.Publisher, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		c:   cron.New(cron.WithParser(config.ScheduleParser)),
		pub: pub,
		log: log,
	}
}

// Start schedules snapshot refreshes. The schedule uses the cron format with
// an optional leading seconds field, e.g. "0 */30 * * * *" or "*/30 * * * *".
func (s *Scheduler) Start(spec string) error {
	if _, err := s.c.AddFunc(spec, s.refresh); err != nil {
		return err
	}
	s.log.Infow("snapshot scheduler started", "spec", spec)
	s.c.Start()
	return nil
}

// Stop halts scheduling and returns a context that is done once any
// running refresh has finished.
func (s *Scheduler) Stop() context.Context {
	return s.c.Stop()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if _, err := s.pub.PublishAll(ctx); err != nil {
		s.log.Errorw("snapshot refresh failed", "error", err)
	}
}
