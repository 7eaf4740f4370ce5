package scheduler

import (
	"context"
	"fmt"
	"log"

	"moneygoup/internal/service"

	"github.com/robfig/cron/v3"
)

type Runner interface {
	Run(ctx context.Context) (service.Summary, error)
}

// Scheduler runs sync passes on a cron schedule. A pass that is still
// running when the next one is due causes that tick to be skipped, so
// passes never overlap.
type Scheduler struct {
	Cron   *cron.Cron
	Runner Runner
	Ctx    context.Context
}

func NewScheduler(ctx context.Context, runner Runner) *Scheduler {
	logger := cron.PrintfLogger(log.Default())
	return &Scheduler{
		Cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		Runner: runner,
		Ctx:    ctx,
	}
}

// Register adds the sync pass under a standard five field cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.runSync); err != nil {
		return fmt.Errorf("register sync task: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops scheduling and waits for a running pass to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) runSync() {
	if s.Ctx.Err() != nil {
		return
	}
	log.Println("[INFO] running scheduled sync")
	summary, err := s.Runner.Run(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] scheduled sync: %v", err)
		return
	}
	log.Printf("[INFO] scheduled sync done: %+v", summary)
}
