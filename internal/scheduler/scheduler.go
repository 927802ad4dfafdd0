package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic housekeeping jobs: dropping rate-limit records
// whose window elapsed and evicting sessions idle past the timeout. Both
// purges are memory hygiene only; expiry itself is applied lazily on access.
type Scheduler struct {
	cron          *cron.Cron
	purgeSessions func() int
	purgeQuotas   func() int
}

func New(purgeSessions, purgeQuotas func() int) *Scheduler {
	return &Scheduler{
		cron:          cron.New(cron.WithLocation(time.UTC)),
		purgeSessions: purgeSessions,
		purgeQuotas:   purgeQuotas,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@hourly", func() {
		sessions := s.purgeSessions()
		quotas := s.purgeQuotas()
		if sessions > 0 || quotas > 0 {
			log.Printf("housekeeping: purged %d sessions, %d quota records", sessions, quotas)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Println("scheduler started, housekeeping runs hourly")
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	log.Println("scheduler stopped")
}
