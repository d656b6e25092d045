package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"hostbot/internal/adapters/observability"
	"hostbot/internal/domain"
)

// InboxSummary counts what one inbox pass did.
type InboxSummary struct {
	Fetched int
	Replied int
	Skipped int
	Failed  int
}

type ResponderService struct {
	inbox domain.InboxClient
	auto  *AutomationService
}

func NewResponderService(c domain.InboxClient, a *AutomationService) *ResponderService {
	return &ResponderService{inbox: c, auto: a}
}

// ProcessInbox pulls unread messages once and answers each, running at
// most workers replies at a time. A failed reply is logged and counted,
// it does not stop the pass.
func (s *ResponderService) ProcessInbox(ctx context.Context, workers int) (InboxSummary, error) {
	raw, err := s.inbox.GetMessages(ctx)
	if err != nil {
		return InboxSummary{}, err
	}
	if workers <= 0 {
		workers = 1
	}

	sum := InboxSummary{Fetched: len(raw)}
	var replied, failed int64
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, p := range raw {
		m, ok := MapInboxMessage(p)
		if !ok {
			sum.Skipped++
			log.Warn().Msg("inbox message without text skipped")
			continue
		}

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			sum.Replied = int(atomic.LoadInt64(&replied))
			sum.Failed = int(atomic.LoadInt64(&failed))
			return sum, err
		}

		wg.Add(1)
		go func(m domain.GuestMessage) {
			defer wg.Done()
			defer sem.Release(1)

			rep, err := s.auto.HandleMessage(ctx, m)
			if err != nil {
				atomic.AddInt64(&failed, 1)
				log.Warn().Str("guest", m.GuestName).Str("err_type", observability.LabelErr(err)).Err(err).Msg("auto reply failed")
				return
			}
			atomic.AddInt64(&replied, 1)
			ev := log.Info()
			if rep.Urgent {
				ev = log.Warn()
			}
			ev.Str("guest", rep.GuestName).Str("intent", string(rep.Intent)).Bool("urgent", rep.Urgent).Msg("auto reply queued")
		}(m)
	}

	wg.Wait()
	sum.Replied = int(replied)
	sum.Failed = int(failed)
	return sum, nil
}
