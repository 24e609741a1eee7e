package office

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-pcqueue/pkg/datastructs/queue"
)

// scanner prints documents taken from the queue until its context ends or,
// when exitOnStop is set, until it receives the stop sentinel.
type scanner struct {
	number     int
	delay      time.Duration
	exitOnStop bool
	queue      queue.BlockingQueue[*Document]
	log        *zap.Logger

	scanned     atomic.Int64
	interrupted atomic.Int64 // dequeued but not printed
}

func (s *scanner) run(ctx context.Context) {
	for {
		doc, ok, err := s.queue.GetContext(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				s.log.Error("scanner get failed", zap.Int("scanner", s.number), zap.Error(err))
			}
			return
		}
		if !ok {
			if s.exitOnStop {
				s.log.Info("scanner stopped", zap.Int("scanner", s.number))
				return
			}
			s.log.Debug("scanner ignored stop", zap.Int("scanner", s.number))
			continue
		}

		if err := sleep(ctx, s.delay); err != nil {
			s.interrupted.Add(1)
			s.log.Warn("scanner interrupted",
				zap.Int("scanner", s.number),
				zap.String("document", doc.Label()),
			)
			return
		}
		s.scanned.Add(1)

		s.log.Info("scanner printed document",
			zap.Int("scanner", s.number),
			zap.String("document", doc.Label()),
			zap.Int("clerk", doc.Clerk),
		)
	}
}
