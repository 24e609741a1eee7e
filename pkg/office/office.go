package office

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/huynhanx03/go-pcqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-pcqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-pcqueue/pkg/logger"
	"github.com/huynhanx03/go-pcqueue/pkg/settings"
	"github.com/huynhanx03/go-pcqueue/pkg/unique"
)

// Report summarizes one office run. Every filed document is accounted for
// exactly once: sum(Filed) == sum(Scanned) + Interrupted + Pending.
type Report struct {
	Filed       []int   // documents filed, per clerk
	Scanned     []int64 // documents printed, per scanner
	Interrupted int     // documents taken by a scanner released mid-print
	Pending     int     // documents left in the queue
}

// Office runs clerks and scanners around one bounded queue.
type Office struct {
	cfg settings.Office
	ids unique.Generator
	log *zap.Logger
}

func New(cfg settings.Office, ids unique.Generator, log *zap.Logger) *Office {
	if log == nil {
		log = logger.NewNop()
	}
	return &Office{cfg: cfg, ids: ids, log: log}
}

// Run files every clerk's documents and returns once all clerks are done.
//
// Scanners are started before the clerks and are not joined for completion:
// when the clerks finish, the scanners are released and documents still queued
// are reported as pending; a document a scanner was printing when released
// is reported as interrupted. With DrainOnFinish, one stop sentinel per scanner
// is queued behind the documents instead, every scanner exits on its sentinel,
// and the drained queue is destroyed.
func (o *Office) Run(ctx context.Context) (*Report, error) {
	q, err := queue.New[*Document](o.cfg.QueueSize)
	if err != nil {
		return nil, apperr.MapError("office", errors.Wrap(err, "queue"), apperr.CodeOf(err), apperr.MsgCreateFailed)
	}

	runCtx, release := context.WithCancel(ctx)
	defer release()

	scanners := make([]*scanner, o.cfg.Scanners)
	var scanning sync.WaitGroup
	for i := range scanners {
		s := &scanner{
			number:     i,
			delay:      o.cfg.ScannerInterval(),
			exitOnStop: o.cfg.DrainOnFinish,
			queue:      q,
			log:        o.log,
		}
		scanners[i] = s
		scanning.Add(1)
		go func() {
			defer scanning.Done()
			s.run(runCtx)
		}()
	}

	clerks := make([]*clerk, o.cfg.Clerks)
	g, gctx := errgroup.WithContext(runCtx)
	for i := range clerks {
		c := &clerk{
			number: i,
			docs:   o.cfg.DocsPerClerk,
			delay:  o.cfg.ClerkInterval(),
			queue:  q,
			ids:    o.ids,
			log:    o.log,
			done:   make(chan struct{}),
		}
		clerks[i] = c
		g.Go(func() error { return c.run(gctx) })
	}

	o.joinClerks(clerks)
	runErr := g.Wait()

	if runErr == nil && o.cfg.DrainOnFinish {
		runErr = o.drain(runCtx, q, &scanning)
	}

	release()
	scanning.Wait()

	report := &Report{
		Filed:   make([]int, len(clerks)),
		Scanned: make([]int64, len(scanners)),
		Pending: q.Len(),
	}
	for i, c := range clerks {
		report.Filed[i] = c.filed
	}
	for i, s := range scanners {
		report.Scanned[i] = s.scanned.Load()
		report.Interrupted += int(s.interrupted.Load())
	}

	if runErr != nil {
		return report, apperr.MapError("office", runErr, apperr.CodeInternal, apperr.MsgProcessFailed)
	}
	return report, nil
}

// joinClerks waits for each clerk in order and reports it as soon as it is
// joined. Clerks that stopped early are not reported as finished.
func (o *Office) joinClerks(clerks []*clerk) {
	for _, c := range clerks {
		<-c.done
		if c.filed == c.docs {
			o.log.Info("clerk finished", zap.Int("clerk", c.number), zap.Int("documents", c.filed))
		}
	}
}

// drain queues one stop sentinel per scanner, waits for all scanners to exit
// and destroys the empty queue.
func (o *Office) drain(ctx context.Context, q *queue.Bounded[*Document], scanning *sync.WaitGroup) error {
	for i := 0; i < o.cfg.Scanners; i++ {
		if err := q.StopContext(ctx); err != nil {
			return errors.Wrap(err, "queue stop")
		}
	}
	scanning.Wait()

	if err := q.Destroy(); err != nil {
		return errors.Wrap(err, "queue destroy")
	}
	o.log.Info("office drained", zap.Int("scanners", o.cfg.Scanners))
	return nil
}
