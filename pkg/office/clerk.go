package office

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-pcqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-pcqueue/pkg/unique"
)

// clerk files a fixed number of documents into the queue.
type clerk struct {
	number int
	docs   int
	delay  time.Duration
	queue  queue.BlockingQueue[*Document]
	ids    unique.Generator
	log    *zap.Logger

	filed int
	done  chan struct{} // closed when run returns
}

func (c *clerk) run(ctx context.Context) error {
	defer close(c.done)

	for seq := 0; seq < c.docs; seq++ {
		if err := sleep(ctx, c.delay); err != nil {
			return err
		}

		doc := &Document{ID: c.ids.Generate(), Clerk: c.number, Seq: seq}
		if err := c.queue.PutContext(ctx, doc); err != nil {
			return errors.Wrapf(err, "clerk #%d put document %d", c.number, seq)
		}
		c.filed++

		c.log.Info("clerk put document",
			zap.Int("clerk", c.number),
			zap.String("document", doc.Label()),
			zap.Int("seq", seq),
		)
	}
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
