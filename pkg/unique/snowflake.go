package unique

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-pcqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-pcqueue/pkg/settings"
	t "github.com/huynhanx03/go-pcqueue/pkg/timer"
)

// secondsThreshold is the id width below which timestamps switch from
// milliseconds to seconds to postpone overflow.
const secondsThreshold = 50

// Generator hands out unique int64 ids.
type Generator interface {
	Generate() int64
}

// Snowflake generates time-ordered ids laid out as
// [timestamp | node | step] within totalBits.
type Snowflake struct {
	mu        sync.Mutex
	timestamp int64
	step      int64

	node      int64
	epoch     int64
	totalBits uint8
	stepMax   int64
	timeShift uint8
	nodeShift uint8
	limitMask int64

	clock t.Timer
}

func NewSnowflakeNode(cfg settings.SnowflakeNode, clock t.Timer) (*Snowflake, error) {
	bits := cfg.Config
	nodeMax := int64(-1 ^ (-1 << bits.Node))

	if cfg.WorkerID < 0 || cfg.WorkerID > nodeMax {
		return nil, apperr.NewError("snowflake", apperr.CodeInvalidArgument, apperr.MsgCreateFailed,
			errors.Errorf("worker id %d outside [0, %d]", cfg.WorkerID, nodeMax))
	}

	totalBits := bits.TotalBits
	if totalBits == 0 {
		totalBits = 63
	}
	if totalBits <= bits.Node+bits.Step {
		return nil, apperr.NewError("snowflake", apperr.CodeInvalidArgument, apperr.MsgCreateFailed,
			errors.Errorf("total bits %d must exceed node+step bits %d", totalBits, bits.Node+bits.Step))
	}

	limitMask := int64(1)<<totalBits - 1
	if totalBits >= 63 {
		limitMask = int64(^uint64(0) >> 1)
	}

	return &Snowflake{
		node:      cfg.WorkerID,
		epoch:     bits.Epoch,
		totalBits: totalBits,
		stepMax:   int64(-1 ^ (-1 << bits.Step)),
		timeShift: bits.Node + bits.Step,
		nodeShift: bits.Step,
		limitMask: limitMask,
		clock:     clock,
	}, nil
}

// Generate returns the next id. Ids from one Snowflake strictly increase
// while the clock does not run backwards past the epoch.
func (s *Snowflake) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.tick()
	if now < s.timestamp {
		now = s.timestamp
	}

	if now == s.timestamp {
		s.step = (s.step + 1) & s.stepMax
		if s.step == 0 {
			// step exhausted for this tick
			for now <= s.timestamp {
				now = s.tick()
			}
		}
	} else {
		s.step = 0
	}
	s.timestamp = now

	id := ((now - s.epoch) << s.timeShift) | (s.node << s.nodeShift) | s.step
	return id & s.limitMask
}

func (s *Snowflake) tick() int64 {
	if s.totalBits < secondsThreshold {
		return s.clock.Now().Unix()
	}
	return s.clock.Now().UnixMilli()
}
