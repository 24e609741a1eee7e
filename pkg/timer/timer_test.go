package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCachedTimer_Advances(t *testing.T) {
	tm := NewCachedTimer(time.Millisecond)
	defer tm.Stop()

	start := tm.Now()
	assert.Eventually(t, func() bool {
		return tm.Now().After(start)
	}, time.Second, time.Millisecond)
}

func TestCachedTimer_StopTwice(t *testing.T) {
	tm := NewCachedTimer(time.Millisecond)
	tm.Stop()
	tm.Stop()

	frozen := tm.Now()
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, frozen, tm.Now())
}

func TestSystemTimer(t *testing.T) {
	var tm Timer = SystemTimer{}
	defer tm.Stop()
	assert.WithinDuration(t, time.Now(), tm.Now(), time.Second)
}
