package queue

import "github.com/huynhanx03/go-pcqueue/pkg/common/apperr"

// MaxCapacity is the largest capacity a queue can reserve.
const MaxCapacity = 1 << 30

var (
	// ErrInvalidArgument is returned for a non-positive capacity and for
	// operations on a nil or destroyed queue.
	ErrInvalidArgument = apperr.New(apperr.CodeInvalidArgument, "queue: invalid argument", nil)

	// ErrAllocationFailure is returned when the queue cannot reserve storage
	// for the requested capacity.
	ErrAllocationFailure = apperr.New(apperr.CodeAllocationFailure, "queue: allocation failure", nil)
)
