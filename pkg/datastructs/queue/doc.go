// Package queue provides FIFO queues for passing values between goroutines.
//
// Bounded is a blocking multiple-producer multiple-consumer queue with a fixed
// capacity. Put blocks while the queue is full and Get blocks while it is
// empty. Stop pushes an end-of-stream sentinel through the same path; a
// consumer sees it as Get returning ok == false and decides for itself whether
// to exit. The *Context variants accept a deadline or cancellation, while the
// plain calls wait indefinitely.
package queue
