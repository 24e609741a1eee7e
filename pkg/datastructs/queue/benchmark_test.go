package queue

import (
	"sync"
	"testing"
)

// ===========================================================================
// Benchmark Configuration
// ===========================================================================

// queueBenchConfig holds benchmark test configuration.
type queueBenchConfig struct {
	name     string
	capacity int
}

// benchConfigs defines the data sizes for benchmarking.
// Add more configurations as needed for comparison.
var benchConfigs = []queueBenchConfig{
	{"Small/Cap64", 64},
	{"Medium/Cap1K", 1024},
	{"Large/Cap64K", 64 * 1024},
}

// ===========================================================================
// Queue Factory Registry
// ===========================================================================

// queueFactory creates a Queue[int] with the given capacity.
type queueFactory func(capacity int) Queue[int]

// queueImplementations holds all registered queue implementations.
// Add new implementations here when they are created.
var queueImplementations = map[string]queueFactory{
	"Bounded": func(capacity int) Queue[int] { return newBenchBounded(capacity) },
}

func newBenchBounded(capacity int) *Bounded[int] {
	q, err := New[int](capacity)
	if err != nil {
		panic(err)
	}
	return q
}

// ===========================================================================
// Single-Threaded Benchmarks
// ===========================================================================

// BenchmarkEnqueue measures Enqueue performance.
func BenchmarkEnqueue(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory(cfg.capacity)
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					q.Enqueue(i)
					// Drain to avoid full queue
					if i%cfg.capacity == cfg.capacity-1 {
						b.StopTimer()
						for j := 0; j < cfg.capacity; j++ {
							q.Dequeue()
						}
						b.StartTimer()
					}
				}
			})
		}
	}
}

// BenchmarkDequeue measures Dequeue performance.
func BenchmarkDequeue(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory(cfg.capacity)
				// Pre-fill
				for i := 0; i < cfg.capacity; i++ {
					q.Enqueue(i)
				}

				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					_, ok := q.Dequeue()
					// Refill when empty
					if !ok {
						b.StopTimer()
						for j := 0; j < cfg.capacity; j++ {
							q.Enqueue(j)
						}
						b.StartTimer()
					}
				}
			})
		}
	}
}

// BenchmarkEnqueueDequeue measures roundtrip Enqueue+Dequeue.
func BenchmarkEnqueueDequeue(b *testing.B) {
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory(cfg.capacity)
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					q.Enqueue(i)
					q.Dequeue()
				}
			})
		}
	}
}

// ===========================================================================
// Concurrent Benchmarks (blocking Put/Get)
// ===========================================================================

// concurrencyConfigs defines producer/consumer count combinations.
var concurrencyConfigs = []struct {
	name      string
	producers int
	consumers int
}{
	{"1P1C", 1, 1},
	{"2P2C", 2, 2},
	{"4P4C", 4, 4},
	{"8P8C", 8, 8},
}

// BenchmarkConcurrent_PutGet measures blocking throughput with backpressure.
func BenchmarkConcurrent_PutGet(b *testing.B) {
	const capacity = 1024
	const opsPerProducer = 10000

	for _, cc := range concurrencyConfigs {
		b.Run(cc.name, func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				q := newBenchBounded(capacity)

				var consumers sync.WaitGroup
				consumers.Add(cc.consumers)
				for c := 0; c < cc.consumers; c++ {
					go func() {
						defer consumers.Done()
						for {
							if _, ok := q.Get(); !ok {
								return
							}
						}
					}()
				}

				var producers sync.WaitGroup
				producers.Add(cc.producers)
				for p := 0; p < cc.producers; p++ {
					go func(id int) {
						defer producers.Done()
						for i := 0; i < opsPerProducer; i++ {
							_ = q.Put(id*opsPerProducer + i)
						}
					}(p)
				}

				producers.Wait()
				for c := 0; c < cc.consumers; c++ {
					_ = q.Stop()
				}
				consumers.Wait()
			}
		})
	}
}

// BenchmarkConcurrent_SmallCapacity keeps producers parked most of the time.
func BenchmarkConcurrent_SmallCapacity(b *testing.B) {
	q := newBenchBounded(2)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, ok := q.Get(); !ok {
				return
			}
		}
	}()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = q.Put(i)
			i++
		}
	})
	b.StopTimer()

	_ = q.Stop()
	<-done
}

// ===========================================================================
// Throughput Benchmark (items/second)
// ===========================================================================

// BenchmarkThroughput measures maximum single-threaded throughput.
func BenchmarkThroughput(b *testing.B) {
	const capacity = 1024

	for implName, factory := range queueImplementations {
		b.Run(implName, func(b *testing.B) {
			q := factory(capacity)
			b.ResetTimer()
			b.ReportAllocs()

			ops := 0
			for i := 0; i < b.N; i++ {
				// Enqueue batch
				for j := 0; j < capacity; j++ {
					q.Enqueue(j)
				}
				// Dequeue batch
				for j := 0; j < capacity; j++ {
					q.Dequeue()
				}
				ops += capacity * 2
			}
			b.ReportMetric(float64(ops)/b.Elapsed().Seconds(), "ops/s")
		})
	}
}
