package perftests

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"skillswap/internal/biddingerrors"
	bidding "skillswap/internal/biddingService"
	"skillswap/internal/bidstore"
	"skillswap/internal/realtime"
	repository "skillswap/internal/repository"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name           string
	NumFreelancers int
	NumProjects    int
	ReadRatio      int
	Burst          bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	latencies := append([]time.Duration(nil), om.latencies...)
	om.mu.Unlock()
	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupService creates the repository, a broadcasting service and a store
// watching project_0 over the same in-memory hub
func setupService(b *testing.B, numProjects int) (*bidding.BiddingService, *bidstore.Store) {
	hub := realtime.NewMemoryHub()
	events := realtime.NewChannel(hub.Dial)
	watcher := realtime.NewChannel(hub.Dial)
	b.Cleanup(func() {
		_ = events.Close()
		_ = watcher.Close()
	})

	repo := repository.NewMemoryRepo()
	svc := bidding.NewBiddingService(repo, events)
	for i := 0; i < numProjects; i++ {
		addProject(repo, fmt.Sprintf("project_%d", i))
	}

	store := bidstore.New(staticLister(nil))
	if err := store.Load(context.Background(), "project_0"); err != nil {
		b.Fatalf("load failed: %v", err)
	}
	b.Cleanup(store.Attach(watcher))
	if err := watcher.JoinProjectRoom(context.Background(), "project_0"); err != nil {
		b.Fatalf("join failed: %v", err)
	}
	return svc, store
}

// Benchmark_Load_BiddingSystem runs multiple scenarios
func Benchmark_Load_BiddingSystem(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 2000, 200, 0, false},
		{"High-Contention-WriteHeavy", 5000, 10, 0, false},
		{"Mixed-Workload", 3000, 50, 7, false},
		{"ReadHeavy", 2000, 50, 9, false},
		{"Edge-Case-SingleProject", 1000, 1, 5, false},
		{"Peak-Burst", 5000, 50, 0, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	svc, watched := setupService(b, s.NumProjects)
	ctx := context.Background()

	var totalOps, successfulBids, duplicateBids, failedBids, totalReads int64
	projectSuccess := make([]int64, s.NumProjects)
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			projectIndex := rnd.Intn(s.NumProjects)
			projectID := fmt.Sprintf("project_%d", projectIndex)
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				_, err := svc.GetBidsForProject(projectID)
				if err != nil && !errors.Is(err, biddingerrors.ErrNoBids) {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&totalReads, 1)
			} else {
				actor := freelancer(fmt.Sprintf("freelancer_%d", rnd.Intn(s.NumFreelancers)))
				_, err := svc.PlaceBid(ctx, actor, projectID, bidInput(float64(100+rnd.Intn(400))))
				switch {
				case err == nil:
					atomic.AddInt64(&successfulBids, 1)
					atomic.AddInt64(&projectSuccess[projectIndex], 1)
				case errors.Is(err, biddingerrors.ErrDuplicateBid):
					atomic.AddInt64(&duplicateBids, 1)
				default:
					b.Logf("ignored bid error: %v", err)
					atomic.AddInt64(&failedBids, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Projects: %d | Total Ops: %d | Success Bids: %d | Duplicate Bids: %d | Failed Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumProjects, totalOps, successfulBids, duplicateBids, failedBids, totalReads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
	b.Logf("Watched project_0: %d bids placed, %d seen by the live store", projectSuccess[0], watched.Len())
}
