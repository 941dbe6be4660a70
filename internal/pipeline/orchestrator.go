package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dgallion1/docsumm/internal/chunker"
	"github.com/dgallion1/docsumm/internal/config"
	"github.com/dgallion1/docsumm/internal/summarize"
)

// Orchestrator owns the job store and the worker pool that drains the
// summarization queue off the request path.
type Orchestrator struct {
	jobs  *JobStore
	queue chan *Job
	stats *summarize.Stats
	log   *slog.Logger
	cfg   config.Config

	chunkCfg chunker.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline. Call Start to launch workers.
func NewOrchestrator(cfg config.Config, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:  NewJobStore(cfg.JobTTL),
		queue: make(chan *Job, cfg.MaxQueueSize),
		stats: summarize.NewStats(cfg.StatsWindow),
		log:   log,
		cfg:   cfg,
		chunkCfg: chunker.Config{
			MaxSize: cfg.MaxChunkSize,
			Overlap: cfg.ChunkOverlap,
		},
	}
}

// Start launches worker goroutines and the job store cleanup loop.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.log, o.chunkCfg, o.stats, o.cfg.RetryAttempts, o.cfg.RetryDelay, o.cfg.PDFFallbackPdftotext)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit registers and queues a new job.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.Fail("job queue is full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID, or nil when unknown or expired.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// Stats exposes the backend call latency window.
func (o *Orchestrator) Stats() *summarize.Stats {
	return o.stats
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}
