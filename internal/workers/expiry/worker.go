package expiry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	challengeService "github.com/Talha3818/gaming-site-sub001/internal/services/challenge"
)

const (
	defaultInterval   = time.Minute
	defaultBatchLimit = 100
)

// Config holds configuration for the expiry worker
type Config struct {
	// ChallengeService performs the actual expiry transitions
	ChallengeService challengeService.Service

	// Interval is how often the sweep runs; defaults to one minute
	Interval time.Duration

	// BatchLimit caps how many challenges one sweep expires; defaults to 100
	BatchLimit int64
}

// Worker periodically expires overdue pending challenges
type Worker struct {
	challengeService challengeService.Service
	interval         time.Duration
	batchLimit       int64
	scheduler        gocron.Scheduler
}

// New creates a new expiry worker
func New(cfg *Config) (*Worker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.ChallengeService == nil {
		return nil, errors.New("challenge service cannot be nil")
	}

	interval := cfg.Interval
	if interval == 0 {
		interval = defaultInterval
	}

	batchLimit := cfg.BatchLimit
	if batchLimit == 0 {
		batchLimit = defaultBatchLimit
	}

	return &Worker{
		challengeService: cfg.ChallengeService,
		interval:         interval,
		batchLimit:       batchLimit,
	}, nil
}

// Start begins the periodic sweep
func (w *Worker) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(w.sweep),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule expiry sweep: %w", err)
	}

	sched.Start()
	w.scheduler = sched

	return nil
}

// Stop shuts down the sweep
func (w *Worker) Stop() error {
	if w.scheduler == nil {
		return nil
	}
	return w.scheduler.Shutdown()
}

func (w *Worker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	out, err := w.challengeService.ExpireOverdue(ctx, &challengeService.ExpireOverdueInput{
		Limit: w.batchLimit,
	})
	if err != nil {
		log.Printf("[expiry] sweep failed: %v", err)
		return
	}

	if out.Expired > 0 {
		log.Printf("[expiry] expired %d overdue challenge(s)", out.Expired)
	}
}
