package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ethanbaker/taskboard/pkg/session"
	"github.com/robfig/cron/v3"
)

// Janitor periodically sweeps idle board sessions out of a store
type Janitor struct {
	store   session.Store
	maxIdle time.Duration
	cron    *cron.Cron
}

// NewJanitor schedules a sweep of store on the given cron spec (for example "@every 5m")
func NewJanitor(store session.Store, spec string, maxIdle time.Duration) (*Janitor, error) {
	if store == nil {
		return nil, fmt.Errorf("a valid store must be provided")
	}
	if maxIdle <= 0 {
		return nil, fmt.Errorf("max idle duration must be positive, got %s", maxIdle)
	}

	j := &Janitor{
		store:   store,
		maxIdle: maxIdle,
		cron:    cron.New(),
	}

	if _, err := j.cron.AddFunc(spec, j.run); err != nil {
		return nil, fmt.Errorf("failed to schedule sweep '%s': %w", spec, err)
	}

	return j, nil
}

// Start begins running sweeps in the background
func (j *Janitor) Start() {
	j.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

// run performs one sweep
func (j *Janitor) run() {
	if removed := j.store.Sweep(context.Background(), j.maxIdle); removed > 0 {
		log.Printf("[SESSION]: Swept %d idle board(s)", removed)
	}
}
