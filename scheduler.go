package main

import (
	"time"
)

// Work is a unit of deferred work serviced on the main UI thread.
type Work interface {
	Service()
}

type basicWork struct {
	f func()
}

func (w basicWork) Service() {
	w.f()
}

// A Scheduler moves work onto the main UI thread, either immediately
// or after a delay. Gesture long-press callbacks go through Post so
// they never run concurrently with event handling.
type Scheduler struct {
	work   chan Work
	timers map[string]*time.Timer
}

func NewScheduler(work chan Work) *Scheduler {
	return &Scheduler{
		work: work,
	}
}

// Post queues f to run in the main UI thread.
func (s *Scheduler) Post(f func()) {
	s.work <- basicWork{f}
}

// AfterFunc waits for the duration to elapse and then runs f in the
// main UI thread. If a timer already exists for id the call is
// ignored.
func (s *Scheduler) AfterFunc(id string, d time.Duration, f func()) {
	s.init()
	if _, ok := s.timers[id]; ok {
		return
	}

	s.timers[id] = time.AfterFunc(d, func() {
		s.work <- scheduledWork{f, id, s}
	})
}

// Cancel stops the timer for id, if one is pending.
func (s *Scheduler) Cancel(id string) {
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *Scheduler) init() {
	if s.timers == nil {
		s.timers = make(map[string]*time.Timer)
	}
}

type scheduledWork struct {
	f  func()
	id string
	s  *Scheduler
}

func (w scheduledWork) Service() {
	w.f()
	delete(w.s.timers, w.id)
}
