package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostQueuesWork(t *testing.T) {
	work := make(chan Work, 1)
	s := NewScheduler(work)

	ran := false
	s.Post(func() { ran = true })

	assert.False(t, ran)
	(<-work).Service()
	assert.True(t, ran)
}

func TestAfterFuncDeliversToWorkChannel(t *testing.T) {
	work := make(chan Work, 1)
	s := NewScheduler(work)

	ran := false
	s.AfterFunc("x", time.Millisecond, func() { ran = true })

	select {
	case w := <-work:
		w.Service()
	case <-time.After(time.Second):
		t.Fatal("timer never delivered its work")
	}
	assert.True(t, ran)

	// Servicing releases the id for reuse.
	s.AfterFunc("x", time.Millisecond, func() {})
	_, pending := s.timers["x"]
	assert.True(t, pending)
	s.Cancel("x")
}

func TestAfterFuncIgnoresDuplicateID(t *testing.T) {
	work := make(chan Work, 2)
	s := NewScheduler(work)

	s.AfterFunc("x", time.Millisecond, func() {})
	s.AfterFunc("x", time.Millisecond, func() { t.Error("duplicate id was scheduled") })

	select {
	case w := <-work:
		w.Service()
	case <-time.After(time.Second):
		t.Fatal("timer never delivered its work")
	}

	select {
	case w := <-work:
		w.Service()
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCancelStopsPendingTimer(t *testing.T) {
	work := make(chan Work, 1)
	s := NewScheduler(work)

	s.AfterFunc("x", 20*time.Millisecond, func() {})
	s.Cancel("x")

	select {
	case <-work:
		t.Fatal("cancelled timer still fired")
	case <-time.After(60 * time.Millisecond):
	}
}
