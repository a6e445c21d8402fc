package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()
	var calls int32
	s.AddJob("counter", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&calls, 1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)
	s.AddJob("once", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start(context.Background())
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	s := NewScheduler()
	assert.NotPanics(t, s.Stop)
}

func TestClockJobs_TickPublishes(t *testing.T) {
	hub := sse.NewHub(1)
	jobs := NewClockJobs(clock.At("2024-01-01", "08:30:00"), hub)

	// no subscribers, nothing to do
	require.NoError(t, jobs.Tick(context.Background()))

	ch, cleanup := hub.Subscribe()
	defer cleanup()
	require.NoError(t, jobs.Tick(context.Background()))

	ev := <-ch
	assert.Equal(t, sse.EventClock, ev.Event)
	assert.Equal(t, ClockTick{Date: "2024-01-01", Time: "08:30:00"}, ev.Data)
}
