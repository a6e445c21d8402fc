package cron

import (
	"context"
	"time"

	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-dashboard/internal/pkg/sse"
)

// ClockTick is the payload of the live clock event.
type ClockTick struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// ClockJobs drives the dashboard's live clock. It only publishes; the store
// is never touched.
type ClockJobs struct {
	clock clock.Clock
	hub   *sse.Hub
}

func NewClockJobs(c clock.Clock, hub *sse.Hub) *ClockJobs {
	return &ClockJobs{clock: c, hub: hub}
}

func (j *ClockJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("clock_tick", interval, j.Tick)
}

func (j *ClockJobs) Tick(ctx context.Context) error {
	if j.hub.SubscriberCount() == 0 {
		return nil
	}
	j.hub.Publish(sse.Event{
		Event: sse.EventClock,
		Data: ClockTick{
			Date: clock.Today(j.clock),
			Time: clock.TimeOfDay(j.clock),
		},
	})
	return nil
}
