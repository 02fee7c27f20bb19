package main

import (
	"context"
	"log/slog"
	"time"
)

// flagResetSchedule describes the weekly window in which discounts are restored.
type flagResetSchedule struct {
	Weekday  time.Weekday
	Hour     int
	Interval time.Duration
	Location *time.Location
}

func newFlagResetSchedule(ctx *AppContext) flagResetSchedule {
	s := flagResetSchedule{
		Weekday:  time.Monday,
		Hour:     20,
		Interval: 10 * time.Minute,
		Location: ctx.Location(),
	}
	if ctx.Config != nil {
		s.Weekday = time.Weekday(ctx.Config.Reset.Weekday)
		s.Hour = ctx.Config.Reset.Hour
		if ctx.Config.Reset.Interval > 0 {
			s.Interval = ctx.Config.Reset.Interval
		}
	}
	return s
}

// ShouldFire reports whether now falls inside the reset hour. Every tick inside
// that hour fires again; the reset is idempotent.
func (s flagResetSchedule) ShouldFire(now time.Time) bool {
	if s.Location != nil {
		now = now.In(s.Location)
	}
	return now.Weekday() == s.Weekday && now.Hour() == s.Hour
}

// resetFlagsIfDue performs the reset when the schedule matches now.
func resetFlagsIfDue(ctx *AppContext, rc context.Context, s flagResetSchedule, now time.Time) (bool, error) {
	if !s.ShouldFire(now) {
		return false, nil
	}
	n, err := ctx.Store.ResetAllFlags(rc)
	if err != nil {
		return false, err
	}
	slog.Info("Discount flags reset", "rows", n, "at", now.In(s.Location).Format("2006-01-02 15:04"))
	return true, nil
}

// runFlagReset checks the schedule immediately and then on every tick until rc is cancelled.
func runFlagReset(ctx *AppContext, rc context.Context) {
	s := newFlagResetSchedule(ctx)
	slog.Info("Flag reset task started", "weekday", s.Weekday.String(), "hour", s.Hour, "interval", s.Interval.String())

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		if _, err := resetFlagsIfDue(ctx, rc, s, ctx.Now()); err != nil {
			slog.Error("Failed to reset discount flags", "err", err)
		}
		select {
		case <-rc.Done():
			slog.Info("Flag reset task stopped")
			return
		case <-ticker.C:
		}
	}
}
