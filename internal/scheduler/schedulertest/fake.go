// Package schedulertest provides an in-memory job queue driven by a
// clockwork fake clock. Jobs run synchronously inside Advance.
package schedulertest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

type Entry struct {
	ID        uuid.UUID
	Job       entity.Job
	Recurring bool
	NextRun   time.Time

	handler contract.JobHandler
	seq     int
}

type Fake struct {
	mu      sync.Mutex
	clock   *clockwork.FakeClock
	loc     *time.Location
	entries map[uuid.UUID]*Entry
	seq     int

	// Fired records every job that ran, in order.
	Fired []entity.Job
}

var _ contract.JobScheduler = (*Fake)(nil)

func New(clock *clockwork.FakeClock, loc *time.Location) *Fake {
	return &Fake{
		clock:   clock,
		loc:     loc,
		entries: make(map[uuid.UUID]*Entry),
	}
}

func (f *Fake) ScheduleRecurring(job entity.Job, h contract.JobHandler) (uuid.UUID, error) {
	now := f.clock.Now().In(f.loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), job.Hour, job.Minute, 0, 0, f.loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return f.add(job, h, true, next), nil
}

func (f *Fake) ScheduleOnce(job entity.Job, h contract.JobHandler) (uuid.UUID, error) {
	next := job.RunAt
	if now := f.clock.Now(); next.Before(now) {
		next = now
	}
	return f.add(job, h, false, next), nil
}

func (f *Fake) CancelRecurring() {
	f.mu.Lock()
	defer f.mu.Unlock()

	for id, e := range f.entries {
		if e.Recurring {
			delete(f.entries, id)
		}
	}
}

func (f *Fake) add(job entity.Job, h contract.JobHandler, recurring bool, next time.Time) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	e := &Entry{
		ID:        uuid.New(),
		Job:       job,
		Recurring: recurring,
		NextRun:   next,
		handler:   h,
		seq:       f.seq,
	}
	f.entries[e.ID] = e
	return e.ID
}

// Entries returns a snapshot ordered by next run.
func (f *Fake) Entries() []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Entry, 0, len(f.entries))
	for _, e := range f.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NextRun.Equal(out[j].NextRun) {
			return out[i].seq < out[j].seq
		}
		return out[i].NextRun.Before(out[j].NextRun)
	})
	return out
}

// Once returns queued one-shot jobs.
func (f *Fake) Once() []Entry {
	var out []Entry
	for _, e := range f.Entries() {
		if !e.Recurring {
			out = append(out, e)
		}
	}
	return out
}

// Advance moves the clock forward by d, running every job that comes due in
// order of its run time.
func (f *Fake) Advance(ctx context.Context, d time.Duration) {
	target := f.clock.Now().Add(d)

	for {
		e := f.popDue(target)
		if e == nil {
			break
		}
		if wait := e.NextRun.Sub(f.clock.Now()); wait > 0 {
			f.clock.Advance(wait)
		}

		f.mu.Lock()
		f.Fired = append(f.Fired, e.Job)
		f.mu.Unlock()

		e.handler.HandleJob(ctx, e.Job)
	}

	if rest := target.Sub(f.clock.Now()); rest > 0 {
		f.clock.Advance(rest)
	}
}

// popDue takes the earliest entry due by target. Recurring entries are moved
// to their next day instead of being removed.
func (f *Fake) popDue(target time.Time) *Entry {
	f.mu.Lock()
	defer f.mu.Unlock()

	var due *Entry
	for _, e := range f.entries {
		if e.NextRun.After(target) {
			continue
		}
		if due == nil || e.NextRun.Before(due.NextRun) || (e.NextRun.Equal(due.NextRun) && e.seq < due.seq) {
			due = e
		}
	}
	if due == nil {
		return nil
	}

	fired := *due
	if due.Recurring {
		due.NextRun = due.NextRun.In(f.loc).AddDate(0, 0, 1)
	} else {
		delete(f.entries, due.ID)
	}
	return &fired
}
