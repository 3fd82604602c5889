package service

import (
	"context"
	"log"
	"time"

	"github.com/astro-attendance/attendance-bot/internal/domain"
	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
	"github.com/astro-attendance/attendance-bot/internal/domain/registry"
)

const defaultTick = time.Second

// job is one tenant's weekly trigger with its next due time
type job struct {
	tenant  entity.Tenant
	trigger entity.Trigger
	next    time.Time
}

type scheduler struct {
	tenants    *registry.Tenants
	attendance contract.AttendanceService
	loc        *time.Location
	tick       time.Duration
	now        func() time.Time
	jobs       []*job
	stopChan   chan struct{}
	doneChan   chan struct{}
	running    bool
}

func newScheduler(tenants *registry.Tenants, attendance contract.AttendanceService, loc *time.Location) *scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &scheduler{
		tenants:    tenants,
		attendance: attendance,
		loc:        loc,
		tick:       defaultTick,
		now:        time.Now,
		stopChan:   make(chan struct{}),
		doneChan:   make(chan struct{}),
		running:    false,
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Scheduler starting...")

	s.jobs = s.buildJobs(s.now())
	for _, j := range s.jobs {
		log.Printf("Next poll for %s (%s) at %s", j.tenant.Title, j.trigger, j.next.Format("2006-01-02 15:04:05 MST"))
	}

	go s.mainLoop()
}

// Stop ends the loop and waits for a running firing to finish
func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	<-s.doneChan
	s.running = false
}

func (s *scheduler) mainLoop() {
	defer close(s.doneChan)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runDue(s.now())
		case <-s.stopChan:
			return
		}
	}
}

func (s *scheduler) buildJobs(now time.Time) []*job {
	var jobs []*job
	for _, tenant := range s.tenants.All() {
		for _, trigger := range tenant.Schedule {
			jobs = append(jobs, &job{
				tenant:  tenant,
				trigger: trigger,
				next:    s.calculateNextForTrigger(trigger, now),
			})
		}
	}
	return jobs
}

// runDue fires every job whose time has come and re-arms it for the next week
func (s *scheduler) runDue(now time.Time) {
	for _, j := range s.jobs {
		if now.Before(j.next) {
			continue
		}
		s.fire(j, now)
		j.next = s.calculateNextForTrigger(j.trigger, now)
		log.Printf("Next poll for %s (%s) at %s", j.tenant.Title, j.trigger, j.next.Format("2006-01-02 15:04:05 MST"))
	}
}

// fire creates one poll. Errors and panics stay inside this firing.
func (s *scheduler) fire(j *job, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Poll for %s (%s) panicked: %v", j.tenant.Title, j.trigger, r)
		}
	}()

	local := now.In(s.loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)

	pollID, err := s.attendance.CreatePoll(context.Background(), j.tenant, j.trigger.Slot, day)
	if err != nil {
		log.Printf("Failed to create poll for %s, lecture #%d on %s: %v", j.tenant.Title, j.trigger.Slot, day.Format(domain.DateLayout), err)
		return
	}
	log.Printf("Scheduled poll %s sent to %s", pollID, j.tenant.Title)
}

// calculateNextForTrigger returns the first occurrence of the trigger strictly after now
func (s *scheduler) calculateNextForTrigger(trigger entity.Trigger, now time.Time) time.Time {
	local := now.In(s.loc)

	daysAhead := (int(trigger.Weekday) - int(local.Weekday()) + 7) % 7
	next := time.Date(local.Year(), local.Month(), local.Day()+daysAhead, trigger.Hour, trigger.Minute, 0, 0, s.loc)
	if !next.After(local) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}
