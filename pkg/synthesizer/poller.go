package synthesizer

import (
	"context"
	"log/slog"
	"time"
)

const (
	DefaultTimeout  = 600 * time.Second
	DefaultInterval = 5 * time.Second
)

// Poller owns the lifecycle of one job: submit, then poll at a fixed
// interval until the job reaches a terminal state or the time budget is
// exhausted. The clock and the sleep function are injectable so the full
// budget can be simulated in tests.
type Poller struct {
	client Client

	timeout  time.Duration
	interval time.Duration

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

type PollerOption func(*Poller)

func WithTimeout(timeout time.Duration) PollerOption {
	return func(p *Poller) {
		p.timeout = timeout
	}
}

func WithInterval(interval time.Duration) PollerOption {
	return func(p *Poller) {
		p.interval = interval
	}
}

func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) PollerOption {
	return func(p *Poller) {
		p.now = now
		p.sleep = sleep
	}
}

func NewPoller(client Client, options ...PollerOption) *Poller {
	p := &Poller{
		client: client,

		timeout:  DefaultTimeout,
		interval: DefaultInterval,

		now:   time.Now,
		sleep: sleepContext,
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Run submits a job and polls it to completion. The returned Job is always
// in a terminal state; a non-nil error is only returned when the context
// ends before the job does.
func (p *Poller) Run(ctx context.Context, input string, options *SynthesizeOptions) (*Job, error) {
	if options == nil {
		options = new(SynthesizeOptions)
	}

	deadline := p.now().Add(p.timeout)

	id, err := p.client.Submit(ctx, input, options)

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		// no job exists to poll
		return &Job{
			State: JobFailed,
			Error: err.Error(),
		}, nil
	}

	job := &Job{
		ID:    id,
		State: JobSubmitted,
	}

	for {
		if !p.now().Before(deadline) {
			job.State = JobTimedOut
			return job, nil
		}

		outcome, err := p.client.Poll(ctx, job.ID)

		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			// transient: cannot tell an unreachable provider from a job
			// still running, so keep polling until the budget runs out
			slog.Warn("job poll failed", "job", job.ID, "error", err)

			if err := p.sleep(ctx, p.interval); err != nil {
				return nil, err
			}

			continue
		}

		switch outcome.State {
		case JobSucceeded:
			if outcome.OutputURL == "" {
				job.State = JobFailed
				job.Error = "job succeeded but no result URL found"

				return job, nil
			}

			job.State = JobSucceeded
			job.OutputURL = outcome.OutputURL

			return job, nil

		case JobFailed:
			job.State = JobFailed
			job.Error = outcome.Error

			return job, nil

		case JobSubmitted:
			// not picked up yet

		default:
			job.State = JobRunning
		}

		if err := p.sleep(ctx, p.interval); err != nil {
			return nil, err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()

	case <-timer.C:
		return nil
	}
}
