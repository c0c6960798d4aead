package synthesizer

import (
	"context"
)

type JobState string

const (
	JobSubmitted JobState = "Submitted"
	JobRunning   JobState = "Running"
	JobSucceeded JobState = "Succeeded"
	JobFailed    JobState = "Failed"
	JobTimedOut  JobState = "TimedOut"
)

func (s JobState) Terminal() bool {
	switch s {
	case JobSucceeded, JobFailed, JobTimedOut:
		return true
	}

	return false
}

// Job is one synthesis job at the provider, from submission to its terminal
// state. A Job is local to the call that created it and is never shared.
type Job struct {
	ID string

	State JobState

	// OutputURL is set when the job succeeded
	OutputURL string

	// Error is set when the job failed
	Error string
}

// PollOutcome is the provider's view of a job at a single status query.
type PollOutcome struct {
	State JobState

	OutputURL string
	Error     string
}

// Client submits jobs and queries their status. Implementations translate
// requests to the provider's wire format and own no retry or timeout logic.
type Client interface {
	Submit(ctx context.Context, input string, options *SynthesizeOptions) (string, error)
	Poll(ctx context.Context, jobID string) (*PollOutcome, error)
}
