package replicate

import (
	"context"
	"errors"

	"github.com/adrianliechti/avatar/pkg/synthesizer"

	"github.com/google/uuid"
)

var _ synthesizer.Provider = (*Synthesizer)(nil)

// Synthesizer runs talking-avatar video models hosted on Replicate. The
// Replicate SDK owns the submit-and-poll cycle here; the time budget is
// enforced through the request context.
type Synthesizer struct {
	*Client
}

func NewSynthesizer(model string, options ...Option) (*Synthesizer, error) {
	if model == "" {
		return nil, errors.New("invalid model")
	}

	client, err := New(model, options...)

	if err != nil {
		return nil, err
	}

	return &Synthesizer{
		Client: client,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *synthesizer.SynthesizeOptions) (*synthesizer.Job, error) {
	if options == nil {
		options = new(synthesizer.SynthesizeOptions)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	in := PredictionInput{
		"text": input,
	}

	if options.Voice != "" {
		in["voice"] = options.Voice
	}

	if options.Background != "" {
		in["image"] = options.Background
	}

	job := &synthesizer.Job{
		ID: uuid.NewString(),
	}

	output, err := s.Run(ctx, in)

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			job.State = synthesizer.JobTimedOut
			return job, nil
		}

		job.State = synthesizer.JobFailed
		job.Error = err.Error()

		return job, nil
	}

	file, ok := output.(*FileOutput)

	if !ok || file.URL == "" {
		job.State = synthesizer.JobFailed
		job.Error = "job succeeded but no result URL found"

		return job, nil
	}

	job.State = synthesizer.JobSucceeded
	job.OutputURL = file.URL

	return job, nil
}
