package generator

import (
	"context"
	"errors"
	"strings"

	"github.com/adrianliechti/avatar/pkg/synthesizer"
	"github.com/adrianliechti/avatar/pkg/uploader"
)

type Request struct {
	Text string

	Voice string

	Character string
	Style     string

	Background string
}

type Result struct {
	JobID string

	URL string
}

// Generator composes one synthesis job with the storage relay. One call
// performs exactly one submit and a bounded number of polls; retrying the
// whole operation is the caller's decision.
type Generator struct {
	synthesizer synthesizer.Provider
	uploader    uploader.Provider
}

func New(s synthesizer.Provider, u uploader.Provider) (*Generator, error) {
	if s == nil {
		return nil, errors.New("synthesizer required")
	}

	if u == nil {
		return nil, errors.New("uploader required")
	}

	return &Generator{
		synthesizer: s,
		uploader:    u,
	}, nil
}

func (g *Generator) Generate(ctx context.Context, request Request) (*Result, error) {
	if strings.TrimSpace(request.Text) == "" {
		return nil, invalidInput("missing 'text' field")
	}

	options := &synthesizer.SynthesizeOptions{
		Voice: request.Voice,

		Character: request.Character,
		Style:     request.Style,

		Background: request.Background,
	}

	job, err := g.synthesizer.Synthesize(ctx, request.Text, options)

	if err != nil {
		return nil, err
	}

	switch job.State {
	case synthesizer.JobSucceeded:

	case synthesizer.JobTimedOut:
		return nil, timeout(job.ID)

	default:
		return nil, upstream(job.ID, job.Error)
	}

	url, err := g.uploader.Upload(ctx, job.OutputURL)

	if err != nil {
		return nil, upstream(job.ID, err.Error())
	}

	return &Result{
		JobID: job.ID,

		URL: url,
	}, nil
}
