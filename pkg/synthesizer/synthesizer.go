package synthesizer

import (
	"context"
)

type Provider interface {
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Job, error)
}

type SynthesizeOptions struct {
	Voice string

	Character string
	Style     string

	Background string
}
