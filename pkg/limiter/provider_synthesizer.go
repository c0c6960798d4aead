package limiter

import (
	"context"

	"github.com/adrianliechti/avatar/pkg/synthesizer"

	"golang.org/x/time/rate"
)

type Limiter interface {
	limiterSetup()
}

type Synthesizer interface {
	Limiter
	synthesizer.Provider
}

type limitedSynthesizer struct {
	limiter  *rate.Limiter
	provider synthesizer.Provider
}

func NewSynthesizer(l *rate.Limiter, p synthesizer.Provider) Synthesizer {
	return &limitedSynthesizer{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedSynthesizer) limiterSetup() {
}

func (p *limitedSynthesizer) Synthesize(ctx context.Context, input string, options *synthesizer.SynthesizeOptions) (*synthesizer.Job, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.Synthesize(ctx, input, options)
}
