package otel

import (
	"context"

	"github.com/adrianliechti/avatar/pkg/synthesizer"

	"go.opentelemetry.io/otel"
)

type Synthesizer interface {
	Observable
	synthesizer.Provider
}

type observableSynthesizer struct {
	name     string
	provider string

	synthesizer synthesizer.Provider
}

func NewSynthesizer(provider, name string, p synthesizer.Provider) Synthesizer {
	return &observableSynthesizer{
		synthesizer: p,

		name:     name,
		provider: provider,
	}
}

func (p *observableSynthesizer) otelSetup() {
}

func (p *observableSynthesizer) Synthesize(ctx context.Context, input string, options *synthesizer.SynthesizeOptions) (*synthesizer.Job, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "synthesize "+p.name)
	defer span.End()

	attrs := []KeyValue{
		String("provider", p.provider),
	}

	if options != nil && options.Voice != "" {
		attrs = append(attrs, String("voice", options.Voice))
	}

	if options != nil && options.Character != "" {
		attrs = append(attrs, String("character", options.Character))
	}

	span.SetAttributes(KeyValues(attrs, EndUserAttrs(ctx))...)

	job, err := p.synthesizer.Synthesize(ctx, input, options)

	if job != nil {
		span.SetAttributes(String("job", job.ID), String("state", string(job.State)))
	}

	return job, err
}
