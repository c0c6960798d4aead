package otel

import (
	"context"

	"github.com/adrianliechti/avatar/pkg/uploader"

	"go.opentelemetry.io/otel"
)

type Uploader interface {
	Observable
	uploader.Provider
}

type observableUploader struct {
	name     string
	provider string

	uploader uploader.Provider
}

func NewUploader(provider, name string, p uploader.Provider) Uploader {
	return &observableUploader{
		uploader: p,

		name:     name,
		provider: provider,
	}
}

func (p *observableUploader) otelSetup() {
}

func (p *observableUploader) Upload(ctx context.Context, url string) (string, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "upload "+p.name)
	defer span.End()

	span.SetAttributes(KeyValues([]KeyValue{String("provider", p.provider)}, EndUserAttrs(ctx))...)

	return p.uploader.Upload(ctx, url)
}
