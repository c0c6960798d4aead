package limiter

import (
	"context"

	"github.com/adrianliechti/avatar/pkg/uploader"

	"golang.org/x/time/rate"
)

type Uploader interface {
	Limiter
	uploader.Provider
}

type limitedUploader struct {
	limiter  *rate.Limiter
	provider uploader.Provider
}

func NewUploader(l *rate.Limiter, p uploader.Provider) Uploader {
	return &limitedUploader{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedUploader) limiterSetup() {
}

func (p *limitedUploader) Upload(ctx context.Context, url string) (string, error) {
	if p.limiter != nil {
		p.limiter.Wait(ctx)
	}

	return p.provider.Upload(ctx, url)
}
