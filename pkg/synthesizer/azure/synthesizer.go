package azure

import (
	"context"

	"github.com/adrianliechti/avatar/pkg/synthesizer"
)

var _ synthesizer.Provider = (*Synthesizer)(nil)

type Synthesizer struct {
	*Client

	poller *synthesizer.Poller
}

func NewSynthesizer(url string, options ...Option) (*Synthesizer, error) {
	client, err := New(url, options...)

	if err != nil {
		return nil, err
	}

	poller := synthesizer.NewPoller(client,
		synthesizer.WithTimeout(client.timeout),
		synthesizer.WithInterval(client.interval),
	)

	return &Synthesizer{
		Client: client,

		poller: poller,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, input string, options *synthesizer.SynthesizeOptions) (*synthesizer.Job, error) {
	return s.poller.Run(ctx, input, options)
}
