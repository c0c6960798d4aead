package replicate

import (
	"time"

	"github.com/adrianliechti/avatar/pkg/synthesizer"

	"github.com/replicate/replicate-go"
)

type Config struct {
	model string

	token string

	timeout time.Duration
}

type Option func(*Config)

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.timeout = timeout
	}
}

func (c *Config) Options() []replicate.ClientOption {
	var options []replicate.ClientOption

	if c.token != "" {
		options = append(options, replicate.WithToken(c.token))
	}

	if c.timeout == 0 {
		c.timeout = synthesizer.DefaultTimeout
	}

	return options
}
