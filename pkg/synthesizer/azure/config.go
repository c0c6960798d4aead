package azure

import (
	"net/http"
	"time"

	"github.com/adrianliechti/avatar/pkg/synthesizer"
)

type Config struct {
	client *http.Client

	url   string
	token string

	timeout  time.Duration
	interval time.Duration
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

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

func WithInterval(interval time.Duration) Option {
	return func(c *Config) {
		c.interval = interval
	}
}

func newConfig(url string) *Config {
	return &Config{
		client: http.DefaultClient,

		url: url,

		timeout:  synthesizer.DefaultTimeout,
		interval: synthesizer.DefaultInterval,
	}
}
