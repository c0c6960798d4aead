package config

import (
	"bytes"
	"os"

	"github.com/adrianliechti/avatar/pkg/auth"
	"github.com/adrianliechti/avatar/pkg/synthesizer"
	"github.com/adrianliechti/avatar/pkg/uploader"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Authorizers []auth.Provider

	synthesizer map[string]synthesizer.Provider
	uploader    map[string]uploader.Provider
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":3300",
	}

	if err := c.registerAuthorizer(file); err != nil {
		return nil, err
	}

	if err := c.registerSynthesizers(file); err != nil {
		return nil, err
	}

	if err := c.registerUploaders(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Authorizers []authorizerConfig `yaml:"authorizers"`

	Synthesizers yaml.Node `yaml:"synthesizers"`
	Uploaders    yaml.Node `yaml:"uploaders"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
