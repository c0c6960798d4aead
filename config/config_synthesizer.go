package config

import (
	"errors"
	"strings"
	"time"

	"github.com/adrianliechti/avatar/pkg/limiter"
	"github.com/adrianliechti/avatar/pkg/otel"
	"github.com/adrianliechti/avatar/pkg/synthesizer"
	"github.com/adrianliechti/avatar/pkg/synthesizer/azure"
	"github.com/adrianliechti/avatar/pkg/synthesizer/replicate"
)

func (cfg *Config) RegisterSynthesizer(id string, p synthesizer.Provider) {
	if cfg.synthesizer == nil {
		cfg.synthesizer = make(map[string]synthesizer.Provider)
	}

	if _, ok := cfg.synthesizer[""]; !ok {
		cfg.synthesizer[""] = p
	}

	cfg.synthesizer[id] = p
}

func (cfg *Config) Synthesizer(id string) (synthesizer.Provider, error) {
	if cfg.synthesizer != nil {
		if s, ok := cfg.synthesizer[id]; ok {
			return s, nil
		}
	}

	return nil, errors.New("synthesizer not found: " + id)
}

type synthesizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model string `yaml:"model"`

	// seconds
	Timeout  *int `yaml:"timeout"`
	Interval *int `yaml:"interval"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerSynthesizers(f *configFile) error {
	if f.Synthesizers.Kind == 0 {
		return nil
	}

	var configs map[string]synthesizerConfig

	if err := f.Synthesizers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Synthesizers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		s, err := createSynthesizer(config)

		if err != nil {
			return err
		}

		if limit := createLimiter(config.Limit); limit != nil {
			s = limiter.NewSynthesizer(limit, s)
		}

		s = otel.NewSynthesizer(config.Type, id, s)

		cfg.RegisterSynthesizer(id, s)
	}

	return nil
}

func createSynthesizer(cfg synthesizerConfig) (synthesizer.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "azure":
		return azureSynthesizer(cfg)

	case "replicate":
		return replicateSynthesizer(cfg)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}

func azureSynthesizer(cfg synthesizerConfig) (synthesizer.Provider, error) {
	var options []azure.Option

	if cfg.Token != "" {
		options = append(options, azure.WithToken(cfg.Token))
	}

	if cfg.Timeout != nil {
		options = append(options, azure.WithTimeout(time.Duration(*cfg.Timeout)*time.Second))
	}

	if cfg.Interval != nil {
		options = append(options, azure.WithInterval(time.Duration(*cfg.Interval)*time.Second))
	}

	return azure.NewSynthesizer(cfg.URL, options...)
}

func replicateSynthesizer(cfg synthesizerConfig) (synthesizer.Provider, error) {
	var options []replicate.Option

	if cfg.Token != "" {
		options = append(options, replicate.WithToken(cfg.Token))
	}

	if cfg.Timeout != nil {
		options = append(options, replicate.WithTimeout(time.Duration(*cfg.Timeout)*time.Second))
	}

	return replicate.NewSynthesizer(cfg.Model, options...)
}
