package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/avatar/pkg/limiter"
	"github.com/adrianliechti/avatar/pkg/otel"
	"github.com/adrianliechti/avatar/pkg/uploader"
	"github.com/adrianliechti/avatar/pkg/uploader/cloudinary"
	"github.com/adrianliechti/avatar/pkg/uploader/custom"
)

func (cfg *Config) RegisterUploader(id string, p uploader.Provider) {
	if cfg.uploader == nil {
		cfg.uploader = make(map[string]uploader.Provider)
	}

	if _, ok := cfg.uploader[""]; !ok {
		cfg.uploader[""] = p
	}

	cfg.uploader[id] = p
}

func (cfg *Config) Uploader(id string) (uploader.Provider, error) {
	if cfg.uploader != nil {
		if u, ok := cfg.uploader[id]; ok {
			return u, nil
		}
	}

	return nil, errors.New("uploader not found: " + id)
}

type uploaderConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Cloud  string `yaml:"cloud"`
	Key    string `yaml:"key"`
	Secret string `yaml:"secret"`

	Folder string `yaml:"folder"`

	Limit *int `yaml:"limit"`
}

func (cfg *Config) registerUploaders(f *configFile) error {
	if f.Uploaders.Kind == 0 {
		return nil
	}

	var configs map[string]uploaderConfig

	if err := f.Uploaders.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Uploaders.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		u, err := createUploader(config)

		if err != nil {
			return err
		}

		if limit := createLimiter(config.Limit); limit != nil {
			u = limiter.NewUploader(limit, u)
		}

		u = otel.NewUploader(config.Type, id, u)

		cfg.RegisterUploader(id, u)
	}

	return nil
}

func createUploader(cfg uploaderConfig) (uploader.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "cloudinary":
		return cloudinaryUploader(cfg)

	case "custom":
		return customUploader(cfg)

	default:
		return nil, errors.New("invalid uploader type: " + cfg.Type)
	}
}

func cloudinaryUploader(cfg uploaderConfig) (uploader.Provider, error) {
	var options []cloudinary.Option

	if cfg.Folder != "" {
		options = append(options, cloudinary.WithFolder(cfg.Folder))
	}

	return cloudinary.New(cfg.Cloud, cfg.Key, cfg.Secret, options...)
}

func customUploader(cfg uploaderConfig) (uploader.Provider, error) {
	var options []custom.Option

	if cfg.Token != "" {
		options = append(options, custom.WithToken(cfg.Token))
	}

	return custom.New(cfg.URL, options...)
}
