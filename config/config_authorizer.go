package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/avatar/pkg/auth"
	"github.com/adrianliechti/avatar/pkg/auth/apikey"
	"github.com/adrianliechti/avatar/pkg/auth/oidc"
	"github.com/adrianliechti/avatar/pkg/auth/static"
)

type authorizerConfig struct {
	Type string `yaml:"type"`

	Key   string `yaml:"key"`
	Token string `yaml:"token"`

	Header string `yaml:"header"`

	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

func (c *Config) registerAuthorizer(f *configFile) error {
	for _, a := range f.Authorizers {
		authorizer, err := createAuthorizer(a)

		if err != nil {
			return err
		}

		c.Authorizers = append(c.Authorizers, authorizer)
	}

	return nil
}

func createAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	switch strings.ToLower(cfg.Type) {
	case "api-key":
		return apikeyAuthorizer(cfg)

	case "static":
		return staticAuthorizer(cfg)

	case "oidc":
		return oidcAuthorizer(cfg)

	default:
		return nil, errors.New("invalid authorizer type: " + cfg.Type)
	}
}

func apikeyAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	var options []apikey.Option

	if cfg.Header != "" {
		options = append(options, apikey.WithHeader(cfg.Header))
	}

	return apikey.New(cfg.Key, options...)
}

func staticAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	return static.New(cfg.Token)
}

func oidcAuthorizer(cfg authorizerConfig) (auth.Provider, error) {
	return oidc.New(cfg.Issuer, cfg.Audience)
}
