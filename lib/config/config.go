package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/yuniko/biscuit/fetch"
	"github.com/yuniko/biscuit/lib/utils"
)

type configKey struct{}

// NewContext returns a context that contains the given Config.
func NewContext(ctx context.Context, config Config) context.Context {
	return context.WithValue(ctx, configKey{}, config)
}

// FromContext returns the Config stored in ctx by NewContext, or the default
// Config if there is none.
func FromContext(ctx context.Context) Config {
	if config, ok := ctx.Value(configKey{}).(Config); ok {
		return config
	}
	return *DefaultConfig()
}

// Config The biscuit configuration
type Config struct {
	// Fetch
	Fetch fetch.Options `yaml:"fetch"`
}

// DefaultConfig The default configuration
func DefaultConfig() *Config {
	return &Config{
		Fetch: fetch.Options{
			MaxBodySize:    fetch.DefaultMaxBodySize,
			RetryTimes:     fetch.DefaultRetryTimes,
			RetryHTTPCodes: fetch.DefaultRetryHTTPCodes,
			Timeout:        fetch.DefaultTimeout,
		},
	}
}

// ReadConfig read configuration from the file.
// If the configuration file is not existing then create it with default configuration.
func ReadConfig(path string) (config *Config, err error) {
	file, err := utils.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	if _, err = os.Stat(file); errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(filepath.Dir(file), os.ModePerm)
		if err != nil {
			return nil, err
		}
		config = DefaultConfig()
		if err = utils.WriteYaml(file, config); err != nil {
			return nil, err
		}
		return config, nil
	}

	return utils.ReadYaml[Config](file)
}
