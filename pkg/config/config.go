// Package config provides read access to the configuration tree of the
// database: a file (YAML, JSON or any other format known to viper)
// overlaid with environment variables.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix starts the names of environment variables overriding
// configuration values, see EnvKey.
const EnvPrefix = "ATNT"

const (
	separator    = "."
	envSeparator = "_"
)

// Config is a section of the configuration tree. Root Config is returned by
// New, nested sections are obtained via Sub. Values are read by name
// within the section.
type Config struct {
	v *viper.Viper

	path []string
}

// New reads the configuration. If WithConfigFile is not provided, only
// environment variables are taken into account.
func New(opts ...Option) (*Config, error) {
	o := defaultOpts()
	for i := range opts {
		opts[i](o)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(separator, envSeparator))
	v.AutomaticEnv()

	if o.path != "" {
		v.SetConfigFile(o.path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %q: %w", o.path, err)
		}
	}

	return &Config{v: v}, nil
}

// EnvKey returns the name of the environment variable overriding the value
// at the given path of sections and value name:
//
//	EnvKey("storage", "path") == "ATNT_STORAGE_PATH"
func EnvKey(path ...string) string {
	return strings.ToUpper(EnvPrefix + envSeparator + strings.Join(path, envSeparator))
}

// EnvKey returns the name of the environment variable overriding the value
// of the section by name.
func (x *Config) EnvKey(name string) string {
	return EnvKey(append(slices.Clip(x.path), name)...)
}

// IsSet checks whether the value of the section is set either in the file
// or in the environment.
func (x *Config) IsSet(name string) bool {
	return x.v.IsSet(x.key(name))
}

func (x *Config) key(name string) string {
	return strings.Join(append(slices.Clip(x.path), name), separator)
}
