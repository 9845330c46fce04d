package loggerconfig

import (
	"fmt"

	"github.com/183amir/bob.db.atnt/pkg/config"
	"github.com/183amir/bob.db.atnt/pkg/util/logger"
)

const (
	subsection = "logger"

	// LevelDefault is a default logger level.
	LevelDefault = "info"
	// EncodingDefault is a default logger encoding.
	EncodingDefault = logger.EncodingConsole
)

// Level returns the value of "level" config parameter
// from "logger" section.
//
// Returns LevelDefault if the value is not a non-empty string.
func Level(c *config.Config) string {
	v := config.StringSafe(c.Sub(subsection), "level")
	if v != "" {
		return v
	}

	return LevelDefault
}

// Encoding returns the value of "encoding" config parameter
// from "logger" section.
//
// Returns EncodingDefault if the value is not a non-empty string.
func Encoding(c *config.Config) string {
	v := config.StringSafe(c.Sub(subsection), "encoding")
	if v != "" {
		return v
	}

	return EncodingDefault
}

// Prm returns logger parameters from "logger" section.
func Prm(c *config.Config) (*logger.Prm, error) {
	var p logger.Prm

	if err := p.SetLevelString(Level(c)); err != nil {
		return nil, fmt.Errorf("logger level: %w", err)
	}
	if err := p.SetEncoding(Encoding(c)); err != nil {
		return nil, fmt.Errorf("logger encoding: %w", err)
	}

	return &p, nil
}
