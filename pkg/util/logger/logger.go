package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// EncodingConsole is a human-readable plain text encoding.
	EncodingConsole = "console"
	// EncodingJSON is a machine-readable JSON encoding.
	EncodingJSON = "json"
)

// Prm groups Logger's parameters.
// Successful passing non-nil parameters to the NewLogger (if returned
// error is nil) leads to the fact that parameters are applied.
type Prm struct {
	level    zapcore.Level
	encoding string
}

// SetLevelString sets the minimum logging level. Accepts zap level names:
// "debug", "info", "warn", "error", "dpanic", "panic", "fatal".
//
// Returns error if s is not a string representation of a
// supporting logging level.
func (p *Prm) SetLevelString(s string) error {
	return p.level.UnmarshalText([]byte(s))
}

// SetEncoding sets the output encoding, EncodingConsole or EncodingJSON.
func (p *Prm) SetEncoding(enc string) error {
	switch e := strings.ToLower(enc); e {
	case EncodingConsole, EncodingJSON:
		p.encoding = e
		return nil
	default:
		return fmt.Errorf("unsupported logger encoding %q", enc)
	}
}

// NewLogger constructs zap.Logger writing to stdout. Records contain
// ISO8601 timestamps, stack traces are only added for fatal records.
// Default level is info, default encoding is EncodingConsole.
func NewLogger(prm *Prm) (*zap.Logger, error) {
	if prm == nil {
		prm = new(Prm)
	}

	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(prm.level)
	c.Encoding = prm.encoding
	if c.Encoding == "" {
		c.Encoding = EncodingConsole
	}
	c.OutputPaths = []string{"stdout"}
	c.ErrorOutputPaths = []string{"stdout"}
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return c.Build(
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)),
	)
}
