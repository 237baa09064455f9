package compiler

import (
	"io"
	"log/slog"
	"strings"
)

// Option customises a Compiler.
type Option func(*Compiler)

// WithLogger routes debug traces (flattened wrappers, dispatched controls) to
// logger. A nil logger keeps the compiler silent.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStringTypes maps additional control tags to the string primitive. Tags
// already in the rule table are overridden, which lets callers promote
// controls that are pending a dedicated translation.
func WithStringTypes(tags ...string) Option {
	return func(c *Compiler) {
		for _, tag := range tags {
			trimmed := strings.TrimSpace(tag)
			if trimmed == "" {
				continue
			}
			c.extraStrings = append(c.extraStrings, trimmed)
		}
	}
}

// WithTitlePolicy selects how the root title is copied into the output.
func WithTitlePolicy(policy TitlePolicy) Option {
	return func(c *Compiler) {
		c.titlePolicy = policy
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
