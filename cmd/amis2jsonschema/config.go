package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config holds CLI settings. Environment variables provide defaults that
// flags override.
type Config struct {
	Source           string        `env:"AMIS2JSONSCHEMA_SOURCE"`
	Output           string        `env:"AMIS2JSONSCHEMA_OUTPUT"`
	Format           string        `env:"AMIS2JSONSCHEMA_FORMAT,default=json"`
	Pretty           bool          `env:"AMIS2JSONSCHEMA_PRETTY,default=true"`
	LogLevel         string        `env:"AMIS2JSONSCHEMA_LOG_LEVEL,default=info"`
	HTTPTimeout      time.Duration `env:"AMIS2JSONSCHEMA_HTTP_TIMEOUT,default=10s"`
	StringTypes      string        `env:"AMIS2JSONSCHEMA_STRING_TYPES"`
	StripTitleMarkup bool          `env:"AMIS2JSONSCHEMA_STRIP_TITLE_MARKUP"`

	Watch       bool
	Interactive bool
}

func loadConfig(args []string, output io.Writer) (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}

	fs := flag.NewFlagSet("amis2jsonschema", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Source, "source", cfg.Source, "amis form document path or URL")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output file (stdout if empty)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: json, openapi or report (aliases: jsonschema, oas, markdown, md)")
	fs.BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "indent JSON output")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.DurationVar(&cfg.HTTPTimeout, "http-timeout", cfg.HTTPTimeout, "timeout for URL sources")
	fs.StringVar(&cfg.StringTypes, "string-types", cfg.StringTypes, "comma separated control types to treat as strings")
	fs.BoolVar(&cfg.StripTitleMarkup, "strip-title-markup", cfg.StripTitleMarkup, "remove HTML from the form title")
	fs.BoolVar(&cfg.Watch, "watch", false, "recompile whenever the source file changes")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "prompt for missing settings")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 && cfg.Source == "" {
		cfg.Source = fs.Arg(0)
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	return cfg, nil
}

func (c Config) stringTypes() []string {
	var out []string
	for _, tag := range strings.Split(c.StringTypes, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
