package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-amisschema/internal/loader"
	"github.com/goliatone/go-amisschema/pkg/compiler"
	"github.com/goliatone/go-amisschema/pkg/orchestrator"
	"github.com/goliatone/go-amisschema/pkg/render"
	"github.com/goliatone/go-amisschema/pkg/schema"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "amis2jsonschema: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}

	level, err := cfg.level()
	if err != nil {
		return err
	}
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: levelVar}))

	gen := newOrchestrator(cfg, logger)
	if cfg.Interactive {
		if err := promptConfig(&cfg, gen.Renderers()); err != nil {
			return err
		}
	}
	if cfg.Source == "" {
		return errors.New("a source is required (-source or AMIS2JSONSCHEMA_SOURCE)")
	}

	src, err := schema.ParseSource(cfg.Source)
	if err != nil {
		return err
	}

	convert := func() error {
		return convertOnce(ctx, gen, src, cfg, stdout, logger)
	}
	if err := convert(); err != nil {
		if !cfg.Watch {
			return err
		}
		logger.Error("initial compile failed", "error", err)
	}

	if !cfg.Watch {
		return nil
	}
	if src.Kind() != schema.SourceKindFile {
		return fmt.Errorf("-watch requires a file source, got %s", src.Kind())
	}
	return watchFile(ctx, logger, src.Location(), convert)
}

func newOrchestrator(cfg Config, logger *slog.Logger) *orchestrator.Orchestrator {
	compilerOptions := []compiler.Option{
		compiler.WithLogger(logger),
		compiler.WithStringTypes(cfg.stringTypes()...),
	}
	if cfg.StripTitleMarkup {
		compilerOptions = append(compilerOptions, compiler.WithTitlePolicy(compiler.TitleSanitize))
	}

	return orchestrator.New(
		orchestrator.WithLogger(logger),
		orchestrator.WithLoader(loader.New(schema.NewLoaderOptions(schema.WithHTTPFallback(cfg.HTTPTimeout)))),
		orchestrator.WithCompiler(compiler.New(compilerOptions...)),
	)
}

func convertOnce(ctx context.Context, gen *orchestrator.Orchestrator, src schema.Source, cfg Config, stdout io.Writer, logger *slog.Logger) error {
	out, err := gen.Generate(ctx, orchestrator.Request{
		Source:        src,
		Renderer:      cfg.Format,
		RenderOptions: render.RenderOptions{Pretty: cfg.Pretty},
	})
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		if _, err := stdout.Write(out); err != nil {
			return err
		}
		if len(out) > 0 && out[len(out)-1] != '\n' {
			_, err = io.WriteString(stdout, "\n")
		}
		return err
	}

	if err := os.WriteFile(cfg.Output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("schema written", "source", src.Location(), "output", cfg.Output, "format", cfg.Format)
	return nil
}
