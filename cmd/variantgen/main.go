package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/variant/errors"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to YAML generator config")
		output     = flag.String("o", "", "Output file, - for stdout (overrides config)")
		maxArity   = flag.Int("max", 0, "Largest arity to generate (overrides config)")
		verbose    = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	log := newLogger(*verbose)
	defer func() { _ = log.Sync() }()

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *maxArity != 0 {
		cfg.MaxArity = *maxArity
	}

	if err := run(cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config, log *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Generate(cfg, &buf); err != nil {
		return errors.New(errors.PhaseGenerate, errors.KindInvalidInput).
			Detail("render generated source").
			Cause(err).
			Build()
	}

	log.Debug("rendered variants",
		zap.Int("min_arity", cfg.MinArity),
		zap.Int("max_arity", cfg.MaxArity),
		zap.Int("bytes", buf.Len()))

	if cfg.Output == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(cfg.Output, buf.Bytes(), 0o644); err != nil {
		return errors.New(errors.PhaseGenerate, errors.KindInvalidConfig).
			Detail("write %s", cfg.Output).
			Cause(err).
			Build()
	}
	log.Info("wrote variants", zap.String("output", cfg.Output))
	return nil
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
