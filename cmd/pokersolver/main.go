package main

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/pokersolver/cmd/pokersolver/shared"
	"github.com/lox/pokersolver/internal/config"
	"github.com/lox/pokersolver/internal/report"
	"github.com/lox/pokersolver/solver"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Config  string           `help:"HCL config file (default pokersolver.hcl)" type:"path"`
	Debug   bool             `help:"Enable debug logging"`
	Workers *int             `short:"w" help:"Search goroutines, 0 for one per CPU"`
	Color   string           `help:"Colour output: auto, always or never"`
	Trace   bool             `help:"Log every search step at debug level"`

	Eval    EvalCmd    `cmd:"" help:"Classify the best hand from hole and board cards"`
	Nuts    NutsCmd    `cmd:"" help:"Find the best hand still reachable"`
	Outs    OutsCmd    `cmd:"" help:"List the cards that improve the hand on the next street"`
	Analyze AnalyzeCmd `cmd:"" help:"Evaluate, find the nuts and list outs in one go"`
	Deal    DealCmd    `cmd:"" help:"Deal a random hand and analyze it"`
}

// Runtime carries the shared dependencies passed to every command.
type Runtime struct {
	Ctx     context.Context
	Logger  *log.Logger
	Solver  *solver.Solver
	Printer *report.Printer
	Clock   quartz.Clock
}

// newRuntime merges flags over the loaded config and builds the runtime.
func newRuntime(ctx context.Context, cli *CLI, stdout, stderr io.Writer) (*Runtime, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	if cli.Workers != nil {
		cfg.Workers = *cli.Workers
	}
	if cli.Color != "" {
		cfg.Color = cli.Color
	}
	if cli.Trace {
		cfg.Trace = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := shared.SetupLogger(stderr, cfg.LogLevel, cli.Debug || cfg.Trace)
	if err != nil {
		return nil, err
	}

	clock := quartz.NewReal()
	opts := []solver.Option{solver.WithWorkers(cfg.Workers), solver.WithClock(clock)}
	if cfg.Trace {
		opts = append(opts, solver.WithTracer(solver.LogTracer(logger)))
	}
	s := solver.New(opts...)
	logger.Debug("Solver configured", "workers", s.Workers(), "trace", cfg.Trace, "color", cfg.Color)

	return &Runtime{
		Ctx:     ctx,
		Logger:  logger,
		Solver:  s,
		Printer: report.New(stdout, cfg.Color),
		Clock:   clock,
	}, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokersolver"),
		kong.Description("Poker hand evaluator, nuts finder and outs calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	bootLogger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	sigCtx, cancel := shared.SetupSignalHandler(bootLogger)
	defer cancel()

	rt, err := newRuntime(sigCtx, &cli, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(rt)
	ctx.FatalIfErrorf(err)
}
