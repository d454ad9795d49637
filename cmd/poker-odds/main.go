package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokereval/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"poker-odds.hcl" type:"path" help:"HCL configuration file (ignored when missing)"`
	LogLevel string           `help:"Override the configured log level (debug|info|warn|error)"`

	Equity   EquityCmd   `cmd:"" default:"withargs" help:"Estimate the equity of a hand against random opponents"`
	Eval     EvalCmd     `cmd:"" help:"Evaluate the best hand from 5 to 7 cards"`
	Showdown ShowdownCmd `cmd:"" help:"Find the winners among several hands on a complete board"`
	Init     InitCmd     `cmd:"" help:"Write the effective configuration to the config file"`
}

// app carries the shared dependencies handed to every command.
type app struct {
	cfg        *config.Config
	configPath string
	logger     *log.Logger
	out        io.Writer
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-odds"),
		kong.Description("Texas Hold'em hand evaluation and equity calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	cfg, err := config.Load(cli.Config)
	ctx.FatalIfErrorf(err)
	if cli.LogLevel != "" {
		cfg.Log.Level = cli.LogLevel
		ctx.FatalIfErrorf(cfg.Validate())
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.LogLevel(),
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          "poker-odds",
	})
	logger.Debug("configuration loaded", "file", cli.Config, "strategy", cfg.Equity.Strategy)

	err = ctx.Run(&app{cfg: cfg, configPath: cli.Config, logger: logger, out: os.Stdout})
	ctx.FatalIfErrorf(err)
}
