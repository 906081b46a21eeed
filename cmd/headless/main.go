package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/headless"
	"github.com/automoto/thirdperson/level"
	"github.com/automoto/thirdperson/logging"
)

func main() {
	configPath := flag.String("config", "thirdperson.yaml", "Tunables file (missing file = defaults)")
	levelName := flag.String("level", "arena", "Bundled level name or path to a .tmx file (empty = flat floor)")
	scriptPath := flag.String("script", "", "YAML input script (empty = stand still)")
	ticks := flag.Int("ticks", 500, "Ticks to run when no script is given")
	realtime := flag.Bool("realtime", false, "Tick at the configured rate instead of as fast as possible")
	logEvery := flag.Int("log-every", 50, "Log the agent every N ticks (0 = never)")
	logLevel := flag.String("log-level", "", "Log level (overrides the config file)")
	flag.Parse()

	if err := run(*configPath, *levelName, *scriptPath, *ticks, *realtime, *logEvery, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, levelName, scriptPath string, ticks int, realtime bool, logEvery int, logLevel string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Debug.LogLevel = logLevel
	}
	log, err := logging.New(cfg.Debug.LogLevel)
	if err != nil {
		return err
	}

	var lvl *level.Level
	if levelName != "" {
		if lvl, err = level.Open(levelName); err != nil {
			return err
		}
	}

	script := headless.Script{Steps: []headless.Step{{Ticks: ticks}}}
	if scriptPath != "" {
		if script, err = headless.LoadScript(scriptPath); err != nil {
			return err
		}
	}

	sim := headless.NewSim(cfg, lvl, log)
	loop := headless.NewLoop(sim, script, cfg.Tick.Rate, logEvery, log)

	if realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
	} else {
		loop.RunTicks(script.Ticks())
	}

	s := sim.Controller.State()
	log.WithField("ticks", loop.Ticks()).
		WithField("position", s.Position).
		WithField("phase", sim.Controller.Ground().Phase()).
		Info("done")
	return nil
}
