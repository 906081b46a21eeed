package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/fonts"
	"github.com/automoto/thirdperson/level"
	"github.com/automoto/thirdperson/logging"
	"github.com/automoto/thirdperson/scenes"
	"github.com/automoto/thirdperson/settings"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

const appName = "thirdperson"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	cfg   config.Config
	scene Scene
}

func NewGame(cfg config.Config, lvl *level.Level, store *settings.Store, log logrus.FieldLogger) *Game {
	return &Game{
		cfg:   cfg,
		scene: scenes.NewArenaScene(cfg, lvl, store, log),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func main() {
	configPath := flag.String("config", "thirdperson.yaml", "Tunables file (missing file = defaults)")
	levelName := flag.String("level", "arena", "Bundled level name or path to a .tmx file")
	logLevel := flag.String("log-level", "", "Log level (overrides the config file)")
	flag.Parse()

	if err := run(*configPath, *levelName, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, levelName, logLevel string) error {
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

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	// Initialize persistence and load saved settings
	store, err := settings.Open(appName, log)
	if err != nil {
		log.WithError(err).Warn("could not initialize persistence")
	}
	if saved, err := store.Load(); err != nil {
		log.WithError(err).Warn("could not load settings")
	} else if saved != nil {
		saved.Apply(&cfg)
	}

	lvl, err := level.Open(levelName)
	if err != nil {
		return err
	}

	ebiten.SetTPS(cfg.Tick.Rate)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	if cfg.Input.CaptureCursor {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}

	log.WithField("level", lvl.Name).WithField("tps", cfg.Tick.Rate).Info("starting")
	return ebiten.RunGame(NewGame(cfg, lvl, store, log))
}
