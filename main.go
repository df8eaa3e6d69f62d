package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/locomotion"
	"github.com/automoto/firstperson/scenes"
	"github.com/automoto/firstperson/systems"
	"github.com/getsentry/sentry-go"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(level string) *Game {
	return &Game{scene: scenes.NewArenaScene(level)}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tunables")
	level := flag.String("level", "", "arena to load (default from config)")
	debug := flag.Bool("debug", false, "debug logging and the debug overlay")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	reporting := initSentry()
	defer sentry.Flush(2 * time.Second)
	defer sentry.Recover()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			fatal(reporting, err, "could not load config")
		}
	}
	if *debug {
		config.Debug.LogLevel = "debug"
		config.Debug.Overlay = true
	}
	if lvl, err := logrus.ParseLevel(config.Debug.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	} else {
		logrus.WithError(err).Warn("unknown log level, using info")
	}

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadPreferences(); err == nil && saved != nil {
			config.ApplyPreferences(*saved)
			logrus.WithField("preferences", *saved).Debug("preferences restored")
		}
	}
	if err := config.Validate(); err != nil {
		fatal(reporting, err, "invalid configuration")
	}

	name := *level
	if name == "" {
		name = config.Level.Name
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(config.Fullscreen)

	if err := ebiten.RunGame(NewGame(name)); err != nil {
		fatal(reporting, err, "game stopped")
	}
}

// initSentry enables crash reporting when SENTRY_DSN is set.
func initSentry() bool {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return false
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: os.Getenv("SENTRY_ENVIRONMENT"),
	}); err != nil {
		logrus.WithError(err).Warn("could not initialize sentry")
		return false
	}
	return true
}

func fatal(reporting bool, err error, msg string) {
	entry := logrus.WithError(err)
	var cfgErr *locomotion.ConfigurationError
	if errors.As(err, &cfgErr) {
		entry = entry.WithField("field", cfgErr.Field)
	}
	if reporting {
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
	}
	entry.Fatal(msg)
}
