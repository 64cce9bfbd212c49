package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/tui"
)

var (
	log = logrus.New()

	configPath string
	preset     string
	gameQuery  string
	seedStr    string
	scriptPath string
)

func init() {
	const (
		defaultConfigPath = ""
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
	flag.StringVar(&preset, "preset", "", "board preset: classic, beginner, intermediate or expert")
	flag.StringVar(&gameQuery, "game", "", `board parameters, e.g. "width=16&height=16&mine_count=40"`)
	flag.StringVar(&seedStr, "seed", "", "seed for mine placement")
	flag.StringVar(&scriptPath, "script", "", "run commands from a file ('-' for stdin) instead of the UI")
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("unable to load config: ", err)
	}
	if preset != "" {
		if err := cfg.SetPreset(preset); err != nil {
			log.Fatal("-preset: ", err)
		}
	}
	if gameQuery != "" {
		if err := cfg.SetGame(gameQuery); err != nil {
			log.Fatal("-game: ", err)
		}
	}
	if seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			log.Fatal("-seed: ", err)
		}
		cfg.Seed = &seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config: ", err)
	}
	return cfg
}

// setupLogging keeps log output off the terminal while the UI owns it; the
// rotating file gets everything at the configured level.
func setupLogging(cfg *config.Config, interactive bool) {
	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: !interactive})

	if interactive {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(os.Stderr)
	}

	if cfg.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to create log file hook: ", err)
		}
		log.AddHook(hook)
	}

	mines.Log = log
}

func runScript(cfg *config.Config) error {
	in := os.Stdin
	if scriptPath != "-" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	s, err := newScriptSession(cfg.Game, cfg.Rand(), os.Stdout)
	if err != nil {
		return err
	}
	return s.runScript(in)
}

func runInteractive(mainCtx context.Context, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	ui, err := tui.New(screen, cfg.Game, cfg.Rand(), log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(mainCtx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return ui.Run(gCtx)
	})
	g.Go(func() error {
		<-gCtx.Done()
		ui.Interrupt()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg := loadConfig()
	interactive := scriptPath == ""
	setupLogging(cfg, interactive)

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	var err error
	if interactive {
		err = runInteractive(mainCtx, cfg)
	} else {
		err = runScript(cfg)
	}
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
