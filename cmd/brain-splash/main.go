package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/brain-splash/app"
	"github.com/lixenwraith/brain-splash/asset"
	"github.com/lixenwraith/brain-splash/audio"
	"github.com/lixenwraith/brain-splash/config"
	"github.com/lixenwraith/brain-splash/core"
	"github.com/lixenwraith/brain-splash/engine"
	"github.com/lixenwraith/brain-splash/media"
	"github.com/lixenwraith/brain-splash/render"
)

const (
	logDir      = "logs"
	logFileName = "brain-splash.log"
	maxLogSize  = 10 * 1024 * 1024

	// Resolution of the generated brain when no artwork is given
	defaultBrainWidth = 640
	// Length of the generated intro when no soundtrack file exists
	generatedIntro = 6 * time.Second
)

var (
	sceneFlag = flag.String("scene", "", "Scene YAML path")
	imageFlag = flag.String("image", "", "Brain artwork: png, jpeg, gif, bmp, webp, pdf or svg")
	introFlag = flag.String("intro", "", "Intro video played after the splash")
	debugFlag = flag.Bool("debug", false, "Write logs to "+filepath.Join(logDir, logFileName))
)

func main() {
	// Terminal is restored before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "brain-splash: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags override the environment
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneFlag
		case "image":
			cfg.Image = *imageFlag
		case "intro":
			cfg.Intro = *introFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
}

func run(cfg config.Config) error {
	scene, err := config.LoadSceneAuto(cfg.Scene)
	if err != nil {
		return err
	}

	img := loadArtwork(cfg.Image)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager(cfg.Audio)
	defer sound.Cleanup()

	clock := engine.NewMonotonicTimeProvider()
	presenter := render.NewPresenter(screen, scene.Recombine.ZoomDuration)
	glue := media.NewGlue(sound, buildPlayers(cfg, sound), cfg.Intro, presenter, clock)
	defer glue.StopMedia()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	ctrl, err := engine.NewController(scene.Settings(), glue, clock, seed)
	if err != nil {
		return err
	}

	opts := render.DefaultOptions()
	opts.MergeText = scene.Recombine.MergeText
	renderer := render.NewSplashRenderer(img, opts)

	a := app.New(screen, ctrl, renderer, presenter, glue, clock, asset.Aspect(img), app.Options{
		FrameInterval: cfg.FrameInterval,
		Hint:          cfg.Hint,
	})

	log.Printf("[splash] started: %d hotspots, %d required", len(scene.Hotspots), scene.Required)
	return a.Run(context.Background())
}

// loadArtwork falls back to the generated brain when path is empty or unreadable
func loadArtwork(path string) image.Image {
	if path != "" {
		img, err := asset.LoadImage(path)
		if err == nil {
			return img
		}
		log.Printf("[splash] artwork %s unusable, using generated brain: %v", path, err)
	}
	return asset.DefaultBrain(defaultBrainWidth)
}

// buildPlayers orders the external video player ahead of the speaker soundtrack
func buildPlayers(cfg config.Config, sound *audio.SoundManager) []media.Player {
	var players []media.Player

	if cfg.Intro != "" {
		if cmd, err := media.DetectPlayer(cfg.Player, cfg.Fullscreen); err == nil {
			players = append(players, media.NewExecPlayer(*cmd))
		} else {
			log.Printf("[media] %v", err)
		}
	}

	soundtrack := media.NewSoundtrackPlayer(sound, generatedIntro)
	soundtrack.SetTrack(cfg.Soundtrack)
	return append(players, soundtrack)
}

// setupLogging sends log output to the rotating debug file, or discards it
// The terminal owns stdout, so nothing may be printed there while running
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		_ = os.Rename(logPath, logPath+".old")
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("[splash] logging started")
	return f
}
