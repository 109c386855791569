package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/munchkin/internal/application/input"
	"github.com/younwookim/munchkin/internal/application/scene/gameplay"
	"github.com/younwookim/munchkin/internal/application/scene/menu"
	sceneoptions "github.com/younwookim/munchkin/internal/application/scene/options"
	"github.com/younwookim/munchkin/internal/application/shell"
	"github.com/younwookim/munchkin/internal/infrastructure/assets"
	"github.com/younwookim/munchkin/internal/infrastructure/audio"
	"github.com/younwookim/munchkin/internal/infrastructure/config"
	"github.com/younwookim/munchkin/internal/infrastructure/display"
	"github.com/younwookim/munchkin/internal/infrastructure/logging"
)

type options struct {
	configPath string
	assetsDir  string
	logLevel   string
	seed       int64
}

// run boots every subsystem, runs the loop until the Exit state and shuts
// the audio down. Any missing asset aborts startup.
func run(opts options) error {
	logger, err := logging.New(os.Stderr, opts.logLevel)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}

	root := cfg.Assets.Root
	if opts.assetsDir != "" {
		root = opts.assetsDir
	}
	fsys := os.DirFS(root)

	face, err := assets.LoadFace(fsys, cfg.Assets.Font, cfg.Assets.FontSize)
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}

	mixer, err := audio.Open(fsys, cfg.Audio.SampleRate, cfg.Assets.Music, cfg.Assets.Click)
	if err != nil {
		return fmt.Errorf("startup: %w", err)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowClosingHandled(true)

	s, err := shell.New(cfg, shell.Deps{
		Window: display.NewEbitenWindow(),
		Audio:  mixer,
		Font:   face,
		Input:  input.NewPoller(input.EbitenSource{}),
		Clock:  display.NewClock(cfg.Window.TPS),
		Logger: logger,
		Scenes: shell.Scenes{
			Menu:    menu.New,
			Options: sceneoptions.NewFactory(cfg.Options.Resolutions, cfg.Audio.VolumeStep),
			Playing: gameplay.NewFactory(seed),
		},
	})
	if err != nil {
		return errors.Join(fmt.Errorf("startup: %w", err), mixer.Close())
	}

	runErr := ebiten.RunGame(s)
	return errors.Join(runErr, s.Close())
}
