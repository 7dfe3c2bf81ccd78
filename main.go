// middlechamber is a small vertical platformer: climb the temple, answer the
// staircase questions, gather the working tools and reach the goal.
//
// Usage:
//
//	middlechamber [play]       - Play (default)
//	middlechamber scores       - Show the local leaderboard
//	middlechamber check [path] - Validate a level file
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/getsentry/sentry-go"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/middlechamber/assets"
	"github.com/milk9111/middlechamber/config"
	"github.com/milk9111/middlechamber/dialogue"
	"github.com/milk9111/middlechamber/leaderboard"
	"github.com/milk9111/middlechamber/levels"
	"github.com/milk9111/middlechamber/prefabs"
	"github.com/milk9111/middlechamber/sim"
	"github.com/milk9111/middlechamber/sim/component"
	"github.com/milk9111/middlechamber/sim/system"
)

var (
	flagLevel        string
	flagDBPath       string
	flagDebug        bool
	flagWatch        bool
	flagMute         bool
	flagName         string
	flagRank         string
	flagInitiated    string
	flagGrandOfficer string
	flagUserID       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "middlechamber",
	Short: "The Middle Chamber - an educational temple platformer",
	Long: `Climb the winding staircase to the Middle Chamber.

Commands:
  play     - Play the game (default)
  scores   - Show the local leaderboard
  check    - Validate a level file`,
	RunE:         runPlay,
	SilenceUsage: true,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	RunE:  runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDBPath, "db", "", "Path to scores database (default from MIDDLECHAMBER_DB)")
	pf.BoolVar(&flagDebug, "debug", false, "Debug logging, overlay and free-fly toggle")
	pf.StringVar(&flagLevel, "level", "", "Level file (default: embedded temple)")

	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		f := cmd.Flags()
		f.BoolVar(&flagWatch, "watch", false, "Reload the level file on change (applies on restart)")
		f.BoolVar(&flagMute, "mute", false, "Start with sound off")
		f.StringVar(&flagName, "name", "", "Player name")
		f.StringVar(&flagRank, "rank", "", "Player rank")
		f.StringVar(&flagInitiated, "initiated", "", "Date of initiation")
		f.StringVar(&flagGrandOfficer, "grand-officer", "", "Grand officer (yes/no)")
		f.StringVar(&flagUserID, "user-id", "", "User id sent with remote scores")
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
}

func newLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "middlechamber",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagDebug {
		cfg.Debug = true
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Debug)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			logger.Warn("sentry init", "err", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	lvl, src, err := levels.Load(flagLevel)
	if err != nil {
		return err
	}
	bank, err := levels.LoadBank("")
	if err != nil {
		return err
	}
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return err
	}
	palette, err := prefabs.LoadPaletteSpec()
	if err != nil {
		logger.Warn("palette", "err", err)
		palette = &prefabs.PaletteSpec{}
	}
	logger.Info("level", "name", lvl.Name, "path", src.Path, "fingerprint", fmt.Sprintf("%016x", src.Fingerprint))

	var narrator sim.Narrator = dialogue.Plain{}
	if script, err := dialogue.NewScript(dialogue.DefaultScript, logger); err != nil {
		logger.Warn("dialogue script unavailable, using built-in text", "err", err)
	} else {
		logger.Debug("dialogue", "script", script.Name())
		narrator = script
	}

	store, err := leaderboard.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
	}
	remote := &leaderboard.Remote{BaseURL: cfg.ScoreURL, GameSlug: cfg.GameSlug, Secret: cfg.Secret}
	if !cfg.RemoteEnabled() {
		logger.Info("remote score submission skipped: missing url, slug or secret")
	}
	dispatcher := leaderboard.NewDispatcher(store, remote, cfg.GameSlug, logger.WithPrefix("scores"),
		leaderboard.WithTimeout(cfg.SubmitTimeout))
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.SubmitTimeout)
		defer cancel()
		if err := dispatcher.Close(ctx); err != nil {
			logger.Warn("pending scores not sent", "err", err)
		}
		store.Close()
	}()

	worldCfg := sim.Config{
		Level:    lvl,
		Bank:     bank,
		Tuning:   tuning,
		Systems:  system.Defaults(),
		Input:    keyboardInput{},
		Scores:   dispatcher,
		Narrator: narrator,
		Logger:   logger.WithPrefix("sim"),
		Identity: component.Identity{
			Name:           flagName,
			Rank:           flagRank,
			InitiationDate: flagInitiated,
			GrandOfficer:   component.ParseHonor(flagGrandOfficer),
			UserID:         flagUserID,
		},
	}
	cues, err := assets.NewCuePlayer(logger.WithPrefix("audio"))
	if err != nil {
		logger.Warn("audio disabled", "err", err)
	} else {
		if flagMute {
			cues.ToggleMute()
		}
		worldCfg.Audio = cues
	}

	world, err := sim.NewWorld(worldCfg)
	if err != nil {
		return err
	}

	var watcher *levels.Watcher
	if flagWatch {
		dir, name := "levels", levels.DefaultLevel
		if flagLevel != "" {
			dir, name = filepath.Dir(flagLevel), filepath.Base(flagLevel)
		}
		watcher, err = levels.NewWatcher(dir, name)
		if err != nil {
			logger.Warn("watch disabled", "dir", dir, "err", err)
		} else {
			defer watcher.Close()
			logger.Info("watching", "dir", dir)
		}
	}

	game := NewGame(GameOptions{
		World:     world,
		Logger:    logger,
		Palette:   palette,
		Audio:     cues,
		Watcher:   watcher,
		LevelPath: flagLevel,
		Debug:     cfg.Debug,
	})

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("The Middle Chamber")

	return ebiten.RunGame(game)
}
