package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ZenXLab/cropxoninnovations-sub001/app"
	"github.com/ZenXLab/cropxoninnovations-sub001/audio"
	"github.com/ZenXLab/cropxoninnovations-sub001/catalog"
	"github.com/ZenXLab/cropxoninnovations-sub001/config"
	"github.com/ZenXLab/cropxoninnovations-sub001/logging"
	"github.com/ZenXLab/cropxoninnovations-sub001/terminal"
)

var (
	// Global flags
	configPath  string
	catalogPath string
	logFile     string
	debugLog    bool

	// Run flags
	fps       int
	seed      uint64
	mute      bool
	noWatch   bool
	colorMode string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "orbit",
	Short: "CropXon ecosystem orbit visualization",
	Long: `orbit renders the CropXon platforms circling a hub in the terminal.

Hover or click a platform with the mouse, or walk them with the arrow keys
and Tab. A visitor flies from platform to platform and rests on each.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(logFile, debugLog)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.Version = buildInfo()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Tuning file (YAML)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Platform catalog file (YAML); built-in list when empty")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 1, "Visitor random seed")

	rootCmd.Flags().IntVar(&fps, "fps", 60, "Frame rate")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "Start with the landing chime muted")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload the catalog file on change")
	rootCmd.Flags().StringVar(&colorMode, "color", "auto", "Color mode: auto, truecolor, 256")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogDefaultCmd)

	simulateCmd.Flags().IntVar(&simFrames, "frames", 1000, "Frames to simulate")
	simulateCmd.Flags().IntVar(&simWidth, "width", 120, "Terminal columns to lay out for")
	simulateCmd.Flags().IntVar(&simHeight, "height", 40, "Terminal rows to lay out for")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves file then flag overrides
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("mute") {
		cfg.Mute = mute
	}
	if flags.Changed("no-watch") {
		cfg.Watch = !noWatch
	}
	if flags.Changed("catalog") {
		cfg.Catalog = catalogPath
	}
	return cfg, cfg.Validate()
}

// loadCatalog reads cfg.Catalog, or returns the built-in list
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.Catalog, cfg.Orbit.NodeRadius)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	mode, err := terminal.ParseColorMode(colorMode)
	if err != nil {
		return err
	}

	player, err := audio.NewPlayer(cfg.Volume, cfg.Mute)
	if err != nil {
		// Non-fatal, runs without sound
		logger.Warn("audio unavailable", zap.Error(err))
	}
	defer player.Close()

	screen, mode, err := terminal.Open(mode)
	if err != nil {
		return err
	}

	// Ensure terminal is reset even if the loop setup panics
	defer func() {
		if r := recover(); r != nil {
			terminal.Crash(os.Stdout, "ORBIT", r)
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	logger.Info("starting",
		zap.Int("fps", cfg.FPS),
		zap.Uint64("seed", cfg.Seed),
		zap.String("catalog", cfg.Catalog),
		zap.Stringer("color", mode),
		zap.Int("entities", cat.Len()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, screen, app.Options{
		Config:      cfg,
		Catalog:     cat,
		CatalogPath: cfg.Catalog,
		Logger:      logger,
		Audio:       player,
	})
}

// buildInfo returns the module version for --version output
func buildInfo() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "devel"
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
