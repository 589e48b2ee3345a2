package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ZenXLab/cropxoninnovations-sub001/catalog"
	"github.com/ZenXLab/cropxoninnovations-sub001/parameter"
	"github.com/ZenXLab/cropxoninnovations-sub001/render"
	"github.com/ZenXLab/cropxoninnovations-sub001/scene"
)

var (
	simFrames int
	simWidth  int
	simHeight int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate platform catalogs",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the platforms of the active catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		for _, e := range cat.Entities {
			printf(cmd, "%2d  %s  %s  %s\n",
				e.SlotIndex(),
				runewidth.FillRight(e.ID, 12),
				runewidth.FillRight(e.Name, 20),
				e.Category)
		}
		return nil
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(args[0], parameter.DefaultNodeRadius)
		if err != nil {
			return err
		}
		printf(cmd, "%s: ok, %d platforms\n", args[0], cat.Len())
		return nil
	},
}

var catalogDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in catalog as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := catalog.Marshal(catalog.Default())
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(raw)
		return err
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the engine headless and report tracking error and visits",
	RunE: func(cmd *cobra.Command, args []string) error {
		if simFrames <= 0 {
			return fmt.Errorf("--frames must be positive, got %d", simFrames)
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		w, h := render.ComputeLayout(simWidth, simHeight).WorldSize()
		opts := cfg.SceneOptions()
		opts.Logger = logger
		sc := scene.New(cat, w, h, opts)

		rep := scene.Simulate(sc, simFrames)
		logger.Info("simulation finished",
			zap.Int("frames", rep.Frames),
			zap.Float64("max_error", rep.MaxError),
			zap.Uint64("visits", rep.Visits))

		printf(cmd, "frames       %s\n", humanize.Comma(int64(rep.Frames)))
		printf(cmd, "platforms    %d\n", sc.Field.Len())
		printf(cmd, "orbit radius %.1f\n", sc.Field.Radius())
		printf(cmd, "max error    %.3f\n", rep.MaxError)
		printf(cmd, "final error  %.3f\n", rep.FinalError)
		printf(cmd, "rotation     %.3f rad\n", rep.Angle)
		printf(cmd, "visits       %s\n", humanize.Comma(int64(rep.Visits)))
		return nil
	},
}
