package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/config"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/infrastructure/dataset"
	"svw.info/sudokugen/internal/render"
	"svw.info/sudokugen/internal/schedule"
	"svw.info/sudokugen/internal/usecase"
	"svw.info/sudokugen/internal/validator"
	"svw.info/sudokugen/internal/video"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath    string
		numSamples int
		output     string
		seed       int64
		noVideos   bool
		workers    int
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "sudokugen",
		Short: "Generate sudoku visual-reasoning task datasets",
		Long: `sudokugen produces synthetic training samples for a visual reasoning
task: a 9x9 sudoku puzzle, its solution, and an animated solving video.

Examples:
  sudokugen --num-samples 100
  sudokugen --num-samples 100 --output data/my_sudoku --seed 42
  sudokugen --num-samples 50 --no-videos`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("num-samples") {
				cfg.NumSamples = numSamples
			}
			if f.Changed("output") {
				cfg.OutputDir = output
			}
			if f.Changed("seed") {
				cfg.Seed = seed
			}
			if f.Changed("workers") {
				cfg.Workers = workers
			}
			if noVideos {
				cfg.GenerateVideos = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, verbose)
		},
	}
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (YAML/TOML)")
	cmd.Flags().IntVarP(&numSamples, "num-samples", "n", 10, "number of task samples to generate")
	cmd.Flags().StringVarP(&output, "output", "o", "data/questions", "output directory")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducibility (0 = time-derived)")
	cmd.Flags().BoolVar(&noVideos, "no-videos", false, "disable ground truth video generation")
	cmd.Flags().IntVar(&workers, "workers", 1, "concurrent sample generators")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func run(ctx context.Context, cfg *config.Config, verbose bool) error {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
		log.WithField("seed", cfg.Seed).Info("using time-derived seed")
	}

	renderer, err := render.New(cfg.ImageWidth, cfg.ImageHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}

	lib := video.DefaultPresetLibrary()
	if cfg.PresetFile != "" {
		if lib, err = video.LoadPresetFile(cfg.PresetFile); err != nil {
			return err
		}
	}
	preset, ok := lib.Get(cfg.VideoPreset)
	if !ok {
		return fmt.Errorf("unknown video preset %q", cfg.VideoPreset)
	}
	encoder := video.NewEncoder(preset)
	if cfg.GenerateVideos && !encoder.Available() {
		log.Warn("ffmpeg not found on PATH, videos will be skipped")
	}

	svc := usecase.NewService(
		cfg,
		generator.New(),
		schedule.New(),
		validator.New(),
		renderer,
		encoder,
		dataset.NewFS(cfg.OutputDir, cfg.DomainName),
		log,
	)

	start := time.Now()
	log.WithFields(logrus.Fields{
		"samples": cfg.NumSamples,
		"seed":    cfg.Seed,
		"output":  cfg.OutputDir,
		"workers": cfg.Workers,
	}).Info("generating dataset")

	metas, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"samples": len(metas),
		"dir":     fmt.Sprintf("%s/%s_task", cfg.OutputDir, cfg.DomainName),
		"dur":     time.Since(start).Round(time.Millisecond),
	}).Info("dataset complete")
	return nil
}
