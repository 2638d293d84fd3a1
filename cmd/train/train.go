package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nextact/config"
	"nextact/internal/training"
	"nextact/internal/training/repository"
	csvRepo "nextact/internal/training/repository/csv"
	sqliteRepo "nextact/internal/training/repository/sqlite"
	"nextact/internal/training/usecase"
	"nextact/pkg/log"
)

func trainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fit a model and write the artifact",
		RunE:  runTrain,
	}

	cmd.Flags().String("data", "", "corpus location: CSV file or SQLite database")
	cmd.Flags().String("source", "", "corpus format (csv, sqlite)")
	cmd.Flags().String("table", "", "SQLite table holding the corpus")
	cmd.Flags().String("text-column", "", "column with the task text")
	cmd.Flags().String("label-column", "", "column with the category label")
	cmd.Flags().StringP("out", "o", "", "artifact output path")
	cmd.Flags().Float64("test-size", 0, "held-out share of every label")
	cmd.Flags().Uint64("seed", 0, "split seed")
	cmd.Flags().Int("min-df", 0, "minimum document frequency of a term")
	cmd.Flags().Int("max-iter", 0, "solver iteration cap")
	cmd.Flags().BoolP("quiet", "q", false, "hide the progress bar")

	for key, flag := range map[string]string{
		"training.data_path":    "data",
		"training.source":       "source",
		"training.table":        "table",
		"training.text_column":  "text-column",
		"training.label_column": "label-column",
		"training.output_path":  "out",
		"training.test_size":    "test-size",
		"training.seed":         "seed",
		"training.min_df":       "min-df",
		"training.max_iter":     "max-iter",
	} {
		_ = viper.BindPFlag(key, cmd.Flags().Lookup(flag))
	}

	return cmd
}

func runTrain(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	repo, closeRepo, err := newCorpusRepository(cfg.Training, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	logger.Infof(ctx, "Training on %s corpus %s", cfg.Training.Source, cfg.Training.DataPath)

	quiet, _ := cmd.Flags().GetBool("quiet")
	bar := newProgressBar(cmd.ErrOrStderr(), cfg.Training.MaxIter, quiet)

	uc := usecase.New(repo, logger)
	out, err := uc.Train(ctx, training.TrainInput{
		Corpus: repository.ListExamplesOptions{
			Table:       cfg.Training.Table,
			TextColumn:  cfg.Training.TextColumn,
			LabelColumn: cfg.Training.LabelColumn,
		},
		OutputPath: cfg.Training.OutputPath,
		TestSize:   cfg.Training.TestSize,
		Seed:       cfg.Training.Seed,
		MinDF:      cfg.Training.MinDF,
		MaxIter:    cfg.Training.MaxIter,
		Metadata: map[string]string{
			"source":    cfg.Training.Source,
			"data_path": cfg.Training.DataPath,
		},
		Progress: func(iter int, loss float64) {
			bar.Describe(fmt.Sprintf("loss %.5f", loss))
			_ = bar.Set(iter)
		},
	})
	_ = bar.Finish()
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Labels: %v\n", out.Labels)
	fmt.Fprintf(w, "Examples: %d train / %d test\n", out.TrainSize, out.TestSize)
	fmt.Fprintf(w, "Solver: %d iterations, converged=%t, loss=%.6f\n", out.Stats.Iterations, out.Stats.Converged, out.Stats.Loss)
	fmt.Fprintf(w, "Accuracy: %.4f\n\n%s\n", out.Report.Accuracy, out.Report.String())
	fmt.Fprintf(w, "Model saved to %s\n", out.ArtifactPath)
	return nil
}

func newCorpusRepository(cfg config.TrainingConfig, l log.Logger) (repository.CorpusRepository, func(), error) {
	switch cfg.Source {
	case config.SourceSQLite:
		db, err := sqliteRepo.Open(cfg.DataPath)
		if err != nil {
			return nil, nil, err
		}
		return sqliteRepo.New(db, l), func() { db.Close() }, nil
	default:
		if _, err := os.Stat(cfg.DataPath); err != nil {
			return nil, nil, fmt.Errorf("corpus file: %w", err)
		}
		return csvRepo.New(cfg.DataPath, l), func() {}, nil
	}
}

func newProgressBar(w io.Writer, total int, quiet bool) *progressbar.ProgressBar {
	if quiet {
		w = io.Discard
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetDescription("[cyan][bold]Fitting model...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}
