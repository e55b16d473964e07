package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"millionaire-service/internal/config"
	"millionaire-service/internal/domain"
	pgstore "millionaire-service/internal/infra/postgres"
	"millionaire-service/internal/infra/sqlite"
	"millionaire-service/internal/logger"
	"millionaire-service/internal/quizdata"
)

// NewSeedCmd writes a question bank into the configured database.
func NewSeedCmd(configPath *string) *cobra.Command {
	var (
		target string
		file   string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store a question bank in postgres or sqlite",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath, target, file)
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "postgres or sqlite (defaults to quiz.source)")
	cmd.Flags().StringVar(&file, "file", "", "YAML question bank (defaults to the built-in classic game)")
	return cmd
}

func runSeed(ctx context.Context, configPath, target, file string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Env, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	quiz, err := readQuiz(file)
	if err != nil {
		return err
	}
	if target == "" {
		target = cfg.Quiz.Source
	}

	switch target {
	case config.SourcePostgres:
		if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
			return err
		}
		db, err := openBun(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := pgstore.SaveQuiz(ctx, db, quiz); err != nil {
			return err
		}
	case config.SourceSQLite:
		if cfg.SQLite.Path == "" {
			return fmt.Errorf("%w: sqlite.path not configured", config.ErrInvalidConfig)
		}
		store, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.SaveQuiz(ctx, quiz); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: seed target must be postgres or sqlite, got %q", config.ErrInvalidConfig, target)
	}
	log.Info("quiz seeded",
		zap.String("quiz", quiz.ID),
		zap.Int("questions", len(quiz.Questions)),
		zap.String("target", target))
	return nil
}

func readQuiz(file string) (domain.Quiz, error) {
	if file == "" {
		return quizdata.Classic(), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return domain.Quiz{}, err
	}
	return quizdata.Parse(data)
}
