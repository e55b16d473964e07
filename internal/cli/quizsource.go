package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"millionaire-service/internal/config"
	"millionaire-service/internal/infra/memory"
	pgloader "millionaire-service/internal/infra/postgres"
	"millionaire-service/internal/infra/sqlite"
	"millionaire-service/internal/quizdata"
)

// openQuizLoader returns the loader for the configured quiz source and a
// function releasing its connections.
func openQuizLoader(ctx context.Context, cfg config.Config) (memory.QuizLoader, func(), error) {
	switch cfg.Quiz.Source {
	case config.SourcePostgres:
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return pgloader.NewQuizLoader(pool), pool.Close, nil
	case config.SourceSQLite:
		store, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return memory.NewStaticQuizLoader(quizdata.Builtin()), func() {}, nil
	}
}
