package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"millionaire-service/internal/app"
	"millionaire-service/internal/bank"
	"millionaire-service/internal/config"
	"millionaire-service/internal/infra/memory"
	redisinfra "millionaire-service/internal/infra/redis"
	"millionaire-service/internal/logger"
	transport "millionaire-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the game server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Env, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg, log); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 2*time.Hour)

	loader, closeLoader, err := openQuizLoader(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLoader()

	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)
	var quizRepo app.QuizRepository
	if redisClient != nil {
		quizRepo = redisinfra.NewQuizRepository(redisClient, loader, quizTTL, log)
	} else {
		quizRepo = memory.NewQuizRepository(loader, quizTTL)
	}

	var store app.SessionRepository
	if redisClient != nil {
		store = redisinfra.NewSessionStore(redisClient, redisTTL)
	} else {
		store = memory.NewSessionStore()
	}

	// fail fast on a missing or broken question bank
	if _, err := quizRepo.GetQuiz(ctx, cfg.Quiz.ID); err != nil {
		return err
	}

	service := app.NewGameService(store, quizRepo, app.Options{
		QuizID:       cfg.Quiz.ID,
		AdvanceDelay: config.TTLDuration(cfg.Game.AdvanceDelay, 1500*time.Millisecond),
		Logger:       log,
	})

	ledger, err := newLedger(cfg)
	if err != nil {
		return err
	}

	router := transport.NewRouter(transport.Deps{
		Games:   service,
		Ledger:  ledger,
		Cookies: transport.NewCookieStore(cfg.Server.SessionSecret),
		Logger:  log,
	})

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info("starting game service",
			zap.String("addr", server.Addr),
			zap.String("quiz", cfg.Quiz.ID),
			zap.String("source", cfg.Quiz.Source))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Info("shutting down server")
	case <-ctx.Done():
		log.Info("context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func newLedger(cfg config.Config) (*bank.Ledger, error) {
	opts := bank.DefaultOptions()
	if cfg.Bank.AccountNumber != "" {
		opts.AccountNumber = cfg.Bank.AccountNumber
	}
	if cfg.Bank.AccountType != "" {
		opts.AccountType = cfg.Bank.AccountType
	}
	if cfg.Bank.OpeningBalance != "" {
		balance, err := bank.ParseAmount(cfg.Bank.OpeningBalance)
		if err != nil {
			return nil, err
		}
		opts.OpeningBalance = balance
	}
	if len(cfg.Bank.PINs) > 0 {
		opts.PINs = cfg.Bank.PINs
	}
	return bank.NewLedger(opts), nil
}
