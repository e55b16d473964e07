package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"millionaire-service/internal/config"
	"millionaire-service/internal/infra/memory"
	"millionaire-service/internal/tui"
)

// NewPlayCmd runs the terminal client against the configured question bank.
func NewPlayCmd(configPath *string) *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), *configPath, noColor)
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")
	return cmd
}

func runPlay(ctx context.Context, configPath string, noColor bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	loader, closeLoader, err := openQuizLoader(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLoader()

	quiz, err := memory.NewQuizRepository(loader, time.Minute).GetQuiz(ctx, cfg.Quiz.ID)
	if err != nil {
		return err
	}
	return tui.Run(quiz, tui.Options{
		AdvanceDelay: config.TTLDuration(cfg.Game.AdvanceDelay, 1500*time.Millisecond),
		NoColor:      noColor,
	})
}
