package game_test

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"

	"millionaire-service/internal/domain"
	"millionaire-service/internal/game"
	"millionaire-service/internal/quizdata"
)

func TestGameplayFeatures(t *testing.T) {
	options := godog.Options{
		Format:   "progress",
		Paths:    []string{filepath.Join("features")},
		Output:   io.Discard,
		TestingT: t,
	}

	suite := godog.TestSuite{
		Name:                "gameplay",
		ScenarioInitializer: initializeGameplayScenario,
		Options:             &options,
	}

	if suite.Run() != 0 {
		t.Fatalf("gameplay features failed")
	}
}

// gameplayState holds one scenario's quiz and session.
type gameplayState struct {
	quiz    domain.Quiz
	session domain.GameSession
}

func initializeGameplayScenario(ctx *godog.ScenarioContext) {
	state := &gameplayState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*state = gameplayState{}
		return ctx, nil
	})

	ctx.Step(`^a new game of the classic quiz$`, state.aNewGame)
	ctx.Step(`^I answer (\d+) questions correctly$`, state.iAnswerCorrectly)
	ctx.Step(`^I answer the current question wrongly$`, state.iAnswerWrongly)
	ctx.Step(`^I walk away$`, state.iWalkAway)
	ctx.Step(`^I use fifty-fifty$`, state.iUseFiftyFifty)
	ctx.Step(`^I use the audience poll$`, state.iUseAudience)
	ctx.Step(`^I start again$`, state.iStartAgain)
	ctx.Step(`^the game is finished$`, state.theGameIsFinished)
	ctx.Step(`^I leave with "([^"]*)"$`, state.iLeaveWith)
	ctx.Step(`^(\d+) options are hidden$`, state.optionsAreHidden)
	ctx.Step(`^I am on question (\d+)$`, state.iAmOnQuestion)
	ctx.Step(`^every lifeline is available$`, state.everyLifelineIsAvailable)
}

func (s *gameplayState) aNewGame() error {
	s.quiz = quizdata.Classic()
	s.session = game.Start(domain.NewGameSession("feature", s.quiz.ID, epoch))
	return nil
}

func (s *gameplayState) submit(option int) error {
	steps := []domain.Command{
		{Type: domain.CommandSelect, Option: option},
		{Type: domain.CommandConfirm},
		{Type: domain.CommandSubmit},
	}
	for _, cmd := range steps {
		next, err := game.Apply(s.quiz, s.session, cmd, fixedRand{}, epoch)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Type, err)
		}
		s.session = next
	}
	if s.session.AwaitingAdvance {
		next, err := game.Advance(s.quiz, s.session)
		if err != nil {
			return err
		}
		s.session = next
	}
	return nil
}

func (s *gameplayState) iAnswerCorrectly(count int) error {
	for i := 0; i < count; i++ {
		if err := s.submit(s.quiz.Questions[s.session.CurrentIndex].CorrectAnswer); err != nil {
			return err
		}
	}
	return nil
}

func (s *gameplayState) iAnswerWrongly() error {
	right := s.quiz.Questions[s.session.CurrentIndex].CorrectAnswer
	return s.submit((right + 1) % domain.OptionCount)
}

func (s *gameplayState) iWalkAway() error {
	next, err := game.WalkAway(s.quiz, s.session)
	if err != nil {
		return err
	}
	s.session = next
	return nil
}

func (s *gameplayState) iUseFiftyFifty() error {
	next, err := game.FiftyFifty(s.quiz, s.session)
	if err != nil {
		return err
	}
	s.session = next
	return nil
}

func (s *gameplayState) iUseAudience() error {
	next, err := game.AskAudience(s.quiz, s.session, fixedRand{n: 7})
	if err != nil {
		return err
	}
	s.session = next
	return nil
}

func (s *gameplayState) iStartAgain() error {
	s.session = game.Start(s.session)
	return nil
}

func (s *gameplayState) theGameIsFinished() error {
	if s.session.Phase != domain.PhaseFinished {
		return fmt.Errorf("expected finished game, got %s", s.session.Phase)
	}
	return nil
}

func (s *gameplayState) iLeaveWith(amount string) error {
	if s.session.WonAmount != amount {
		return fmt.Errorf("expected to leave with %s, got %s", amount, s.session.WonAmount)
	}
	return nil
}

func (s *gameplayState) optionsAreHidden(count int) error {
	if len(s.session.HiddenOptions) != count {
		return fmt.Errorf("expected %d hidden options, got %v", count, s.session.HiddenOptions)
	}
	return nil
}

func (s *gameplayState) iAmOnQuestion(number int) error {
	if s.session.CurrentIndex+1 != number {
		return fmt.Errorf("expected question %d, got %d", number, s.session.CurrentIndex+1)
	}
	return nil
}

func (s *gameplayState) everyLifelineIsAvailable() error {
	for _, l := range domain.Lifelines {
		if s.session.LifelineUsed(l) {
			return fmt.Errorf("lifeline %s still marked used", l)
		}
	}
	return nil
}
