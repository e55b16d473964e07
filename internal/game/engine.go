// Package game implements the quiz rules as pure transitions over domain.GameSession.
//
// Every function takes the current session by value and returns the next one;
// the input is never modified. A rejected command returns the input session
// unchanged together with a domain error. Timing, storage and presentation are
// left to callers.
package game

import (
	"time"

	"millionaire-service/internal/domain"
)

// Apply dispatches a command to its transition.
func Apply(quiz domain.Quiz, s domain.GameSession, cmd domain.Command, rnd Randomizer, now time.Time) (domain.GameSession, error) {
	var (
		next domain.GameSession
		err  error
	)
	switch cmd.Type {
	case domain.CommandStart:
		next = Start(s)
	case domain.CommandSelect:
		next, err = Select(s, cmd.Option)
	case domain.CommandConfirm:
		next, err = Confirm(s)
	case domain.CommandCancel:
		next, err = Cancel(s)
	case domain.CommandSubmit:
		next, err = Submit(quiz, s)
	case domain.CommandAdvance:
		next, err = Advance(quiz, s)
	case domain.CommandWalkAway:
		next, err = WalkAway(quiz, s)
	case domain.CommandMenu:
		next, err = Menu(s)
	case domain.CommandFiftyFifty:
		next, err = FiftyFifty(quiz, s)
	case domain.CommandAskAudience:
		next, err = AskAudience(quiz, s, rnd)
	case domain.CommandPhoneAFriend:
		next, err = PhoneAFriend(quiz, s, rnd)
	default:
		return s, domain.ErrUnknownCommand
	}
	if err != nil {
		return s, err
	}
	next.UpdatedAt = now
	if cmd.Type == domain.CommandStart {
		next.StartedAt = now
	}
	return next, nil
}

// Start resets the session and puts it on the first question. It is valid from
// any phase, which covers both the first game and a replay. Every start begins
// a new round.
func Start(s domain.GameSession) domain.GameSession {
	return domain.GameSession{
		ID:        s.ID,
		QuizID:    s.QuizID,
		Phase:     domain.PhasePlaying,
		Round:     s.Round + 1,
		WonAmount: domain.ZeroPrize,
		StartedAt: s.StartedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Menu returns a finished game to the main menu.
func Menu(s domain.GameSession) (domain.GameSession, error) {
	if s.Phase == domain.PhasePlaying {
		return s, domain.ErrInvalidPhase
	}
	next := s.Clone()
	next.Phase = domain.PhaseMenu
	return next, nil
}

// Select marks an option as the player's current choice. Hidden options are ignored.
func Select(s domain.GameSession, option int) (domain.GameSession, error) {
	if err := requireAnswering(s); err != nil {
		return s, err
	}
	if option < 0 || option >= domain.OptionCount {
		return s, domain.ErrOptionOutOfRange
	}
	if s.IsHidden(option) {
		return s, nil
	}
	next := s.Clone()
	next.SelectedAnswer = domain.Intp(option)
	return next, nil
}

// Confirm locks the selected option as the final answer pending submission.
func Confirm(s domain.GameSession) (domain.GameSession, error) {
	if err := requireAnswering(s); err != nil {
		return s, err
	}
	if s.SelectedAnswer == nil {
		return s, domain.ErrNoSelection
	}
	next := s.Clone()
	next.FinalAnswer = domain.Intp(*s.SelectedAnswer)
	return next, nil
}

// Cancel releases a locked final answer; the selection is kept.
func Cancel(s domain.GameSession) (domain.GameSession, error) {
	if s.Phase != domain.PhasePlaying {
		return s, domain.ErrInvalidPhase
	}
	if s.FinalAnswer == nil {
		return s, domain.ErrNoFinalAnswer
	}
	next := s.Clone()
	next.FinalAnswer = nil
	return next, nil
}

// Submit grades the locked final answer.
//
// A correct answer on the last question wins the game. A correct answer on any
// other question banks the prize and leaves the session awaiting Advance. A wrong
// answer ends the game with the guaranteed payout.
func Submit(quiz domain.Quiz, s domain.GameSession) (domain.GameSession, error) {
	if s.Phase != domain.PhasePlaying {
		return s, domain.ErrInvalidPhase
	}
	if s.AwaitingAdvance {
		return s, domain.ErrAdvancePending
	}
	if s.FinalAnswer == nil {
		return s, domain.ErrNoFinalAnswer
	}
	question, err := currentQuestion(quiz, s)
	if err != nil {
		return s, err
	}

	next := s.Clone()
	if *s.FinalAnswer == question.CorrectAnswer {
		next.WonAmount = quiz.Ladder.Prize(s.CurrentIndex)
		if s.CurrentIndex == quiz.LastIndex() {
			next.Phase = domain.PhaseFinished
			next.Outcome = domain.OutcomeWon
			return next, nil
		}
		next.AwaitingAdvance = true
		return next, nil
	}

	next.WonAmount = quiz.Ladder.GuaranteedPayout(s.CurrentIndex)
	next.Phase = domain.PhaseFinished
	next.Outcome = domain.OutcomeLost
	next.RevealedAnswer = domain.Intp(question.CorrectAnswer)
	return next, nil
}

// Advance moves to the next question after a correct answer and clears the
// per-question state.
func Advance(quiz domain.Quiz, s domain.GameSession) (domain.GameSession, error) {
	if s.Phase != domain.PhasePlaying {
		return s, domain.ErrInvalidPhase
	}
	if !s.AwaitingAdvance {
		return s, domain.ErrNoAdvancePending
	}
	if s.CurrentIndex >= quiz.LastIndex() {
		return s, domain.ErrInvalidPhase
	}
	next := s.Clone()
	next.CurrentIndex++
	next.AwaitingAdvance = false
	clearQuestionState(&next)
	return next, nil
}

// WalkAway ends the game keeping the prize of the last answered question.
func WalkAway(quiz domain.Quiz, s domain.GameSession) (domain.GameSession, error) {
	if s.Phase != domain.PhasePlaying {
		return s, domain.ErrInvalidPhase
	}
	if s.AwaitingAdvance {
		return s, domain.ErrAdvancePending
	}
	next := s.Clone()
	next.WonAmount = quiz.Ladder.WalkAwayPayout(s.CurrentIndex)
	next.Phase = domain.PhaseFinished
	next.Outcome = domain.OutcomeWalkedAway
	next.FinalAnswer = nil
	return next, nil
}

// requireAnswering checks the player may still change the answer to the current question.
func requireAnswering(s domain.GameSession) error {
	if s.Phase != domain.PhasePlaying {
		return domain.ErrInvalidPhase
	}
	if s.AwaitingAdvance {
		return domain.ErrAdvancePending
	}
	if s.FinalAnswer != nil {
		return domain.ErrAnswerLocked
	}
	return nil
}

func currentQuestion(quiz domain.Quiz, s domain.GameSession) (domain.Question, error) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(quiz.Questions) {
		return domain.Question{}, domain.ErrInvalidQuiz
	}
	return quiz.Questions[s.CurrentIndex], nil
}

func clearQuestionState(s *domain.GameSession) {
	s.SelectedAnswer = nil
	s.FinalAnswer = nil
	s.HiddenOptions = nil
	s.AudienceResults = nil
	s.FriendSuggestion = nil
}
