package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a game session does not exist or has expired.
	ErrSessionNotFound = errors.New("game session not found")
	// ErrQuizNotFound indicates the question bank could not be loaded.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrInvalidQuiz indicates a question bank failed validation.
	ErrInvalidQuiz = errors.New("invalid quiz")

	// ErrInvalidPhase is returned when a command is not allowed in the current phase.
	ErrInvalidPhase = errors.New("command not allowed in current phase")
	// ErrNoSelection is returned when confirming without a selected option.
	ErrNoSelection = errors.New("no answer selected")
	// ErrAnswerLocked is returned when the final answer is already locked in.
	ErrAnswerLocked = errors.New("final answer already locked")
	// ErrNoFinalAnswer is returned when submitting without a locked answer.
	ErrNoFinalAnswer = errors.New("no final answer locked")
	// ErrAdvancePending is returned while the game waits to move to the next question.
	ErrAdvancePending = errors.New("waiting for next question")
	// ErrNoAdvancePending is returned when advancing without a correct answer.
	ErrNoAdvancePending = errors.New("no correct answer to advance from")
	// ErrOptionOutOfRange indicates an option index outside the question's options.
	ErrOptionOutOfRange = errors.New("option out of range")
	// ErrUnknownCommand indicates an unsupported command type.
	ErrUnknownCommand = errors.New("unknown command")
)

var (
	// ErrGameNotFinished is returned when winnings are claimed mid-game.
	ErrGameNotFinished = errors.New("game is not finished")
	// ErrWinningsClaimed is returned when a game's winnings were already paid out.
	ErrWinningsClaimed = errors.New("winnings already claimed")
	// ErrNothingWon is returned when a finished game paid nothing.
	ErrNothingWon = errors.New("nothing won")
)
