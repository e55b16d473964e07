package domain

import "fmt"

// OptionCount is the number of options every question carries.
const OptionCount = 4

// ZeroPrize is the payout when nothing has been secured.
const ZeroPrize = "$0"

// Question models a multiple choice question with exactly one correct option.
type Question struct {
	ID            int      `json:"id" yaml:"id"`
	Category      string   `json:"category" yaml:"category"`
	Prompt        string   `json:"prompt" yaml:"prompt"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer int      `json:"correctAnswer" yaml:"correct_answer"`
	Difficulty    int      `json:"difficulty" yaml:"difficulty"`
}

// PrizeLadder is the ordered list of prize labels, index-aligned with the questions.
type PrizeLadder struct {
	Levels     []string `json:"levels" yaml:"levels"`
	SafePoints []int    `json:"safePoints" yaml:"safe_points"`
}

// Prize returns the label at index i, or ZeroPrize when i is out of range.
func (l PrizeLadder) Prize(i int) string {
	if i < 0 || i >= len(l.Levels) {
		return ZeroPrize
	}
	return l.Levels[i]
}

// Top returns the top prize.
func (l PrizeLadder) Top() string {
	return l.Prize(len(l.Levels) - 1)
}

// IsSafe reports whether index i is a safe point.
func (l PrizeLadder) IsSafe(i int) bool {
	for _, s := range l.SafePoints {
		if s == i {
			return true
		}
	}
	return false
}

// GuaranteedPayout returns the prize kept after a wrong answer at currentIndex.
// A safe point counts only once the player is strictly past it.
func (l PrizeLadder) GuaranteedPayout(currentIndex int) string {
	best := -1
	for _, s := range l.SafePoints {
		if currentIndex > s && s > best {
			best = s
		}
	}
	if best < 0 {
		return ZeroPrize
	}
	return l.Prize(best)
}

// WalkAwayPayout returns the prize for the last answered question.
func (l PrizeLadder) WalkAwayPayout(currentIndex int) string {
	if currentIndex <= 0 {
		return ZeroPrize
	}
	return l.Prize(currentIndex - 1)
}

// Quiz is a question bank paired with its prize ladder.
type Quiz struct {
	ID        string      `json:"id" yaml:"id"`
	Title     string      `json:"title" yaml:"title"`
	Questions []Question  `json:"questions" yaml:"questions"`
	Ladder    PrizeLadder `json:"ladder" yaml:"ladder"`
}

// LastIndex is the index of the final question.
func (q Quiz) LastIndex() int {
	return len(q.Questions) - 1
}

// Validate checks the structural rules the game relies on.
func (q Quiz) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidQuiz)
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("%w: %s has no questions", ErrInvalidQuiz, q.ID)
	}
	if len(q.Ladder.Levels) != len(q.Questions) {
		return fmt.Errorf("%w: %s has %d questions but %d ladder levels",
			ErrInvalidQuiz, q.ID, len(q.Questions), len(q.Ladder.Levels))
	}
	for i, question := range q.Questions {
		if len(question.Options) != OptionCount {
			return fmt.Errorf("%w: question %d has %d options", ErrInvalidQuiz, i+1, len(question.Options))
		}
		for _, opt := range question.Options {
			if opt == "" {
				return fmt.Errorf("%w: question %d has an empty option", ErrInvalidQuiz, i+1)
			}
		}
		if question.CorrectAnswer < 0 || question.CorrectAnswer >= OptionCount {
			return fmt.Errorf("%w: question %d correct answer %d out of range",
				ErrInvalidQuiz, i+1, question.CorrectAnswer)
		}
	}
	prev := -1
	for _, s := range q.Ladder.SafePoints {
		if s < 0 || s >= len(q.Ladder.Levels) || s <= prev {
			return fmt.Errorf("%w: safe point %d", ErrInvalidQuiz, s)
		}
		prev = s
	}
	return nil
}
