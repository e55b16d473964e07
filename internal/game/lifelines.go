package game

import "millionaire-service/internal/domain"

// Randomizer is the source of chance for the advisory lifelines.
// *math/rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
	Float64() float64
}

const (
	audienceMinShare = 40
	audienceMaxShare = 70
	friendAccuracy   = 0.8
)

// FiftyFifty hides the two lowest-indexed wrong options.
func FiftyFifty(quiz domain.Quiz, s domain.GameSession) (domain.GameSession, error) {
	question, next, done, err := beginLifeline(quiz, s, domain.LifelineFiftyFifty)
	if done || err != nil {
		return next, err
	}
	hidden := make([]int, 0, 2)
	for i := 0; i < domain.OptionCount && len(hidden) < 2; i++ {
		if i != question.CorrectAnswer {
			hidden = append(hidden, i)
		}
	}
	next.HiddenOptions = hidden
	return next, nil
}

// AskAudience produces a poll over the four options that sums to 100 and gives
// the correct option between 40 and 70 percent.
func AskAudience(quiz domain.Quiz, s domain.GameSession, rnd Randomizer) (domain.GameSession, error) {
	question, next, done, err := beginLifeline(quiz, s, domain.LifelineAskAudience)
	if done || err != nil {
		return next, err
	}
	next.AudienceResults = audiencePoll(question.CorrectAnswer, rnd)
	return next, nil
}

// PhoneAFriend suggests the correct option most of the time and a random one otherwise.
func PhoneAFriend(quiz domain.Quiz, s domain.GameSession, rnd Randomizer) (domain.GameSession, error) {
	question, next, done, err := beginLifeline(quiz, s, domain.LifelinePhoneAFriend)
	if done || err != nil {
		return next, err
	}
	suggestion := question.CorrectAnswer
	if rnd.Float64() >= friendAccuracy {
		suggestion = rnd.Intn(domain.OptionCount)
	}
	next.FriendSuggestion = domain.Intp(suggestion)
	return next, nil
}

// beginLifeline validates the phase and marks the lifeline used. done is true
// when the lifeline was already spent, in which case the session is returned as is.
func beginLifeline(quiz domain.Quiz, s domain.GameSession, l domain.Lifeline) (domain.Question, domain.GameSession, bool, error) {
	if err := requireAnswering(s); err != nil {
		return domain.Question{}, s, false, err
	}
	if s.LifelineUsed(l) {
		return domain.Question{}, s, true, nil
	}
	question, err := currentQuestion(quiz, s)
	if err != nil {
		return domain.Question{}, s, false, err
	}
	next := s.Clone()
	if next.LifelinesUsed == nil {
		next.LifelinesUsed = make(map[domain.Lifeline]bool, len(domain.Lifelines))
	}
	next.LifelinesUsed[l] = true
	return question, next, false, nil
}

func audiencePoll(correct int, rnd Randomizer) []int {
	results := make([]int, domain.OptionCount)
	results[correct] = audienceMinShare + rnd.Intn(audienceMaxShare-audienceMinShare+1)
	remaining := 100 - results[correct]

	wrong := make([]int, 0, domain.OptionCount-1)
	for i := 0; i < domain.OptionCount; i++ {
		if i != correct {
			wrong = append(wrong, i)
		}
	}
	for n, i := range wrong {
		if n == len(wrong)-1 {
			results[i] = remaining
			remaining = 0
			break
		}
		vote := rnd.Intn(remaining + 1)
		results[i] = vote
		remaining -= vote
	}
	results[correct] += remaining
	return results
}
