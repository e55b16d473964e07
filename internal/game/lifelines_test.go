package game_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"millionaire-service/internal/domain"
	"millionaire-service/internal/game"
)

// fixedRand returns the configured values for every call.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r fixedRand) Float64() float64 { return r.f }

func TestFiftyFiftyHidesLowestWrongOptions(t *testing.T) {
	quiz, s := newGame(t)
	// first question: correct answer is index 2
	s, err := game.FiftyFifty(quiz, s)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, s.HiddenOptions)
	require.True(t, s.LifelineUsed(domain.LifelineFiftyFifty))

	s = answer(t, quiz, s, correct(quiz, s))
	again, err := game.FiftyFifty(quiz, s)
	require.NoError(t, err)
	require.Empty(t, again.HiddenOptions)
	require.Equal(t, s, again)
}

func TestFiftyFiftyKeepsCorrectAndOneWrong(t *testing.T) {
	quiz, s := newGame(t)
	for s.Phase == domain.PhasePlaying {
		used, err := game.FiftyFifty(quiz, s)
		require.NoError(t, err)
		require.Len(t, used.HiddenOptions, 2)
		require.NotContains(t, used.HiddenOptions, correct(quiz, s))
		s = answer(t, quiz, s, correct(quiz, s))
	}
}

func TestAskAudienceDistribution(t *testing.T) {
	quiz, s := newGame(t)
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		s.CurrentIndex = i % len(quiz.Questions)
		s.LifelinesUsed = nil
		out, err := game.AskAudience(quiz, s, rnd)
		require.NoError(t, err)
		require.Len(t, out.AudienceResults, domain.OptionCount)

		sum := 0
		for _, v := range out.AudienceResults {
			require.GreaterOrEqual(t, v, 0)
			sum += v
		}
		require.Equal(t, 100, sum)
		share := out.AudienceResults[correct(quiz, s)]
		require.GreaterOrEqual(t, share, 40)
		require.LessOrEqual(t, share, 70)
	}
}

func TestAskAudienceExtremes(t *testing.T) {
	quiz, s := newGame(t)

	low, err := game.AskAudience(quiz, s, fixedRand{n: 0})
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 40, 60}, low.AudienceResults)

	high, err := game.AskAudience(quiz, s, fixedRand{n: 1000})
	require.NoError(t, err)
	require.Equal(t, 70, high.AudienceResults[2])
	require.Equal(t, 100, high.AudienceResults[0]+high.AudienceResults[1]+high.AudienceResults[2]+high.AudienceResults[3])
}

func TestAskAudienceOncePerSession(t *testing.T) {
	quiz, s := newGame(t)
	s, err := game.AskAudience(quiz, s, fixedRand{n: 5})
	require.NoError(t, err)
	first := s.AudienceResults

	s2, err := game.AskAudience(quiz, s, fixedRand{n: 20})
	require.NoError(t, err)
	require.Equal(t, first, s2.AudienceResults)

	s2 = answer(t, quiz, s2, correct(quiz, s2))
	require.Nil(t, s2.AudienceResults)
	require.True(t, s2.LifelineUsed(domain.LifelineAskAudience))
}

func TestPhoneAFriend(t *testing.T) {
	quiz, s := newGame(t)

	trusted, err := game.PhoneAFriend(quiz, s, fixedRand{f: 0.79, n: 0})
	require.NoError(t, err)
	require.Equal(t, correct(quiz, s), *trusted.FriendSuggestion)

	guess, err := game.PhoneAFriend(quiz, s, fixedRand{f: 0.8, n: 3})
	require.NoError(t, err)
	require.Equal(t, 3, *guess.FriendSuggestion)

	again, err := game.PhoneAFriend(quiz, guess, fixedRand{f: 0, n: 0})
	require.NoError(t, err)
	require.Equal(t, 3, *again.FriendSuggestion)
}

func TestLifelinesLeaveAnswerAlone(t *testing.T) {
	quiz, s := newGame(t)
	s, err := game.Select(s, 0)
	require.NoError(t, err)

	s, err = game.FiftyFifty(quiz, s)
	require.NoError(t, err)
	s, err = game.AskAudience(quiz, s, fixedRand{n: 3})
	require.NoError(t, err)
	s, err = game.PhoneAFriend(quiz, s, fixedRand{f: 0.1})
	require.NoError(t, err)

	require.Equal(t, 0, *s.SelectedAnswer)
	require.Nil(t, s.FinalAnswer)
}

func TestLifelinesBlockedWhileLocked(t *testing.T) {
	quiz, s := newGame(t)
	s, err := game.Select(s, 1)
	require.NoError(t, err)
	s, err = game.Confirm(s)
	require.NoError(t, err)

	_, err = game.FiftyFifty(quiz, s)
	require.ErrorIs(t, err, domain.ErrAnswerLocked)
}
