// Package tui is a terminal client that plays the game locally with Bubble Tea.
package tui

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"millionaire-service/internal/domain"
	"millionaire-service/internal/game"
)

// Options configures the terminal client.
type Options struct {
	AdvanceDelay time.Duration
	Rand         game.Randomizer
	NoColor      bool
	Now          func() time.Time
}

// Model drives one local game session.
type Model struct {
	quiz    domain.Quiz
	session domain.GameSession
	rnd     game.Randomizer
	delay   time.Duration
	now     func() time.Time
	keys    keyMap
	help    help.Model
	styles  styles
	status  string
}

// NewModel returns a client parked on the main menu.
func NewModel(quiz domain.Quiz, opts Options) Model {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return Model{
		quiz:    quiz,
		session: domain.NewGameSession("local", quiz.ID, opts.Now()),
		rnd:     opts.Rand,
		delay:   opts.AdvanceDelay,
		now:     opts.Now,
		keys:    defaultKeys(),
		help:    help.New(),
		styles:  newStyles(opts.NoColor),
	}
}

// advanceMsg fires when the pause after a correct answer is over.
type advanceMsg struct {
	round int
	index int
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		return m, nil
	case advanceMsg:
		if typed.round != m.session.Round || !m.session.AwaitingAdvance || typed.index != m.session.CurrentIndex {
			return m, nil
		}
		return m.apply(domain.Command{Type: domain.CommandAdvance})
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	switch m.session.Phase {
	case domain.PhaseMenu:
		if key.Matches(msg, m.keys.Replay, m.keys.Confirm) {
			return m.apply(domain.Command{Type: domain.CommandStart})
		}
	case domain.PhaseFinished:
		switch {
		case key.Matches(msg, m.keys.Replay):
			return m.apply(domain.Command{Type: domain.CommandStart})
		case key.Matches(msg, m.keys.Menu):
			return m.apply(domain.Command{Type: domain.CommandMenu})
		}
	case domain.PhasePlaying:
		switch {
		case key.Matches(msg, m.keys.Select):
			return m.apply(domain.Command{Type: domain.CommandSelect, Option: int(msg.String()[0] - 'a')})
		case key.Matches(msg, m.keys.Confirm):
			return m.apply(domain.Command{Type: domain.CommandConfirm})
		case key.Matches(msg, m.keys.Yes):
			return m.apply(domain.Command{Type: domain.CommandSubmit})
		case key.Matches(msg, m.keys.No):
			return m.apply(domain.Command{Type: domain.CommandCancel})
		case key.Matches(msg, m.keys.Fifty):
			return m.lifeline(domain.LifelineFiftyFifty, domain.CommandFiftyFifty)
		case key.Matches(msg, m.keys.Audience):
			return m.lifeline(domain.LifelineAskAudience, domain.CommandAskAudience)
		case key.Matches(msg, m.keys.Phone):
			return m.lifeline(domain.LifelinePhoneAFriend, domain.CommandPhoneAFriend)
		case key.Matches(msg, m.keys.WalkAway):
			return m.apply(domain.Command{Type: domain.CommandWalkAway})
		}
	}
	return m, nil
}

func (m Model) lifeline(l domain.Lifeline, cmd domain.CommandType) (tea.Model, tea.Cmd) {
	if m.session.LifelineUsed(l) {
		m.status = "That lifeline has already been used."
		return m, nil
	}
	return m.apply(domain.Command{Type: cmd})
}

func (m Model) apply(cmd domain.Command) (tea.Model, tea.Cmd) {
	prev := m.session
	next, err := game.Apply(m.quiz, prev, cmd, m.rnd, m.now())
	if err != nil {
		m.status = errorText(err)
		return m, nil
	}
	m.session = next
	m.status = m.statusFor(prev, next, cmd.Type)

	if next.AwaitingAdvance && !prev.AwaitingAdvance {
		return m, m.scheduleAdvance()
	}
	return m, nil
}

func (m Model) scheduleAdvance() tea.Cmd {
	msg := advanceMsg{round: m.session.Round, index: m.session.CurrentIndex}
	if m.delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return msg })
}

func (m Model) statusFor(prev, next domain.GameSession, cmd domain.CommandType) string {
	switch cmd {
	case domain.CommandStart:
		return fmt.Sprintf("Game started! Good luck on your journey to %s!", m.quiz.Ladder.Top())
	case domain.CommandConfirm:
		return "Is that your final answer? (y/n)"
	case domain.CommandFiftyFifty:
		return "50/50 used! Two wrong answers have been removed."
	case domain.CommandAskAudience:
		return "The audience has voted."
	case domain.CommandPhoneAFriend:
		if next.FriendSuggestion == nil {
			return ""
		}
		q := m.quiz.Questions[next.CurrentIndex]
		return fmt.Sprintf("\"Hi! I think the answer is %s: %s. But I'm not 100%% sure. Good luck!\"",
			game.OptionLabel(*next.FriendSuggestion), q.Options[*next.FriendSuggestion])
	case domain.CommandWalkAway:
		return fmt.Sprintf("You walked away! You leave with %s.", next.WonAmount)
	case domain.CommandSubmit:
		switch next.Outcome {
		case domain.OutcomeWon:
			return fmt.Sprintf("CONGRATULATIONS! You've won %s!", next.WonAmount)
		case domain.OutcomeLost:
			q := m.quiz.Questions[next.CurrentIndex]
			return fmt.Sprintf("Game over! The correct answer was %s. You leave with %s.",
				q.Options[q.CorrectAnswer], next.WonAmount)
		}
		return fmt.Sprintf("Correct! You've won %s!", next.WonAmount)
	}
	return ""
}

func errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoSelection):
		return "Pick an answer first."
	case errors.Is(err, domain.ErrAnswerLocked):
		return "Your answer is locked in. Press y to submit or n to reconsider."
	case errors.Is(err, domain.ErrNoFinalAnswer):
		return "Press enter to lock in an answer first."
	case errors.Is(err, domain.ErrAdvancePending):
		return "Hold on, the next question is coming up."
	default:
		return err.Error()
	}
}

// Run plays the quiz in the terminal until the player quits.
func Run(quiz domain.Quiz, opts Options) error {
	_, err := tea.NewProgram(NewModel(quiz, opts), tea.WithAltScreen()).Run()
	return err
}
