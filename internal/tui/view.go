package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"millionaire-service/internal/domain"
	"millionaire-service/internal/game"
)

const audienceBarWidth = 20

func (m Model) View() string {
	var body string
	switch m.session.Phase {
	case domain.PhaseMenu:
		body = m.menuView()
	case domain.PhaseFinished:
		body = m.finishedView()
	default:
		body = m.playingView()
	}
	parts := []string{body}
	if m.status != "" {
		parts = append(parts, m.styles.subtle.Render(m.status))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m Model) menuView() string {
	return m.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.styles.title.Render("Who Wants to be a"),
		m.styles.title.Render("MILLIONAIRE?"),
		"",
		fmt.Sprintf("Answer %d questions correctly to win %s!", len(m.quiz.Questions), m.quiz.Ladder.Top()),
		"",
		m.styles.subtle.Render("press enter to start"),
	))
}

func (m Model) finishedView() string {
	view := game.Project(m.quiz, m.session)
	heading := "Well Played!"
	style := m.styles.title
	switch view.Outcome {
	case domain.OutcomeWon:
		heading, style = "CONGRATULATIONS!", m.styles.good
	case domain.OutcomeLost:
		heading, style = "Game Over!", m.styles.bad
	}
	lines := []string{style.Render(heading), "", "You won: " + m.styles.title.Render(view.WonAmount)}
	if view.RevealedText != "" {
		lines = append(lines, fmt.Sprintf("The correct answer was %s: %s",
			game.OptionLabel(*view.RevealedAnswer), view.RevealedText))
	}
	lines = append(lines, "", m.styles.subtle.Render("r play again • m main menu • q quit"))
	return m.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) playingView() string {
	view := game.Project(m.quiz, m.session)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", m.styles.title.Render(fmt.Sprintf("Question %d of %d", view.QuestionNumber, view.QuestionCount)))
	fmt.Fprintf(&b, "Playing for: %s   Current winnings: %s\n", view.PlayingFor, view.WonAmount)
	fmt.Fprintf(&b, "%s\n\n", m.styles.subtle.Render(view.Category))
	fmt.Fprintf(&b, "%s\n\n", m.styles.prompt.Render(view.Prompt))
	for i, opt := range view.Options {
		b.WriteString(m.renderOption(i, opt, view))
		b.WriteString("\n")
	}

	if len(view.AudienceResults) == domain.OptionCount {
		b.WriteString("\nAsk the Audience\n")
		for i, pct := range view.AudienceResults {
			bar := strings.Repeat("█", pct*audienceBarWidth/100)
			fmt.Fprintf(&b, "%s: %-*s %3d%%\n", game.OptionLabel(i), audienceBarWidth, bar, pct)
		}
	}
	if view.FriendSuggestion != nil {
		fmt.Fprintf(&b, "\nYour friend suggests %s\n", game.OptionLabel(*view.FriendSuggestion))
	}

	b.WriteString("\nLifelines: ")
	b.WriteString(m.renderLifelines(view))

	question := m.styles.panel.Render(b.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, question, m.renderLadder(view))
}

func (m Model) renderOption(i int, opt domain.OptionView, view domain.GameView) string {
	if opt.Hidden {
		return m.styles.hidden.Render(fmt.Sprintf("  %s: ----", opt.Label))
	}
	line := fmt.Sprintf("%s: %s", opt.Label, opt.Text)
	switch {
	case view.FinalAnswer != nil && *view.FinalAnswer == i:
		return m.styles.locked.Render("» " + line)
	case view.SelectedAnswer != nil && *view.SelectedAnswer == i:
		return m.styles.selected.Render("> " + line)
	default:
		return m.styles.option.Render("  " + line)
	}
}

func (m Model) renderLifelines(view domain.GameView) string {
	names := map[domain.Lifeline]string{
		domain.LifelineFiftyFifty:   "[1] 50/50",
		domain.LifelineAskAudience:  "[2] Audience",
		domain.LifelinePhoneAFriend: "[3] Phone",
	}
	var parts []string
	for _, l := range domain.Lifelines {
		if view.Lifelines[l] {
			parts = append(parts, m.styles.option.Render(names[l]))
		} else {
			parts = append(parts, m.styles.hidden.Render(names[l]))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderLadder(view domain.GameView) string {
	lines := []string{m.styles.title.Render("Prize Ladder")}
	for i := len(view.Ladder) - 1; i >= 0; i-- {
		rung := view.Ladder[i]
		text := fmt.Sprintf("%2d  %s", rung.Number, rung.Prize)
		switch {
		case rung.Current:
			lines = append(lines, m.styles.current.Render(text))
		case rung.Safe:
			lines = append(lines, m.styles.safe.Render(text))
		default:
			lines = append(lines, m.styles.ladder.Render(text))
		}
	}
	return m.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
