package game

import "millionaire-service/internal/domain"

var optionLabels = [domain.OptionCount]string{"A", "B", "C", "D"}

// OptionLabel returns the letter shown next to option i.
func OptionLabel(i int) string {
	if i < 0 || i >= len(optionLabels) {
		return "?"
	}
	return optionLabels[i]
}

// Project builds the player-facing view of a session. Lifelines in the view map
// to true while still available.
func Project(quiz domain.Quiz, s domain.GameSession) domain.GameView {
	view := domain.GameView{
		GameID:           s.ID,
		Phase:            s.Phase,
		Outcome:          s.Outcome,
		QuestionNumber:   s.CurrentIndex + 1,
		QuestionCount:    len(quiz.Questions),
		WonAmount:        s.WonAmount,
		SelectedAnswer:   s.SelectedAnswer,
		FinalAnswer:      s.FinalAnswer,
		AwaitingAdvance:  s.AwaitingAdvance,
		RevealedAnswer:   s.RevealedAnswer,
		AudienceResults:  s.AudienceResults,
		FriendSuggestion: s.FriendSuggestion,
		Lifelines:        make(map[domain.Lifeline]bool, len(domain.Lifelines)),
	}
	for _, l := range domain.Lifelines {
		view.Lifelines[l] = !s.LifelineUsed(l)
	}

	for i, prize := range quiz.Ladder.Levels {
		view.Ladder = append(view.Ladder, domain.LadderRung{
			Number:  i + 1,
			Prize:   prize,
			Safe:    quiz.Ladder.IsSafe(i),
			Current: s.Phase == domain.PhasePlaying && i == s.CurrentIndex,
		})
	}

	if s.Phase == domain.PhaseMenu {
		return view
	}
	question, err := currentQuestion(quiz, s)
	if err != nil {
		return view
	}
	view.Category = question.Category
	view.Prompt = question.Prompt
	view.PlayingFor = quiz.Ladder.Prize(s.CurrentIndex)
	for i, text := range question.Options {
		view.Options = append(view.Options, domain.OptionView{
			Label:  OptionLabel(i),
			Text:   text,
			Hidden: s.IsHidden(i),
		})
	}
	if s.RevealedAnswer != nil {
		view.RevealedText = question.Options[*s.RevealedAnswer]
	}
	return view
}
