package domain

import "time"

// Phase is the coarse state of a game session.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhasePlaying  Phase = "playing"
	PhaseFinished Phase = "finished"
)

// Outcome records how a finished game ended.
type Outcome string

const (
	OutcomeNone       Outcome = ""
	OutcomeWon        Outcome = "won"
	OutcomeLost       Outcome = "lost"
	OutcomeWalkedAway Outcome = "walked_away"
)

// Lifeline identifies a one-shot helper.
type Lifeline string

const (
	LifelineFiftyFifty   Lifeline = "fifty_fifty"
	LifelineAskAudience  Lifeline = "ask_audience"
	LifelinePhoneAFriend Lifeline = "phone_a_friend"
)

// Lifelines lists every lifeline in display order.
var Lifelines = []Lifeline{LifelineFiftyFifty, LifelineAskAudience, LifelinePhoneAFriend}

// GameSession is the full, serializable state of one play-through.
type GameSession struct {
	ID               string            `json:"id"`
	QuizID           string            `json:"quizId"`
	Phase            Phase             `json:"phase"`
	Round            int               `json:"round"`
	CurrentIndex     int               `json:"currentIndex"`
	SelectedAnswer   *int              `json:"selectedAnswer,omitempty"`
	FinalAnswer      *int              `json:"finalAnswer,omitempty"`
	AwaitingAdvance  bool              `json:"awaitingAdvance"`
	WonAmount        string            `json:"wonAmount"`
	Outcome          Outcome           `json:"outcome,omitempty"`
	RevealedAnswer   *int              `json:"revealedAnswer,omitempty"`
	LifelinesUsed    map[Lifeline]bool `json:"lifelinesUsed,omitempty"`
	HiddenOptions    []int             `json:"hiddenOptions,omitempty"`
	AudienceResults  []int             `json:"audienceResults,omitempty"`
	FriendSuggestion *int              `json:"friendSuggestion,omitempty"`
	WinningsBanked   bool              `json:"winningsBanked,omitempty"`
	StartedAt        time.Time         `json:"startedAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// NewGameSession returns a session parked on the menu.
func NewGameSession(id, quizID string, now time.Time) GameSession {
	return GameSession{
		ID:        id,
		QuizID:    quizID,
		Phase:     PhaseMenu,
		WonAmount: ZeroPrize,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy so callers can derive new states without aliasing.
func (s GameSession) Clone() GameSession {
	out := s
	out.SelectedAnswer = cloneInt(s.SelectedAnswer)
	out.FinalAnswer = cloneInt(s.FinalAnswer)
	out.RevealedAnswer = cloneInt(s.RevealedAnswer)
	out.FriendSuggestion = cloneInt(s.FriendSuggestion)
	if s.LifelinesUsed != nil {
		out.LifelinesUsed = make(map[Lifeline]bool, len(s.LifelinesUsed))
		for k, v := range s.LifelinesUsed {
			out.LifelinesUsed[k] = v
		}
	}
	if s.HiddenOptions != nil {
		out.HiddenOptions = append([]int(nil), s.HiddenOptions...)
	}
	if s.AudienceResults != nil {
		out.AudienceResults = append([]int(nil), s.AudienceResults...)
	}
	return out
}

// IsHidden reports whether the option was removed by fifty-fifty.
func (s GameSession) IsHidden(option int) bool {
	for _, h := range s.HiddenOptions {
		if h == option {
			return true
		}
	}
	return false
}

// LifelineUsed reports whether l has been spent in this session.
func (s GameSession) LifelineUsed(l Lifeline) bool {
	return s.LifelinesUsed[l]
}

// Intp returns a pointer to v.
func Intp(v int) *int {
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CommandType names a player action.
type CommandType string

const (
	CommandStart        CommandType = "start"
	CommandSelect       CommandType = "select"
	CommandConfirm      CommandType = "confirm"
	CommandCancel       CommandType = "cancel"
	CommandSubmit       CommandType = "submit"
	CommandAdvance      CommandType = "advance"
	CommandWalkAway     CommandType = "walk_away"
	CommandMenu         CommandType = "menu"
	CommandFiftyFifty   CommandType = "fifty_fifty"
	CommandAskAudience  CommandType = "ask_audience"
	CommandPhoneAFriend CommandType = "phone_a_friend"
)

// Command is a single player action applied to a session.
type Command struct {
	Type   CommandType `json:"type"`
	Option int         `json:"option,omitempty"`
}

// OptionView is one answer option as presented to the player.
type OptionView struct {
	Label  string `json:"label"`
	Text   string `json:"text"`
	Hidden bool   `json:"hidden"`
}

// LadderRung is one prize level as presented to the player.
type LadderRung struct {
	Number  int    `json:"number"`
	Prize   string `json:"prize"`
	Safe    bool   `json:"safe"`
	Current bool   `json:"current"`
}

// GameView is the player-facing projection of a session. It never exposes the
// correct answer before the game is lost.
type GameView struct {
	GameID           string            `json:"gameId"`
	Phase            Phase             `json:"phase"`
	Outcome          Outcome           `json:"outcome,omitempty"`
	QuestionNumber   int               `json:"questionNumber"`
	QuestionCount    int               `json:"questionCount"`
	Category         string            `json:"category,omitempty"`
	Prompt           string            `json:"prompt,omitempty"`
	Options          []OptionView      `json:"options,omitempty"`
	PlayingFor       string            `json:"playingFor,omitempty"`
	WonAmount        string            `json:"wonAmount"`
	SelectedAnswer   *int              `json:"selectedAnswer,omitempty"`
	FinalAnswer      *int              `json:"finalAnswer,omitempty"`
	AwaitingAdvance  bool              `json:"awaitingAdvance"`
	RevealedAnswer   *int              `json:"revealedAnswer,omitempty"`
	RevealedText     string            `json:"revealedText,omitempty"`
	Lifelines        map[Lifeline]bool `json:"lifelines"`
	AudienceResults  []int             `json:"audienceResults,omitempty"`
	FriendSuggestion *int              `json:"friendSuggestion,omitempty"`
	Ladder           []LadderRung      `json:"ladder"`
}
