package app

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"millionaire-service/internal/domain"
	"millionaire-service/internal/game"
)

// SessionRepository abstracts how game sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	Get(ctx context.Context, gameID string) (domain.GameSession, error)
	Save(ctx context.Context, session domain.GameSession) error
	Delete(ctx context.Context, gameID string) error
}

// QuizRepository loads question banks (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
}

// Scheduler runs f once after d. time.AfterFunc satisfies it through TimerScheduler.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimerScheduler schedules work on the runtime timer.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Options tune a GameService. Zero values pick production defaults.
type Options struct {
	QuizID       string
	AdvanceDelay time.Duration
	Rand         game.Randomizer
	Scheduler    Scheduler
	Now          func() time.Time
	NewID        func() string
	Logger       *zap.Logger
}

// GameService contains the game use cases.
type GameService struct {
	sessions  SessionRepository
	quizzes   QuizRepository
	quizID    string
	delay     time.Duration
	scheduler Scheduler
	now       func() time.Time
	newID     func() string
	log       *zap.Logger

	rndMu sync.Mutex
	rnd   game.Randomizer

	mu          sync.Mutex
	locks       map[string]*sync.Mutex
	subscribers map[string]map[chan domain.GameView]struct{}
}

func NewGameService(sessions SessionRepository, quizzes QuizRepository, opts Options) *GameService {
	if opts.QuizID == "" {
		opts.QuizID = "classic"
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &GameService{
		sessions:    sessions,
		quizzes:     quizzes,
		quizID:      opts.QuizID,
		delay:       opts.AdvanceDelay,
		scheduler:   opts.Scheduler,
		now:         opts.Now,
		newID:       opts.NewID,
		log:         opts.Logger,
		rnd:         opts.Rand,
		locks:       make(map[string]*sync.Mutex),
		subscribers: make(map[string]map[chan domain.GameView]struct{}),
	}
}

// Start begins a game. An empty gameID creates a new session; an existing one
// is replayed from the first question.
func (s *GameService) Start(ctx context.Context, gameID string) (domain.GameSession, error) {
	if gameID == "" {
		gameID = s.newID()
	}
	unlock := s.lock(gameID)
	defer unlock()

	session, err := s.sessions.Get(ctx, gameID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		session = domain.NewGameSession(gameID, s.quizID, s.now())
	} else if err != nil {
		return domain.GameSession{}, err
	}

	// Users cannot start unknown quizzes.
	quiz, err := s.quizzes.GetQuiz(ctx, session.QuizID)
	if err != nil {
		return domain.GameSession{}, err
	}
	return s.applyLocked(ctx, quiz, session, domain.Command{Type: domain.CommandStart})
}

// Handle applies a player command to a game.
func (s *GameService) Handle(ctx context.Context, gameID string, cmd domain.Command) (domain.GameSession, error) {
	unlock := s.lock(gameID)
	defer unlock()

	session, err := s.sessions.Get(ctx, gameID)
	if err != nil {
		return domain.GameSession{}, err
	}
	quiz, err := s.quizzes.GetQuiz(ctx, session.QuizID)
	if err != nil {
		return domain.GameSession{}, err
	}
	return s.applyLocked(ctx, quiz, session, cmd)
}

// Get returns the stored session.
func (s *GameService) Get(ctx context.Context, gameID string) (domain.GameSession, error) {
	return s.sessions.Get(ctx, gameID)
}

// View returns the player-facing projection of a game.
func (s *GameService) View(ctx context.Context, gameID string) (domain.GameView, error) {
	session, err := s.sessions.Get(ctx, gameID)
	if err != nil {
		return domain.GameView{}, err
	}
	return s.Project(ctx, session)
}

// Project renders a session against its quiz.
func (s *GameService) Project(ctx context.Context, session domain.GameSession) (domain.GameView, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, session.QuizID)
	if err != nil {
		return domain.GameView{}, err
	}
	return game.Project(quiz, session), nil
}

// ClaimWinnings marks a finished game's prize as paid out and returns its label.
func (s *GameService) ClaimWinnings(ctx context.Context, gameID string) (string, error) {
	unlock := s.lock(gameID)
	defer unlock()

	session, err := s.sessions.Get(ctx, gameID)
	if err != nil {
		return "", err
	}
	switch {
	case session.Phase != domain.PhaseFinished:
		return "", domain.ErrGameNotFinished
	case session.WinningsBanked:
		return "", domain.ErrWinningsClaimed
	case session.WonAmount == domain.ZeroPrize:
		return "", domain.ErrNothingWon
	}
	session.WinningsBanked = true
	session.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", err
	}
	return session.WonAmount, nil
}

// End discards a game and closes its subscriptions.
func (s *GameService) End(ctx context.Context, gameID string) error {
	unlock := s.lock(gameID)
	err := s.sessions.Delete(ctx, gameID)
	unlock()

	s.mu.Lock()
	for ch := range s.subscribers[gameID] {
		close(ch)
	}
	delete(s.subscribers, gameID)
	s.mu.Unlock()
	return err
}

// Subscribe returns a channel that receives a view after every change to the game.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *GameService) Subscribe(ctx context.Context, gameID string) (<-chan domain.GameView, func(), error) {
	view, err := s.View(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	ch := make(chan domain.GameView, 8)
	ch <- view

	s.mu.Lock()
	if s.subscribers[gameID] == nil {
		s.subscribers[gameID] = make(map[chan domain.GameView]struct{})
	}
	s.subscribers[gameID][ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if subs, ok := s.subscribers[gameID]; ok {
			if _, ok := subs[ch]; ok {
				delete(subs, ch)
				close(ch)
			}
		}
		s.mu.Unlock()
	}
	return ch, cancel, nil
}

// applyLocked runs one transition, persists it and schedules the pacing delay
// after a correct answer. The caller holds the game lock.
func (s *GameService) applyLocked(ctx context.Context, quiz domain.Quiz, session domain.GameSession, cmd domain.Command) (domain.GameSession, error) {
	next, err := s.apply(quiz, session, cmd)
	if err != nil {
		s.log.Debug("command rejected",
			zap.String("game", session.ID),
			zap.String("command", string(cmd.Type)),
			zap.Error(err))
		return session, err
	}

	advancePending := next.AwaitingAdvance && !session.AwaitingAdvance
	if advancePending && s.delay <= 0 {
		if next, err = s.apply(quiz, next, domain.Command{Type: domain.CommandAdvance}); err != nil {
			return session, err
		}
		advancePending = false
	}

	if err := s.sessions.Save(ctx, next); err != nil {
		return session, err
	}
	s.log.Debug("command applied",
		zap.String("game", next.ID),
		zap.String("command", string(cmd.Type)),
		zap.String("phase", string(next.Phase)),
		zap.Int("question", next.CurrentIndex+1),
		zap.String("won", next.WonAmount))
	if next.Phase == domain.PhaseFinished && session.Phase != domain.PhaseFinished {
		s.log.Info("game finished",
			zap.String("game", next.ID),
			zap.String("outcome", string(next.Outcome)),
			zap.String("won", next.WonAmount))
	}

	s.broadcast(game.Project(quiz, next))
	if advancePending {
		gameID, round, index := next.ID, next.Round, next.CurrentIndex
		s.scheduler.AfterFunc(s.delay, func() { s.advance(gameID, round, index) })
	}
	return next, nil
}

func (s *GameService) apply(quiz domain.Quiz, session domain.GameSession, cmd domain.Command) (domain.GameSession, error) {
	s.rndMu.Lock()
	defer s.rndMu.Unlock()
	return game.Apply(quiz, session, cmd, s.rnd, s.now())
}

// advance fires after the pacing delay. It only moves the question it was
// scheduled for; a replay or an ended game leaves nothing to do.
func (s *GameService) advance(gameID string, round, index int) {
	ctx := context.Background()
	unlock := s.lock(gameID)
	defer unlock()

	session, err := s.sessions.Get(ctx, gameID)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return
	}
	if err != nil {
		s.log.Warn("scheduled advance failed", zap.String("game", gameID), zap.Error(err))
		return
	}
	if session.Round != round || session.CurrentIndex != index || !session.AwaitingAdvance {
		s.log.Debug("stale advance dropped",
			zap.String("game", gameID),
			zap.Int("round", round),
			zap.Int("question", index+1))
		return
	}
	quiz, err := s.quizzes.GetQuiz(ctx, session.QuizID)
	if err == nil {
		_, err = s.applyLocked(ctx, quiz, session, domain.Command{Type: domain.CommandAdvance})
	}
	if err != nil {
		s.log.Warn("scheduled advance failed", zap.String("game", gameID), zap.Error(err))
	}
}

// lock serializes work on one game. Entries are never removed, so every
// caller for a game id shares one mutex.
func (s *GameService) lock(gameID string) func() {
	s.mu.Lock()
	l, ok := s.locks[gameID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[gameID] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

func (s *GameService) broadcast(view domain.GameView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers[view.GameID] {
		select {
		case ch <- view:
		default:
			// drop the oldest update so a slow reader never blocks a command
			select {
			case <-ch:
			default:
			}
			ch <- view
		}
	}
}
