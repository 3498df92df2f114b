package game

import (
	"context"
	"errors"

	"github.com/lverdier/defiparty/internal/models"
	duoRepo "github.com/lverdier/defiparty/internal/repositories/duo"
	sessionRepo "github.com/lverdier/defiparty/internal/repositories/session"
	duoService "github.com/lverdier/defiparty/internal/services/duo"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new turn engine
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.DuoRepo == nil {
		return nil, ErrNilDuoRepo
	}
	if cfg.DuoDetector == nil {
		return nil, ErrNilDuoDetector
	}
	if cfg.ArchiveService == nil {
		return nil, ErrNilArchiveService
	}
	if cfg.PenaltyPicker == nil {
		return nil, ErrNilPenaltyPicker
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		config: cfg,
	}, nil
}

// getSession reads a session, mapping repository errors to engine errors
func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := s.config.SessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return sess, nil
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, sessionRepo.ErrSessionNotFound):
		return ErrSessionNotFound
	case errors.Is(err, sessionRepo.ErrPlayerNotFound):
		return ErrPlayerNotFound
	case errors.Is(err, sessionRepo.ErrCounterExhausted):
		return ErrActionExhausted
	case errors.Is(err, sessionRepo.ErrStoreUnavailable):
		return ErrStoreUnavailable
	default:
		return err
	}
}

// withCounterGate runs the optimistic-concurrency protocol: read the
// session, mutate a copy, write conditionally on the turn counter read in
// step one. On a conflict the mutation is recomputed once against fresh
// state; a second conflict surfaces to the caller, never a livelock.
func (s *service) withCounterGate(ctx context.Context, sessionID string, mutate func(sess *models.Session) error) (*models.Session, error) {
	for attempt := 0; attempt < 2; attempt++ {
		sess, err := s.getSession(ctx, sessionID)
		if err != nil {
			return nil, err
		}

		expected := sess.TurnCounter
		if err := mutate(sess); err != nil {
			return nil, err
		}

		err = s.config.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
			Session:             sess,
			ExpectedTurnCounter: &expected,
		})
		if err == nil {
			return sess, nil
		}
		if !errors.Is(err, sessionRepo.ErrCounterConflict) {
			return nil, mapRepoError(err)
		}
	}

	return nil, ErrConcurrencyConflict
}

// StartSession closes the lobby. Active duos are resolved here, against
// the persisted links and the final roster; their usage flags start fresh
// every game.
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	links, err := s.config.DuoRepo.ListLinks(ctx, &duoRepo.ListLinksInput{})
	if err != nil {
		return nil, err
	}

	sess, err := s.withCounterGate(ctx, input.SessionID, func(sess *models.Session) error {
		if sess.Status != models.SessionStatusLobby {
			return ErrInvalidState
		}
		if len(sess.Roster) == 0 {
			return ErrInvalidState
		}

		detected := s.config.DuoDetector.Detect(&duoService.DetectInput{
			Roster: sess.Roster,
			Links:  links.Links,
		})
		sess.ActiveDuos = detected.Duos

		sess.Status = models.SessionStatusInProgress
		startedAt := models.NewTimestamp(s.config.Clock.Now())
		sess.StartedAt = &startedAt
		sess.CurrentTurnPlayerID = sess.FirstNonPaused()
		sess.CurrentDare = input.FirstDare
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &StartSessionOutput{Session: sess}, nil
}

// PauseSession suspends an in-progress session
func (s *service) PauseSession(ctx context.Context, input *PauseSessionInput) (*PauseSessionOutput, error) {
	sess, err := s.withCounterGate(ctx, input.SessionID, func(sess *models.Session) error {
		if sess.Status != models.SessionStatusInProgress {
			return ErrInvalidState
		}
		sess.Status = models.SessionStatusPaused
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PauseSessionOutput{Session: sess}, nil
}

// ResumeSession resumes a suspended session
func (s *service) ResumeSession(ctx context.Context, input *ResumeSessionInput) (*ResumeSessionOutput, error) {
	sess, err := s.withCounterGate(ctx, input.SessionID, func(sess *models.Session) error {
		if sess.Status != models.SessionStatusPaused {
			return ErrInvalidState
		}
		sess.Status = models.SessionStatusInProgress
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ResumeSessionOutput{Session: sess}, nil
}

// SetCurrentDare seats the active dare for the current turn
func (s *service) SetCurrentDare(ctx context.Context, input *SetCurrentDareInput) (*SetCurrentDareOutput, error) {
	if input.Dare == nil {
		return nil, ErrNoCurrentDare
	}

	sess, err := s.withCounterGate(ctx, input.SessionID, func(sess *models.Session) error {
		if sess.Status != models.SessionStatusInProgress {
			return ErrInvalidState
		}
		sess.CurrentDare = input.Dare
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SetCurrentDareOutput{Session: sess}, nil
}

// ApplyPenalty selects a penalty phrase. Pure; no session I/O.
func (s *service) ApplyPenalty(ctx context.Context, input *ApplyPenaltyInput) (*ApplyPenaltyOutput, error) {
	return &ApplyPenaltyOutput{
		Penalty: s.config.PenaltyPicker.Pick(input.Difficulty, input.AlcoholMode),
	}, nil
}

// GetSession reads the current session state
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{Session: sess}, nil
}

// WatchSession opens a snapshot subscription for the session
func (s *service) WatchSession(ctx context.Context, input *WatchSessionInput) (*WatchSessionOutput, error) {
	sub, err := s.config.SessionRepo.Subscribe(ctx, &sessionRepo.SubscribeInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &WatchSessionOutput{Subscription: sub}, nil
}
