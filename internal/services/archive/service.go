package archive

import (
	"context"
	"errors"

	"github.com/lverdier/defiparty/internal/models"
	historyRepo "github.com/lverdier/defiparty/internal/repositories/history"
	sessionRepo "github.com/lverdier/defiparty/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new archive service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		config: cfg,
	}, nil
}

// FinalizeSession writes the finalize fields to the session document and
// appends one history record. The status transition to finished happened
// already (turn engine); this flow never rolls it back, and the history
// append is keyed by session id so retries are no-ops.
func (s *service) FinalizeSession(ctx context.Context, input *FinalizeSessionInput) (*FinalizeSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrSessionNotFound
	}

	sess, err := s.config.SessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if sess.Status != models.SessionStatusFinished {
		return nil, ErrSessionNotFinished
	}

	winner, loser := standings(sess.Roster)

	needsSave := false
	if sess.WinnerName == "" {
		sess.WinnerName = winner.Name
		sess.LoserName = loser.Name
		needsSave = true
	}
	if sess.EndedAt == nil {
		endedAt := models.NewTimestamp(s.config.Clock.Now())
		sess.EndedAt = &endedAt
		needsSave = true
	}

	if needsSave {
		if err := s.config.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
			Session: sess,
		}); err != nil {
			return nil, err
		}
	}

	record := &models.HistoryRecord{
		SessionID:       sess.ID,
		WinnerName:      sess.WinnerName,
		LoserName:       sess.LoserName,
		RoundsPlayed:    sess.RoundsCompleted,
		PlayerCount:     len(sess.Roster),
		DifficultyLabel: difficultyLabel(sess.Settings),
		PlayedAt:        *sess.EndedAt,
	}

	appended, err := s.config.HistoryRepo.AppendRecord(ctx, &historyRepo.AppendRecordInput{
		Record: record,
	})
	if err != nil {
		return nil, err
	}

	return &FinalizeSessionOutput{
		Record:   record,
		Appended: appended.Appended,
	}, nil
}

// GetHistory lists archived games, newest first
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	out, err := s.config.HistoryRepo.ListRecords(ctx, &historyRepo.ListRecordsInput{})
	if err != nil {
		return nil, err
	}

	return &GetHistoryOutput{Records: out.Records}, nil
}

// standings returns the winner and loser by score; ties go to the earlier
// roster position.
func standings(roster []*models.Player) (winner, loser *models.Player) {
	winner = roster[0]
	loser = roster[0]
	for _, player := range roster[1:] {
		if player.Score > winner.Score {
			winner = player
		}
		if player.Score < loser.Score {
			loser = player
		}
	}
	return winner, loser
}

func difficultyLabel(settings models.Settings) string {
	label := "Classique"
	if settings.ProgressiveMode {
		label = "Progressif"
	}
	if settings.AlcoholMode {
		label += " + alcool"
	}
	return label
}
