package game

import (
	"context"

	"github.com/lverdier/defiparty/internal/models"
	sessionRepo "github.com/lverdier/defiparty/internal/repositories/session"
	"github.com/lverdier/defiparty/internal/services/archive"
)

// AdvanceTurn applies a finished turn. This is the only operation that
// increments the turn counter, so every other gated write serializes
// against it.
func (s *service) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error) {
	var (
		roundCompleted bool
		finished       bool
		penaltyPhrase  string
	)

	sess, err := s.withCounterGate(ctx, input.SessionID, func(sess *models.Session) error {
		// Recomputed from scratch on a gate retry
		roundCompleted = false
		finished = false
		penaltyPhrase = ""

		if sess.Status != models.SessionStatusInProgress {
			return ErrInvalidState
		}
		player := sess.FindPlayer(input.PlayerID)
		if player == nil {
			return ErrPlayerNotFound
		}
		if sess.CurrentTurnPlayerID != input.PlayerID {
			return ErrNotPlayersTurn
		}

		if input.Outcome == TurnOutcomeFailed {
			difficulty := 1
			if sess.CurrentDare != nil {
				difficulty = sess.CurrentDare.Difficulty
			}
			penaltyPhrase = s.config.PenaltyPicker.Pick(difficulty, sess.Settings.AlcoholMode)
		}

		player.Score += input.ScoreDelta
		sess.PlayersPlayedThisRound++
		if sess.PlayersPlayedThisRound >= sess.NonPausedCount() {
			sess.PlayersPlayedThisRound = 0
			sess.RoundsCompleted++
			roundCompleted = true
		}
		sess.TurnCounter++

		if sess.RoundsCompleted >= sess.Settings.RoundsTotal {
			finished = true
			sess.Status = models.SessionStatusFinished
			endedAt := models.NewTimestamp(s.config.Clock.Now())
			sess.EndedAt = &endedAt
			sess.CurrentTurnPlayerID = ""
			sess.CurrentDare = nil
			return nil
		}

		sess.CurrentTurnPlayerID = sess.NextNonPausedAfter(input.PlayerID)
		sess.CurrentDare = input.NextDare
		return nil
	})
	if err != nil {
		return nil, err
	}

	output := &AdvanceTurnOutput{
		Session:             sess,
		RoundCompleted:      roundCompleted,
		Finished:            finished,
		Penalty:             penaltyPhrase,
		NextDifficultyFloor: difficultyFloor(sess),
	}

	if finished {
		// Archival is fire-and-settle: the session is already finished and
		// saved, a failure here just leaves the record for a later retry.
		_, archiveErr := s.config.ArchiveService.FinalizeSession(ctx, &archive.FinalizeSessionInput{
			SessionID: sess.ID,
		})
		if archiveErr != nil {
			output.ArchivePending = true
		}
	}

	return output, nil
}

// difficultyFloor returns the minimum dare difficulty for the next draw.
// Progressive mode raises it by one per completed round, capped at
// MaxDifficulty; otherwise it stays at 1.
func difficultyFloor(sess *models.Session) int {
	if !sess.Settings.ProgressiveMode {
		return 1
	}
	floor := 1 + sess.RoundsCompleted
	if floor > MaxDifficulty {
		return MaxDifficulty
	}
	return floor
}

// UseJoker spends a joker. The decrement is atomic and fail-closed in the
// store, so two devices racing on the last joker cannot both win.
func (s *service) UseJoker(ctx context.Context, input *UseJokerInput) (*UseJokerOutput, error) {
	if err := s.checkActionable(ctx, input.SessionID, input.PlayerID); err != nil {
		return nil, err
	}

	out, err := s.config.SessionRepo.IncrementField(ctx, &sessionRepo.IncrementFieldInput{
		SessionID: input.SessionID,
		Field:     sessionRepo.PlayerActionField(input.PlayerID, sessionRepo.ActionJokers),
		Delta:     -1,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &UseJokerOutput{
		JokersRemaining: int(out.NewValue),
	}, nil
}

// UseReroll spends a reroll. The caller is expected to draw a replacement
// dare and seat it with SetCurrentDare.
func (s *service) UseReroll(ctx context.Context, input *UseRerollInput) (*UseRerollOutput, error) {
	if err := s.checkActionable(ctx, input.SessionID, input.PlayerID); err != nil {
		return nil, err
	}

	out, err := s.config.SessionRepo.IncrementField(ctx, &sessionRepo.IncrementFieldInput{
		SessionID: input.SessionID,
		Field:     sessionRepo.PlayerActionField(input.PlayerID, sessionRepo.ActionRerolls),
		Delta:     -1,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	return &UseRerollOutput{
		RerollsRemaining: int(out.NewValue),
		NeedsNewDare:     true,
	}, nil
}

// UseExchange spends an exchange and substitutes the current dare's
// category. The counter decrement is atomic; the category rewrite then goes
// through the gate because it touches the shared document.
func (s *service) UseExchange(ctx context.Context, input *UseExchangeInput) (*UseExchangeOutput, error) {
	if err := s.checkActionable(ctx, input.SessionID, input.PlayerID); err != nil {
		return nil, err
	}

	out, err := s.config.SessionRepo.IncrementField(ctx, &sessionRepo.IncrementFieldInput{
		SessionID: input.SessionID,
		Field:     sessionRepo.PlayerActionField(input.PlayerID, sessionRepo.ActionExchange),
		Delta:     -1,
	})
	if err != nil {
		return nil, mapRepoError(err)
	}

	sess, err := s.withCounterGate(ctx, input.SessionID, func(sess *models.Session) error {
		if sess.Status != models.SessionStatusInProgress {
			return ErrInvalidState
		}
		if sess.CurrentDare == nil {
			return ErrNoCurrentDare
		}
		sess.CurrentDare.Category = input.TargetCategory
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UseExchangeOutput{
		ExchangesRemaining: int(out.NewValue),
		Session:            sess,
	}, nil
}

// checkActionable verifies the session is in progress and the player is on
// the roster before an action-economy spend.
func (s *service) checkActionable(ctx context.Context, sessionID, playerID string) error {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Status != models.SessionStatusInProgress {
		return ErrInvalidState
	}
	if sess.FindPlayer(playerID) == nil {
		return ErrPlayerNotFound
	}
	return nil
}

// SwapPlayers exchanges two roster positions. The swap is a lifetime action
// and consumes it for both players at once.
func (s *service) SwapPlayers(ctx context.Context, input *SwapPlayersInput) (*SwapPlayersOutput, error) {
	if input.Player1ID == input.Player2ID {
		return nil, ErrInvalidState
	}

	sess, err := s.withCounterGate(ctx, input.SessionID, func(sess *models.Session) error {
		if sess.Status != models.SessionStatusInProgress {
			return ErrInvalidState
		}

		idx1, idx2 := -1, -1
		for i, p := range sess.Roster {
			switch p.ID {
			case input.Player1ID:
				idx1 = i
			case input.Player2ID:
				idx2 = i
			}
		}
		if idx1 == -1 || idx2 == -1 {
			return ErrPlayerNotFound
		}
		if sess.SwapUsedBy(input.Player1ID) || sess.SwapUsedBy(input.Player2ID) {
			return ErrSwapAlreadyUsed
		}

		sess.Roster[idx1], sess.Roster[idx2] = sess.Roster[idx2], sess.Roster[idx1]
		sess.SwapUsedByPlayerIDs = append(sess.SwapUsedByPlayerIDs, input.Player1ID, input.Player2ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SwapPlayersOutput{Session: sess}, nil
}

// PausePlayer takes a player out of rotation. If it is their turn the
// pointer moves on without counting a played turn.
func (s *service) PausePlayer(ctx context.Context, input *PausePlayerInput) (*PausePlayerOutput, error) {
	sess, err := s.withCounterGate(ctx, input.SessionID, func(sess *models.Session) error {
		if sess.Status != models.SessionStatusInProgress {
			return ErrInvalidState
		}
		player := sess.FindPlayer(input.PlayerID)
		if player == nil {
			return ErrPlayerNotFound
		}
		if player.IsPaused {
			return nil
		}
		if sess.NonPausedCount() <= 1 {
			return ErrLastActivePlayer
		}

		player.IsPaused = true
		if sess.CurrentTurnPlayerID == input.PlayerID {
			sess.CurrentTurnPlayerID = sess.NextNonPausedAfter(input.PlayerID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PausePlayerOutput{Session: sess}, nil
}

// ResumePlayer puts a paused player back into rotation. Their position in
// the turn order is unchanged; they simply stop being skipped.
func (s *service) ResumePlayer(ctx context.Context, input *ResumePlayerInput) (*ResumePlayerOutput, error) {
	sess, err := s.withCounterGate(ctx, input.SessionID, func(sess *models.Session) error {
		if sess.Status != models.SessionStatusInProgress {
			return ErrInvalidState
		}
		player := sess.FindPlayer(input.PlayerID)
		if player == nil {
			return ErrPlayerNotFound
		}
		player.IsPaused = false
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ResumePlayerOutput{Session: sess}, nil
}

// UseAccompaniment spends one side of a Mentor/Élève duo bonus. When the
// player sits in several duos the first eligible one in creation order is
// spent.
func (s *service) UseAccompaniment(ctx context.Context, input *UseAccompanimentInput) (*UseAccompanimentOutput, error) {
	var spent *models.ActiveDuo

	sess, err := s.withCounterGate(ctx, input.SessionID, func(sess *models.Session) error {
		spent = nil

		if sess.Status != models.SessionStatusInProgress {
			return ErrInvalidState
		}
		if sess.FindPlayer(input.PlayerID) == nil {
			return ErrPlayerNotFound
		}

		inAnyDuo := false
		for _, d := range sess.ActiveDuos {
			switch input.PlayerID {
			case d.MentorPlayerID:
				inAnyDuo = true
				partner := sess.FindPlayer(d.ElevePlayerID)
				if d.MentorUsedAccompagnement || partner == nil || partner.IsPaused {
					continue
				}
				d.MentorUsedAccompagnement = true
				spent = d
				return nil
			case d.ElevePlayerID:
				inAnyDuo = true
				partner := sess.FindPlayer(d.MentorPlayerID)
				if d.EleveUsedAccompagnement || partner == nil || partner.IsPaused {
					continue
				}
				d.EleveUsedAccompagnement = true
				spent = d
				return nil
			}
		}

		if inAnyDuo {
			return ErrActionExhausted
		}
		return ErrNoActiveDuo
	})
	if err != nil {
		return nil, err
	}

	return &UseAccompanimentOutput{
		Session:        sess,
		LinkID:         spent.LinkID,
		MentorPlayerID: spent.MentorPlayerID,
		ElevePlayerID:  spent.ElevePlayerID,
	}, nil
}
