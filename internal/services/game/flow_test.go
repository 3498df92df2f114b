package game

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/lverdier/defiparty/internal/common/clock"
	"github.com/lverdier/defiparty/internal/common/uuid"
	"github.com/lverdier/defiparty/internal/models"
	"github.com/lverdier/defiparty/internal/penalty"
	duoRepo "github.com/lverdier/defiparty/internal/repositories/duo"
	historyRepo "github.com/lverdier/defiparty/internal/repositories/history"
	sessionRepo "github.com/lverdier/defiparty/internal/repositories/session"
	archiveService "github.com/lverdier/defiparty/internal/services/archive"
	duoService "github.com/lverdier/defiparty/internal/services/duo"
	lobbyService "github.com/lverdier/defiparty/internal/services/lobby"
)

// GameFlowTestSuite plays whole games against real repositories on
// miniredis, lobby to archive.
type GameFlowTestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	client   *redis.Client
	sessions sessionRepo.Repository
	lobby    lobbyService.Service
	service  Service
	archive  archiveService.Service
	history  historyRepo.Repository
	ctx      context.Context
}

func (s *GameFlowTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})
	s.ctx = context.Background()

	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	history, err := historyRepo.NewRedis(&historyRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.history = history
	duos, err := duoRepo.NewRedis(&duoRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	clk := clock.New()

	lobby, err := lobbyService.New(&lobbyService.Config{
		Clock:         clk,
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)
	s.lobby = lobby

	archive, err := archiveService.New(&archiveService.Config{
		SessionRepo: sessions,
		HistoryRepo: history,
		Clock:       clk,
	})
	s.Require().NoError(err)
	s.archive = archive

	svc, err := New(&Config{
		SessionRepo:    sessions,
		DuoRepo:        duos,
		DuoDetector:    duoService.New(),
		ArchiveService: archive,
		PenaltyPicker:  penalty.New(&penalty.Config{Seed: 7}),
		Clock:          clk,
	})
	s.Require().NoError(err)
	s.service = svc

	s.sessions = sessions
}

func (s *GameFlowTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestGameFlowTestSuite(t *testing.T) {
	suite.Run(t, new(GameFlowTestSuite))
}

// TestFullGame runs the canonical two-round three-player game: A, B, C
// each play twice, then the game finishes and archives exactly once.
func (s *GameFlowTestSuite) TestFullGame() {
	assembled, err := s.lobby.AssembleSession(s.ctx, &lobbyService.AssembleSessionInput{
		Host: lobbyService.PlayerSeed{Name: "Alice"},
		Players: []lobbyService.PlayerSeed{
			{Name: "Bob"},
			{Name: "Chloé"},
		},
		Settings: models.Settings{RoundsTotal: 2},
	})
	s.Require().NoError(err)
	sess := assembled.Session
	s.Require().Len(sess.Roster, 3)

	s.Require().NoError(s.sessions.SaveSession(s.ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	}))

	started, err := s.service.StartSession(s.ctx, &StartSessionInput{
		SessionID: sess.ID,
		FirstDare: &models.Dare{ID: "dare-1", Text: "Chante", Category: "classique", Difficulty: 1},
	})
	s.Require().NoError(err)
	s.Equal(sess.Roster[0].ID, started.Session.CurrentTurnPlayerID)

	order := []string{sess.Roster[0].ID, sess.Roster[1].ID, sess.Roster[2].ID}
	scores := []int{3, 1, 2}

	// Round one
	for i, playerID := range order {
		out, err := s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{
			SessionID:  sess.ID,
			PlayerID:   playerID,
			ScoreDelta: scores[i],
			Outcome:    TurnOutcomeCompleted,
		})
		s.Require().NoError(err)
		s.False(out.Finished)
	}

	mid, err := s.service.GetSession(s.ctx, &GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(1, mid.Session.RoundsCompleted)
	s.Equal(0, mid.Session.PlayersPlayedThisRound)
	s.Equal(order[0], mid.Session.CurrentTurnPlayerID)
	s.Equal(int64(3), mid.Session.TurnCounter)

	// Round two
	var final *AdvanceTurnOutput
	for i, playerID := range order {
		final, err = s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{
			SessionID:  sess.ID,
			PlayerID:   playerID,
			ScoreDelta: scores[i],
			Outcome:    TurnOutcomeCompleted,
		})
		s.Require().NoError(err)
	}

	s.True(final.Finished)
	s.False(final.ArchivePending)
	s.Equal(models.SessionStatusFinished, final.Session.Status)

	// Archival already ran; a retry appends nothing new
	retry, err := s.archive.FinalizeSession(s.ctx, &archiveService.FinalizeSessionInput{
		SessionID: sess.ID,
	})
	s.Require().NoError(err)
	s.False(retry.Appended)
	s.Equal("Alice", retry.Record.WinnerName)
	s.Equal("Bob", retry.Record.LoserName)

	records, err := s.history.ListRecords(s.ctx, &historyRepo.ListRecordsInput{})
	s.Require().NoError(err)
	s.Require().Len(records.Records, 1)
	s.Equal(sess.ID, records.Records[0].SessionID)
}

// TestJokerEconomyOverRedis exhausts the single default joker through the
// real Lua increment path.
func (s *GameFlowTestSuite) TestJokerEconomyOverRedis() {
	assembled, err := s.lobby.AssembleSession(s.ctx, &lobbyService.AssembleSessionInput{
		Host:     lobbyService.PlayerSeed{Name: "Alice"},
		Players:  []lobbyService.PlayerSeed{{Name: "Bob"}},
		Settings: models.Settings{RoundsTotal: 3},
	})
	s.Require().NoError(err)
	sess := assembled.Session

	s.Require().NoError(s.sessions.SaveSession(s.ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	}))
	_, err = s.service.StartSession(s.ctx, &StartSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)

	playerID := sess.Roster[0].ID

	out, err := s.service.UseJoker(s.ctx, &UseJokerInput{SessionID: sess.ID, PlayerID: playerID})
	s.Require().NoError(err)
	s.Equal(0, out.JokersRemaining)

	_, err = s.service.UseJoker(s.ctx, &UseJokerInput{SessionID: sess.ID, PlayerID: playerID})
	s.Require().ErrorIs(err, ErrActionExhausted)

	// The refused spend left the stored counter untouched
	after, err := s.service.GetSession(s.ctx, &GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Equal(0, after.Session.FindPlayer(playerID).JokersLeft)
}
