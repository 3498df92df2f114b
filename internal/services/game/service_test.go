package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/lverdier/defiparty/internal/common/clock/mocks"
	"github.com/lverdier/defiparty/internal/models"
	"github.com/lverdier/defiparty/internal/penalty"
	duoRepo "github.com/lverdier/defiparty/internal/repositories/duo"
	duoMocks "github.com/lverdier/defiparty/internal/repositories/duo/mocks"
	sessionRepo "github.com/lverdier/defiparty/internal/repositories/session"
	sessionMocks "github.com/lverdier/defiparty/internal/repositories/session/mocks"
	"github.com/lverdier/defiparty/internal/services/archive"
	archiveMocks "github.com/lverdier/defiparty/internal/services/archive/mocks"
	duoService "github.com/lverdier/defiparty/internal/services/duo"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockDuoRepo     *duoMocks.MockRepository
	mockArchive     *archiveMocks.MockService
	mockClock       *clockMocks.MockClock
	service         Service
	ctx             context.Context

	testTime time.Time
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockDuoRepo = duoMocks.NewMockRepository(s.mockCtrl)
	s.mockArchive = archiveMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 6, 1, 21, 30, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		SessionRepo:    s.mockSessionRepo,
		DuoRepo:        s.mockDuoRepo,
		DuoDetector:    duoService.New(),
		ArchiveService: s.mockArchive,
		PenaltyPicker:  penalty.New(&penalty.Config{Seed: 42}),
		Clock:          s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// inProgressSession is a three-player game in its first round with
// player-a on turn.
func (s *GameServiceTestSuite) inProgressSession() *models.Session {
	return &models.Session{
		ID:           "test-session-id",
		Status:       models.SessionStatusInProgress,
		HostPlayerID: "player-a",
		Settings: models.Settings{
			RoundsTotal: 2,
		},
		Roster: []*models.Player{
			{ID: "player-a", Name: "Alice", JokersLeft: 1, RerollsLeft: 1, ExchangeLeft: 1},
			{ID: "player-b", Name: "Bob", JokersLeft: 1, RerollsLeft: 1, ExchangeLeft: 1},
			{ID: "player-c", Name: "Chloé", JokersLeft: 1, RerollsLeft: 1, ExchangeLeft: 1},
		},
		CurrentTurnPlayerID: "player-a",
		CurrentDare: &models.Dare{
			ID:         "dare-1",
			Text:       "Imite ton voisin de droite",
			Category:   "mime",
			Difficulty: 2,
		},
		TurnCounter: 3,
	}
}

func (s *GameServiceTestSuite) expectGet(sess *models.Session) {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: sess.ID}).
		Return(sess, nil)
}

func (s *GameServiceTestSuite) TestStartSessionResolvesDuosAndSeatsFirstPlayer() {
	sess := s.inProgressSession()
	sess.Status = models.SessionStatusLobby
	sess.CurrentTurnPlayerID = ""
	sess.CurrentDare = nil
	sess.TurnCounter = 0
	sess.Roster[0].ProfileID = "profile-alice"
	sess.Roster[2].ProfileID = "profile-chloe"

	s.mockDuoRepo.EXPECT().
		ListLinks(s.ctx, gomock.Any()).
		Return(&duoRepo.ListLinksOutput{
			Links: []*models.MentorEleveLink{
				{ID: "link-1", MentorProfileID: "profile-alice", EleveProfileID: "profile-chloe"},
			},
		}, nil)

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Require().NotNil(input.ExpectedTurnCounter)
			s.Equal(int64(0), *input.ExpectedTurnCounter)
			s.Equal(models.SessionStatusInProgress, input.Session.Status)
			s.Equal("player-a", input.Session.CurrentTurnPlayerID)
			s.Require().NotNil(input.Session.StartedAt)
			s.True(input.Session.StartedAt.Equal(s.testTime))
			s.Require().Len(input.Session.ActiveDuos, 1)
			s.Equal("link-1", input.Session.ActiveDuos[0].LinkID)
			s.Equal("player-a", input.Session.ActiveDuos[0].MentorPlayerID)
			s.Equal("player-c", input.Session.ActiveDuos[0].ElevePlayerID)
			return nil
		})

	out, err := s.service.StartSession(s.ctx, &StartSessionInput{
		SessionID: "test-session-id",
		FirstDare: &models.Dare{ID: "dare-1", Text: "Fais deviner un film en mimant", Category: "mime", Difficulty: 1},
	})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusInProgress, out.Session.Status)
	s.Require().NotNil(out.Session.CurrentDare)
	s.Equal("dare-1", out.Session.CurrentDare.ID)
}

func (s *GameServiceTestSuite) TestStartSessionRejectsNonLobby() {
	sess := s.inProgressSession()

	s.mockDuoRepo.EXPECT().ListLinks(s.ctx, gomock.Any()).Return(&duoRepo.ListLinksOutput{}, nil)
	s.expectGet(sess)

	_, err := s.service.StartSession(s.ctx, &StartSessionInput{SessionID: "test-session-id"})
	s.Require().ErrorIs(err, ErrInvalidState)
}

func (s *GameServiceTestSuite) TestAdvanceTurnRotatesToNextPlayer() {
	sess := s.inProgressSession()

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Require().NotNil(input.ExpectedTurnCounter)
			s.Equal(int64(3), *input.ExpectedTurnCounter)
			s.Equal(int64(4), input.Session.TurnCounter)
			s.Equal("player-b", input.Session.CurrentTurnPlayerID)
			s.Equal(1, input.Session.PlayersPlayedThisRound)
			s.Equal(1, input.Session.FindPlayer("player-a").Score)
			return nil
		})

	out, err := s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{
		SessionID:  "test-session-id",
		PlayerID:   "player-a",
		ScoreDelta: 1,
		Outcome:    TurnOutcomeCompleted,
		NextDare:   &models.Dare{ID: "dare-2", Category: "action", Difficulty: 1},
	})
	s.Require().NoError(err)
	s.False(out.RoundCompleted)
	s.False(out.Finished)
	s.Empty(out.Penalty)
	s.Equal(1, out.NextDifficultyFloor)
	s.Equal("dare-2", out.Session.CurrentDare.ID)
}

func (s *GameServiceTestSuite) TestAdvanceTurnFailedOutcomeCarriesPenalty() {
	sess := s.inProgressSession()
	sess.Settings.AlcoholMode = true
	sess.CurrentDare.Difficulty = 3

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{
		SessionID: "test-session-id",
		PlayerID:  "player-a",
		Outcome:   TurnOutcomeFailed,
	})
	s.Require().NoError(err)
	s.Equal("Bois trois gorgées", out.Penalty)
}

func (s *GameServiceTestSuite) TestAdvanceTurnCompletesRound() {
	sess := s.inProgressSession()
	sess.Settings.ProgressiveMode = true
	sess.CurrentTurnPlayerID = "player-c"
	sess.PlayersPlayedThisRound = 2

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{
		SessionID: "test-session-id",
		PlayerID:  "player-c",
		Outcome:   TurnOutcomeCompleted,
	})
	s.Require().NoError(err)
	s.True(out.RoundCompleted)
	s.False(out.Finished)
	s.Equal(1, out.Session.RoundsCompleted)
	s.Equal(0, out.Session.PlayersPlayedThisRound)
	s.Equal("player-a", out.Session.CurrentTurnPlayerID)
	s.Equal(2, out.NextDifficultyFloor)
}

func (s *GameServiceTestSuite) TestAdvanceTurnFinishesGameAndArchives() {
	sess := s.inProgressSession()
	sess.CurrentTurnPlayerID = "player-c"
	sess.RoundsCompleted = 1
	sess.PlayersPlayedThisRound = 2

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal(models.SessionStatusFinished, input.Session.Status)
			s.Empty(input.Session.CurrentTurnPlayerID)
			s.Nil(input.Session.CurrentDare)
			s.Require().NotNil(input.Session.EndedAt)
			s.True(input.Session.EndedAt.Equal(s.testTime))
			return nil
		})
	s.mockArchive.EXPECT().
		FinalizeSession(s.ctx, &archive.FinalizeSessionInput{SessionID: "test-session-id"}).
		Return(&archive.FinalizeSessionOutput{Appended: true}, nil)

	out, err := s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{
		SessionID: "test-session-id",
		PlayerID:  "player-c",
		Outcome:   TurnOutcomeCompleted,
	})
	s.Require().NoError(err)
	s.True(out.Finished)
	s.True(out.RoundCompleted)
	s.False(out.ArchivePending)
}

func (s *GameServiceTestSuite) TestAdvanceTurnArchiveFailureFlagsPending() {
	sess := s.inProgressSession()
	sess.CurrentTurnPlayerID = "player-c"
	sess.RoundsCompleted = 1
	sess.PlayersPlayedThisRound = 2

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)
	s.mockArchive.EXPECT().
		FinalizeSession(s.ctx, gomock.Any()).
		Return(nil, archive.ErrSessionNotFound)

	out, err := s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{
		SessionID: "test-session-id",
		PlayerID:  "player-c",
		Outcome:   TurnOutcomeCompleted,
	})
	s.Require().NoError(err)
	s.True(out.Finished)
	s.True(out.ArchivePending)
}

func (s *GameServiceTestSuite) TestAdvanceTurnRejectsOutOfTurnPlayer() {
	sess := s.inProgressSession()

	s.expectGet(sess)

	_, err := s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{
		SessionID: "test-session-id",
		PlayerID:  "player-b",
		Outcome:   TurnOutcomeCompleted,
	})
	s.Require().ErrorIs(err, ErrNotPlayersTurn)
}

func (s *GameServiceTestSuite) TestAdvanceTurnRetriesOnceOnConflict() {
	// Another device advanced the counter between our read and write. The
	// retry recomputes against fresh state and commits.
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sessionRepo.GetSessionInput) (*models.Session, error) {
			return s.inProgressSession(), nil
		}).
		Times(2)

	gomock.InOrder(
		s.mockSessionRepo.EXPECT().
			SaveSession(s.ctx, gomock.Any()).
			Return(sessionRepo.ErrCounterConflict),
		s.mockSessionRepo.EXPECT().
			SaveSession(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
				s.Equal(int64(3), *input.ExpectedTurnCounter)
				s.Equal(int64(4), input.Session.TurnCounter)
				s.Equal(1, input.Session.PlayersPlayedThisRound)
				return nil
			}),
	)

	out, err := s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{
		SessionID: "test-session-id",
		PlayerID:  "player-a",
		Outcome:   TurnOutcomeCompleted,
	})
	s.Require().NoError(err)
	s.Equal(int64(4), out.Session.TurnCounter)
}

func (s *GameServiceTestSuite) TestAdvanceTurnSurfacesRepeatedConflict() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sessionRepo.GetSessionInput) (*models.Session, error) {
			return s.inProgressSession(), nil
		}).
		Times(2)
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		Return(sessionRepo.ErrCounterConflict).
		Times(2)

	_, err := s.service.AdvanceTurn(s.ctx, &AdvanceTurnInput{
		SessionID: "test-session-id",
		PlayerID:  "player-a",
		Outcome:   TurnOutcomeCompleted,
	})
	s.Require().ErrorIs(err, ErrConcurrencyConflict)
}

func (s *GameServiceTestSuite) TestUseJoker() {
	s.expectGet(s.inProgressSession())
	s.mockSessionRepo.EXPECT().
		IncrementField(s.ctx, &sessionRepo.IncrementFieldInput{
			SessionID: "test-session-id",
			Field:     "player:player-a:jokersLeft",
			Delta:     -1,
		}).
		Return(&sessionRepo.IncrementFieldOutput{NewValue: 0}, nil)

	out, err := s.service.UseJoker(s.ctx, &UseJokerInput{
		SessionID: "test-session-id",
		PlayerID:  "player-a",
	})
	s.Require().NoError(err)
	s.Equal(0, out.JokersRemaining)
}

func (s *GameServiceTestSuite) TestUseJokerExhausted() {
	s.expectGet(s.inProgressSession())
	s.mockSessionRepo.EXPECT().
		IncrementField(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrCounterExhausted)

	_, err := s.service.UseJoker(s.ctx, &UseJokerInput{
		SessionID: "test-session-id",
		PlayerID:  "player-a",
	})
	s.Require().ErrorIs(err, ErrActionExhausted)
}

func (s *GameServiceTestSuite) TestUseRerollRequestsReplacementDare() {
	s.expectGet(s.inProgressSession())
	s.mockSessionRepo.EXPECT().
		IncrementField(s.ctx, &sessionRepo.IncrementFieldInput{
			SessionID: "test-session-id",
			Field:     "player:player-b:rerollsLeft",
			Delta:     -1,
		}).
		Return(&sessionRepo.IncrementFieldOutput{NewValue: 0}, nil)

	out, err := s.service.UseReroll(s.ctx, &UseRerollInput{
		SessionID: "test-session-id",
		PlayerID:  "player-b",
	})
	s.Require().NoError(err)
	s.True(out.NeedsNewDare)
	s.Equal(0, out.RerollsRemaining)
}

func (s *GameServiceTestSuite) TestUseExchangeRewritesCategory() {
	sess := s.inProgressSession()

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().
		IncrementField(s.ctx, &sessionRepo.IncrementFieldInput{
			SessionID: "test-session-id",
			Field:     "player:player-a:exchangeLeft",
			Delta:     -1,
		}).
		Return(&sessionRepo.IncrementFieldOutput{NewValue: 0}, nil)
	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal("action", input.Session.CurrentDare.Category)
			s.Equal(int64(3), input.Session.TurnCounter)
			return nil
		})

	out, err := s.service.UseExchange(s.ctx, &UseExchangeInput{
		SessionID:      "test-session-id",
		PlayerID:       "player-a",
		TargetCategory: "action",
	})
	s.Require().NoError(err)
	s.Equal(0, out.ExchangesRemaining)
	s.Equal("action", out.Session.CurrentDare.Category)
}

func (s *GameServiceTestSuite) TestSwapPlayersConsumesBothLifetimeSwaps() {
	sess := s.inProgressSession()

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal("player-c", input.Session.Roster[0].ID)
			s.Equal("player-a", input.Session.Roster[2].ID)
			s.Equal(int64(3), input.Session.TurnCounter)
			return nil
		})

	out, err := s.service.SwapPlayers(s.ctx, &SwapPlayersInput{
		SessionID: "test-session-id",
		Player1ID: "player-a",
		Player2ID: "player-c",
	})
	s.Require().NoError(err)
	s.True(out.Session.SwapUsedBy("player-a"))
	s.True(out.Session.SwapUsedBy("player-c"))
}

func (s *GameServiceTestSuite) TestSwapPlayersRejectsSecondAttempt() {
	sess := s.inProgressSession()
	sess.SwapUsedByPlayerIDs = []string{"player-a", "player-c"}

	s.expectGet(sess)

	_, err := s.service.SwapPlayers(s.ctx, &SwapPlayersInput{
		SessionID: "test-session-id",
		Player1ID: "player-a",
		Player2ID: "player-b",
	})
	s.Require().ErrorIs(err, ErrSwapAlreadyUsed)
}

func (s *GameServiceTestSuite) TestPausePlayerMovesTurnPointerWithoutCounting() {
	sess := s.inProgressSession()

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal("player-b", input.Session.CurrentTurnPlayerID)
			s.True(input.Session.FindPlayer("player-a").IsPaused)
			s.Equal(int64(3), input.Session.TurnCounter)
			s.Equal(0, input.Session.PlayersPlayedThisRound)
			return nil
		})

	out, err := s.service.PausePlayer(s.ctx, &PausePlayerInput{
		SessionID: "test-session-id",
		PlayerID:  "player-a",
	})
	s.Require().NoError(err)
	s.Equal("player-b", out.Session.CurrentTurnPlayerID)
}

func (s *GameServiceTestSuite) TestPausePlayerRejectsLastActive() {
	sess := s.inProgressSession()
	sess.Roster[1].IsPaused = true
	sess.Roster[2].IsPaused = true

	s.expectGet(sess)

	_, err := s.service.PausePlayer(s.ctx, &PausePlayerInput{
		SessionID: "test-session-id",
		PlayerID:  "player-a",
	})
	s.Require().ErrorIs(err, ErrLastActivePlayer)
}

func (s *GameServiceTestSuite) TestResumePlayer() {
	sess := s.inProgressSession()
	sess.Roster[2].IsPaused = true

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.ResumePlayer(s.ctx, &ResumePlayerInput{
		SessionID: "test-session-id",
		PlayerID:  "player-c",
	})
	s.Require().NoError(err)
	s.False(out.Session.FindPlayer("player-c").IsPaused)
}

func (s *GameServiceTestSuite) TestPauseAndResumeSession() {
	sess := s.inProgressSession()

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	paused, err := s.service.PauseSession(s.ctx, &PauseSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusPaused, paused.Session.Status)

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	resumed, err := s.service.ResumeSession(s.ctx, &ResumeSessionInput{SessionID: "test-session-id"})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusInProgress, resumed.Session.Status)
}

func (s *GameServiceTestSuite) TestUseAccompanimentSpendsFirstEligibleDuo() {
	sess := s.inProgressSession()
	sess.ActiveDuos = []*models.ActiveDuo{
		{LinkID: "link-1", MentorPlayerID: "player-a", ElevePlayerID: "player-b", MentorUsedAccompagnement: true},
		{LinkID: "link-2", MentorPlayerID: "player-a", ElevePlayerID: "player-c"},
	}

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.UseAccompaniment(s.ctx, &UseAccompanimentInput{
		SessionID: "test-session-id",
		PlayerID:  "player-a",
	})
	s.Require().NoError(err)
	s.Equal("link-2", out.LinkID)
	s.Equal("player-a", out.MentorPlayerID)
	s.Equal("player-c", out.ElevePlayerID)
	s.True(out.Session.ActiveDuos[1].MentorUsedAccompagnement)
	s.False(out.Session.ActiveDuos[1].EleveUsedAccompagnement)
}

func (s *GameServiceTestSuite) TestUseAccompanimentEleveSide() {
	sess := s.inProgressSession()
	sess.ActiveDuos = []*models.ActiveDuo{
		{LinkID: "link-1", MentorPlayerID: "player-a", ElevePlayerID: "player-b"},
	}

	s.expectGet(sess)
	s.mockSessionRepo.EXPECT().SaveSession(s.ctx, gomock.Any()).Return(nil)

	out, err := s.service.UseAccompaniment(s.ctx, &UseAccompanimentInput{
		SessionID: "test-session-id",
		PlayerID:  "player-b",
	})
	s.Require().NoError(err)
	s.Equal("link-1", out.LinkID)
	s.True(out.Session.ActiveDuos[0].EleveUsedAccompagnement)
	s.False(out.Session.ActiveDuos[0].MentorUsedAccompagnement)
}

func (s *GameServiceTestSuite) TestUseAccompanimentAlreadySpent() {
	sess := s.inProgressSession()
	sess.ActiveDuos = []*models.ActiveDuo{
		{LinkID: "link-1", MentorPlayerID: "player-a", ElevePlayerID: "player-b", MentorUsedAccompagnement: true},
	}

	s.expectGet(sess)

	_, err := s.service.UseAccompaniment(s.ctx, &UseAccompanimentInput{
		SessionID: "test-session-id",
		PlayerID:  "player-a",
	})
	s.Require().ErrorIs(err, ErrActionExhausted)
}

func (s *GameServiceTestSuite) TestUseAccompanimentNoDuo() {
	s.expectGet(s.inProgressSession())

	_, err := s.service.UseAccompaniment(s.ctx, &UseAccompanimentInput{
		SessionID: "test-session-id",
		PlayerID:  "player-a",
	})
	s.Require().ErrorIs(err, ErrNoActiveDuo)
}

func (s *GameServiceTestSuite) TestApplyPenaltyAlcoholEscalation() {
	out, err := s.service.ApplyPenalty(s.ctx, &ApplyPenaltyInput{
		Difficulty:  4,
		AlcoholMode: true,
	})
	s.Require().NoError(err)
	s.Equal("Cul sec !", out.Penalty)
}

func (s *GameServiceTestSuite) TestGetSessionNotFound() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.service.GetSession(s.ctx, &GetSessionInput{SessionID: "missing"})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}
