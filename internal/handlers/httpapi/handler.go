package httpapi

import (
	"github.com/julienschmidt/httprouter"

	"github.com/lverdier/defiparty/internal/common/clock"
	"github.com/lverdier/defiparty/internal/common/uuid"
	duoRepo "github.com/lverdier/defiparty/internal/repositories/duo"
	sessionRepo "github.com/lverdier/defiparty/internal/repositories/session"
	"github.com/lverdier/defiparty/internal/services/archive"
	"github.com/lverdier/defiparty/internal/services/game"
	"github.com/lverdier/defiparty/internal/services/lobby"
)

// Handler exposes the session engine over HTTP and WebSocket. Routes map
// one-to-one onto service operations; every device in a party talks to the
// same session document through it.
type Handler struct {
	lobbyService   lobby.Service
	gameService    game.Service
	archiveService archive.Service
	sessionRepo    sessionRepo.Repository
	duoRepo        duoRepo.Repository
	clock          clock.Clock
	uuidGenerator  uuid.UUID
}

// Config holds the configuration for the HTTP handler
type Config struct {
	// Service dependencies
	LobbyService   lobby.Service
	GameService    game.Service
	ArchiveService archive.Service

	// Repository dependencies
	SessionRepo sessionRepo.Repository
	DuoRepo     duoRepo.Repository

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.LobbyService == nil {
		return nil, ErrNilLobbyService
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.ArchiveService == nil {
		return nil, ErrNilArchiveService
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.DuoRepo == nil {
		return nil, ErrNilDuoRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &Handler{
		lobbyService:   cfg.LobbyService,
		gameService:    cfg.GameService,
		archiveService: cfg.ArchiveService,
		sessionRepo:    cfg.SessionRepo,
		duoRepo:        cfg.DuoRepo,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
	}, nil
}

// Router builds the route table
func (h *Handler) Router() *httprouter.Router {
	router := httprouter.New()

	router.POST("/sessions", h.createSession)
	router.GET("/sessions/:id", h.getSession)
	router.POST("/sessions/:id/start", h.startSession)
	router.POST("/sessions/:id/turns", h.advanceTurn)
	router.POST("/sessions/:id/joker", h.useJoker)
	router.POST("/sessions/:id/reroll", h.useReroll)
	router.POST("/sessions/:id/exchange", h.useExchange)
	router.PUT("/sessions/:id/dare", h.setCurrentDare)
	router.POST("/sessions/:id/swap", h.swapPlayers)
	router.POST("/sessions/:id/pause", h.pauseSession)
	router.POST("/sessions/:id/resume", h.resumeSession)
	router.POST("/sessions/:id/players/:playerId/pause", h.pausePlayer)
	router.POST("/sessions/:id/players/:playerId/resume", h.resumePlayer)
	router.POST("/sessions/:id/accompaniment", h.useAccompaniment)
	router.POST("/sessions/:id/archive", h.finalizeSession)
	router.GET("/sessions/:id/watch", h.watchSession)
	router.GET("/sessions/:id/qr", h.joinQR)
	router.GET("/history", h.getHistory)
	router.POST("/duos", h.createDuoLink)
	router.GET("/duos", h.listDuoLinks)
	router.POST("/duos/:id/consume", h.consumeDuoLink)

	return router
}
