package lobby

import (
	"context"

	"github.com/lverdier/defiparty/internal/models"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new lobby service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if len(cfg.KnownCategories) == 0 {
		cfg.KnownCategories = DefaultCategories
	}

	return &service{
		config: cfg,
	}, nil
}

// AssembleSession builds a valid initial session. The host is always part
// of the roster; roster order is final and defines the turn sequence.
func (s *service) AssembleSession(ctx context.Context, input *AssembleSessionInput) (*AssembleSessionOutput, error) {
	if input == nil {
		return nil, ErrEmptyRoster
	}

	if input.Settings.RoundsTotal < 1 {
		return nil, ErrInvalidRounds
	}

	for _, filter := range input.Settings.CategoryFilters {
		if !s.knownCategory(filter) {
			return nil, ErrUnknownCategory
		}
	}

	seeds := s.buildRoster(input)
	if len(seeds) == 0 {
		return nil, ErrEmptyRoster
	}

	settings := input.Settings
	if settings.SoloMode && len(seeds) > 1 {
		return nil, ErrSoloRosterTooBig
	}
	if len(seeds) == 1 {
		settings.SoloMode = true
	}

	roster := make([]*models.Player, 0, len(seeds))
	for _, seed := range seeds {
		player := &models.Player{
			ID:           s.config.UUIDGenerator.NewUUID(),
			Name:         seed.Name,
			Avatar:       seed.Avatar,
			ProfileID:    seed.ProfileID,
			JokersLeft:   DefaultJokers,
			RerollsLeft:  DefaultRerolls,
			ExchangeLeft: DefaultExchange,
		}
		if settings.SoloMode {
			player.JokersLeft = SoloJokers
			player.RerollsLeft = SoloRerolls
			player.ExchangeLeft = SoloExchange
		}
		roster = append(roster, player)
	}

	return &AssembleSessionOutput{
		Session: &models.Session{
			ID:           s.config.UUIDGenerator.NewUUID(),
			Status:       models.SessionStatusLobby,
			HostPlayerID: roster[0].ID,
			Settings:     settings,
			Roster:       roster,
			CreatedAt:    models.NewTimestamp(s.config.Clock.Now()),
		},
	}, nil
}

// buildRoster puts the host first, then the remaining seeds in order,
// dropping duplicate host entries and blank names.
func (s *service) buildRoster(input *AssembleSessionInput) []PlayerSeed {
	seeds := make([]PlayerSeed, 0, len(input.Players)+1)

	if input.Host.Name != "" {
		seeds = append(seeds, input.Host)
	}

	for _, seed := range input.Players {
		if seed.Name == "" {
			continue
		}
		if s.isHost(input.Host, seed) {
			continue
		}
		seeds = append(seeds, seed)
	}

	return seeds
}

func (s *service) isHost(host, seed PlayerSeed) bool {
	if host.ProfileID != "" && seed.ProfileID != "" {
		return host.ProfileID == seed.ProfileID
	}
	return host.Name == seed.Name
}

func (s *service) knownCategory(category string) bool {
	for _, known := range s.config.KnownCategories {
		if known == category {
			return true
		}
	}
	return false
}
