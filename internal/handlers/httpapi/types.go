package httpapi

import "github.com/lverdier/defiparty/internal/models"

// playerSeed mirrors lobby.PlayerSeed on the wire
type playerSeed struct {
	Name      string `json:"name"`
	Avatar    string `json:"avatar,omitempty"`
	ProfileID string `json:"profileId,omitempty"`
}

type createSessionRequest struct {
	Host     playerSeed      `json:"host"`
	Players  []playerSeed    `json:"players"`
	Settings models.Settings `json:"settings"`
}

type startSessionRequest struct {
	FirstDare *models.Dare `json:"firstDare,omitempty"`
}

type advanceTurnRequest struct {
	PlayerID   string       `json:"playerId"`
	ScoreDelta int          `json:"scoreDelta"`
	Outcome    string       `json:"outcome"`
	NextDare   *models.Dare `json:"nextDare,omitempty"`
}

type playerActionRequest struct {
	PlayerID string `json:"playerId"`
}

type exchangeRequest struct {
	PlayerID       string `json:"playerId"`
	TargetCategory string `json:"targetCategory"`
}

type setDareRequest struct {
	Dare *models.Dare `json:"dare"`
}

type swapRequest struct {
	Player1ID string `json:"player1Id"`
	Player2ID string `json:"player2Id"`
}

type createDuoLinkRequest struct {
	MentorProfileID string `json:"mentorProfileId"`
	EleveProfileID  string `json:"eleveProfileId"`
}

type sessionResponse struct {
	Session *models.Session `json:"session"`
}

type advanceTurnResponse struct {
	Session             *models.Session `json:"session"`
	RoundCompleted      bool            `json:"roundCompleted"`
	Finished            bool            `json:"finished"`
	Penalty             string          `json:"penalty,omitempty"`
	NextDifficultyFloor int             `json:"nextDifficultyFloor"`
	ArchivePending      bool            `json:"archivePending,omitempty"`
}

type jokerResponse struct {
	JokersRemaining int `json:"jokersRemaining"`
}

type rerollResponse struct {
	RerollsRemaining int  `json:"rerollsRemaining"`
	NeedsNewDare     bool `json:"needsNewDare"`
}

type exchangeResponse struct {
	ExchangesRemaining int             `json:"exchangesRemaining"`
	Session            *models.Session `json:"session"`
}

type accompanimentResponse struct {
	Session        *models.Session `json:"session"`
	LinkID         string          `json:"linkId"`
	MentorPlayerID string          `json:"mentorPlayerId"`
	ElevePlayerID  string          `json:"elevePlayerId"`
}

type archiveResponse struct {
	Record   *models.HistoryRecord `json:"record"`
	Appended bool                  `json:"appended"`
}

type historyResponse struct {
	Records []*models.HistoryRecord `json:"records"`
}

type duoLinkResponse struct {
	Link *models.MentorEleveLink `json:"link"`
}

type duoLinksResponse struct {
	Links []*models.MentorEleveLink `json:"links"`
}
