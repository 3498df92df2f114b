package models

// MentorEleveLink is a durable pairing between two profiles. The link
// outlives any one session; the per-game usage flags live on ActiveDuo.
type MentorEleveLink struct {
	// ID is the unique identifier for the link
	ID string `json:"id"`

	// MentorProfileID is the profile id of the mentor
	MentorProfileID string `json:"mentorProfileId"`

	// EleveProfileID is the profile id of the élève
	EleveProfileID string `json:"eleveProfileId"`

	// IsConsumed marks a link that can no longer produce duos
	IsConsumed bool `json:"isConsumed"`

	// CreatedAt orders links; duo tie-breaks use creation order
	CreatedAt Timestamp `json:"createdAt"`
}

// ActiveDuo is the resolution of a MentorEleveLink against a session
// roster: both profiles present and not paused. Session-scoped, recomputed
// at every session start; never persisted outside the session document.
type ActiveDuo struct {
	// LinkID references the MentorEleveLink this duo derives from
	LinkID string `json:"linkId"`

	// MentorPlayerID is the roster id playing the mentor side
	MentorPlayerID string `json:"mentorPlayerId"`

	// ElevePlayerID is the roster id playing the élève side
	ElevePlayerID string `json:"elevePlayerId"`

	// MentorUsedAccompagnement and EleveUsedAccompagnement are the per-game
	// bonus flags; both start false every session regardless of prior games
	MentorUsedAccompagnement bool `json:"mentorUsedAccompagnement"`
	EleveUsedAccompagnement  bool `json:"eleveUsedAccompagnement"`
}
