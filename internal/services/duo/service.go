package duo

import (
	"github.com/lverdier/defiparty/internal/models"
)

// Detector resolves Mentor/Élève links against a session roster. It is
// pure computation; persistence of links and of the resulting duos belongs
// to the callers.
type Detector struct{}

// New creates a new duo detector
func New() *Detector {
	return &Detector{}
}

// Detect emits an ActiveDuo for every unconsumed link whose two profiles
// are both present among non-paused roster players. A profile appearing in
// several links yields several duos; usage flags always start fresh, the
// bonus is per-game even though the link is durable.
func (d *Detector) Detect(input *DetectInput) *DetectOutput {
	out := &DetectOutput{}
	if input == nil {
		return out
	}

	for _, link := range input.Links {
		if link.IsConsumed {
			continue
		}

		mentor := findByProfile(input.Roster, link.MentorProfileID)
		eleve := findByProfile(input.Roster, link.EleveProfileID)
		if mentor == nil || eleve == nil {
			continue
		}

		out.Duos = append(out.Duos, &models.ActiveDuo{
			LinkID:         link.ID,
			MentorPlayerID: mentor.ID,
			ElevePlayerID:  eleve.ID,
		})
	}

	return out
}

func findByProfile(roster []*models.Player, profileID string) *models.Player {
	if profileID == "" {
		return nil
	}
	for _, player := range roster {
		if player.IsPaused {
			continue
		}
		if player.ProfileID == profileID {
			return player
		}
	}
	return nil
}
