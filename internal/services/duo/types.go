package duo

import (
	"github.com/lverdier/defiparty/internal/models"
)

// DetectInput contains the roster and the persisted links to resolve
type DetectInput struct {
	// Roster is the session roster, in seating order
	Roster []*models.Player

	// Links are all persisted Mentor/Élève links, in creation order
	Links []*models.MentorEleveLink
}

// DetectOutput contains the resolved duos, preserving link creation order
type DetectOutput struct {
	Duos []*models.ActiveDuo
}
