package penalty

import (
	"math/rand"
	"time"
)

// SoftPenalties is the fixed pool used when alcohol mode is off. One entry
// is drawn uniformly at random regardless of difficulty.
var SoftPenalties = []string{
	"Fais 10 pompes",
	"Imite un animal pendant 30 secondes",
	"Raconte ta pire honte",
	"Chante le refrain d'une chanson au choix du groupe",
	"Fais le tour de la pièce à cloche-pied",
}

// alcoholPenalties maps dare difficulty to an escalating phrase. Any
// difficulty outside 1..4 falls back to the mildest entry.
var alcoholPenalties = map[int]string{
	1: "Bois une gorgée",
	2: "Bois deux gorgées",
	3: "Bois trois gorgées",
	4: "Cul sec !",
}

// Picker selects penalty phrases
type Picker struct {
	random *rand.Rand
}

// Config for the penalty picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new penalty picker
func New(cfg *Config) *Picker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &Picker{
		random: rand.New(source),
	}
}

// Pick returns the penalty phrase for a failed dare. Alcohol mode maps
// difficulty directly to a phrase; otherwise a random soft penalty is drawn.
func (p *Picker) Pick(difficulty int, alcoholMode bool) string {
	if !alcoholMode {
		return SoftPenalties[p.random.Intn(len(SoftPenalties))]
	}

	if phrase, ok := alcoholPenalties[difficulty]; ok {
		return phrase
	}
	return alcoholPenalties[1]
}
