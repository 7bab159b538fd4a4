package game

// AIPersonality defines how a bot picks its moves.
type AIPersonality int

const (
	AIPersonalityNone AIPersonality = iota
	AIRandom
	AIGreedy
)

// String returns the personality name.
func (p AIPersonality) String() string {
	switch p {
	case AIRandom:
		return "Random"
	case AIGreedy:
		return "Greedy"
	default:
		return "Human"
	}
}

// ParseAIPersonality converts a personality name to AIPersonality.
func ParseAIPersonality(s string) AIPersonality {
	switch s {
	case "random", "Random":
		return AIRandom
	case "greedy", "Greedy":
		return AIGreedy
	default:
		return AIPersonalityNone
	}
}

// Score is a player's end-of-game breakdown. It is recomputed wholesale.
type Score struct {
	Wildlife int `json:"wildlife"`
	Habitat  int `json:"habitat"`
	Bonus    int `json:"bonus"` // Habitat majority, summed over opponents
}

// Total returns the sum of all score components.
func (s Score) Total() int {
	return s.Wildlife + s.Habitat + s.Bonus
}

// Player represents a player in the game.
type Player struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	IsAI          bool          `json:"isAI"`
	AIPersonality AIPersonality `json:"aiPersonality"`
	Score         Score         `json:"score"`
}

// NewPlayer creates a new player.
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:   id,
		Name: name,
	}
}

// NewAIPlayer creates a new AI player.
func NewAIPlayer(id, name string, personality AIPersonality) *Player {
	return &Player{
		ID:            id,
		Name:          name,
		IsAI:          true,
		AIPersonality: personality,
	}
}
