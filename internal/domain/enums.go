package domain

import "strings"

// Difficulty labels target removal counts for generation.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// RemovalTarget maps a difficulty to the number of cells the generator
// tries to clear from a full grid.
func (d Difficulty) RemovalTarget() int {
	switch d {
	case Easy:
		return 40
	case Medium:
		return 48
	case Hard:
		return 54
	default:
		return 60 // Expert
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty is lenient: unknown labels fall back to Medium.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}
