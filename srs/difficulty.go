package srs

// Difficulty tracks a card's review history as an ordinal level.
// New cards start at 0 and move between levels after each review.
type Difficulty int

const (
	New    Difficulty = 0
	Easy   Difficulty = 1
	Medium Difficulty = 2
	Hard   Difficulty = 3
)

// Valid reports whether d is one of the four known levels.
func (d Difficulty) Valid() bool {
	return d >= New && d <= Hard
}

func (d Difficulty) String() string {
	switch d {
	case New:
		return "new"
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}
