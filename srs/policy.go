package srs

// NextState maps a card's current difficulty and the review outcome to its new
// difficulty and the number of days until the card is due again.
//
// A correct answer promotes a new card to easy and stretches the interval with
// the level: easy cards come back in 3 days, medium in 7, hard in 14. A wrong
// answer drops the card one level and brings it back tomorrow.
func NextState(current Difficulty, wasCorrect bool) (Difficulty, int) {
	if !wasCorrect {
		next := current - 1
		if next < New {
			next = New
		}
		return next, 1
	}

	switch current {
	case New:
		return Easy, 1
	case Easy:
		return Easy, 3
	case Medium:
		return Medium, 7
	default: // Hard
		return Hard, 14
	}
}
