package srs

import "errors"

// ErrInvalidDifficulty is returned when a card carries a difficulty outside
// the known levels. Check with errors.Is.
var ErrInvalidDifficulty = errors.New("srs: difficulty out of range")
