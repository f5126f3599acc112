package srs

import "testing"

func TestNextStateCorrect(t *testing.T) {
	tests := []struct {
		current      Difficulty
		wantNext     Difficulty
		wantInterval int
	}{
		{New, Easy, 1},
		{Easy, Easy, 3},
		{Medium, Medium, 7},
		{Hard, Hard, 14},
	}

	for _, tc := range tests {
		t.Run(tc.current.String(), func(t *testing.T) {
			next, interval := NextState(tc.current, true)
			if next != tc.wantNext || interval != tc.wantInterval {
				t.Errorf("NextState(%v, true) = (%v, %d), want (%v, %d)",
					tc.current, next, interval, tc.wantNext, tc.wantInterval)
			}
		})
	}
}

func TestNextStateWrong(t *testing.T) {
	tests := []struct {
		current  Difficulty
		wantNext Difficulty
	}{
		{New, New},
		{Easy, New},
		{Medium, Easy},
		{Hard, Medium},
	}

	for _, tc := range tests {
		t.Run(tc.current.String(), func(t *testing.T) {
			next, interval := NextState(tc.current, false)
			if next != tc.wantNext {
				t.Errorf("NextState(%v, false) = %v, want %v", tc.current, next, tc.wantNext)
			}
			if interval != 1 {
				t.Errorf("NextState(%v, false) interval = %d, want 1", tc.current, interval)
			}
		})
	}
}

func TestDifficultyValid(t *testing.T) {
	for d := New; d <= Hard; d++ {
		if !d.Valid() {
			t.Errorf("Difficulty(%d).Valid() = false, want true", d)
		}
	}
	for _, d := range []Difficulty{-1, 4, 42} {
		if d.Valid() {
			t.Errorf("Difficulty(%d).Valid() = true, want false", d)
		}
	}
}
