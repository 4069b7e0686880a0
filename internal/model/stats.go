package model

// SessionStats accumulates results across the rounds of one process run
type SessionStats struct {
	GamesPlayed int
	GamesWon    int
}

// Record counts a finished round
func (s *SessionStats) Record(won bool) {
	s.GamesPlayed++
	if won {
		s.GamesWon++
	}
}

// GamesLost returns the number of rounds that were not won
func (s SessionStats) GamesLost() int {
	return s.GamesPlayed - s.GamesWon
}

// WinRate returns the percentage of rounds won, or 0 if none were played
func (s SessionStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return 100 * float64(s.GamesWon) / float64(s.GamesPlayed)
}
