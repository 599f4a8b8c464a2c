package runner

// HighScoreStore persists the single best-score value. Implementations may
// fail; the session treats a failed or invalid load as "no prior high score".
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// MemoryHighScores is an in-process HighScoreStore.
type MemoryHighScores struct {
	Score int
	Saves int // Number of SaveHighScore calls
}

// LoadHighScore implements HighScoreStore.
func (m *MemoryHighScores) LoadHighScore() (int, error) {
	return m.Score, nil
}

// SaveHighScore implements HighScoreStore.
func (m *MemoryHighScores) SaveHighScore(score int) error {
	m.Score = score
	m.Saves++
	return nil
}
