package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecorderStartsEmpty(t *testing.T) {
	t.Parallel()

	s := NewRecorder().Summary()

	assert.Zero(t, s.GamesDealt)
	assert.Zero(t, s.GamesWon)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.TotalMoves)
	assert.False(t, s.HasWin)
}

func TestRecorderCountsDealsAndWins(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.RecordDeal()
	r.RecordDeal()
	r.RecordDeal()
	r.RecordDeal()
	r.RecordWin("game-a", 150, 2*time.Minute, 80)

	s := r.Summary()
	assert.Equal(t, 4, s.GamesDealt)
	assert.Equal(t, 1, s.GamesWon)
	assert.InDelta(t, 25.0, s.WinRate, 0.001)
}

func TestRecorderTracksBestScoreAndFastestWin(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.RecordDeal()
	r.RecordWin("game-a", 120, 5*time.Minute, 90)
	r.RecordDeal()
	r.RecordWin("game-b", 300, 8*time.Minute, 110)
	r.RecordDeal()
	r.RecordWin("game-c", 200, 3*time.Minute, 70)

	s := r.Summary()
	assert.True(t, s.HasWin)
	assert.Equal(t, int64(300), s.BestScore)
	assert.Equal(t, "game-b", s.BestGameID)
	assert.Equal(t, 3*time.Minute, s.FastestWin)
	assert.Equal(t, 270, s.TotalMoves)
}

func TestRecorderFirstWinSetsRecords(t *testing.T) {
	t.Parallel()

	// A negative score must still become the best score on the first win
	r := NewRecorder()
	r.RecordDeal()
	r.RecordWin("game-a", -40, 20*time.Minute, 150)

	s := r.Summary()
	assert.True(t, s.HasWin)
	assert.Equal(t, int64(-40), s.BestScore)
	assert.Equal(t, "game-a", s.BestGameID)
	assert.Equal(t, 20*time.Minute, s.FastestWin)
}

func TestRecorderAbandonKeepsMoves(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.RecordDeal()
	r.RecordAbandon(42)
	r.RecordDeal()
	r.RecordWin("game-a", 100, time.Minute, 58)

	s := r.Summary()
	assert.Equal(t, 2, s.GamesDealt)
	assert.Equal(t, 1, s.GamesWon)
	assert.Equal(t, 100, s.TotalMoves)
	assert.InDelta(t, 50.0, s.WinRate, 0.001)
}
