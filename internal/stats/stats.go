// Package stats keeps per-session play statistics. Nothing is
// persisted: the record lives for the process and starts empty on the
// next run.
package stats

import "time"

// Recorder accumulates statistics across the deals of one session.
// The UI event loop owns it, so access is not synchronized.
type Recorder struct {
	gamesDealt int
	gamesWon   int
	totalMoves int
	bestScore  int64
	bestGameID string
	fastestWin time.Duration
	hasWin     bool
}

// Summary is a render-ready view of the recorder. BestScore, BestGameID
// and FastestWin are only meaningful when HasWin is set.
type Summary struct {
	GamesDealt int
	GamesWon   int
	WinRate    float64
	TotalMoves int
	BestScore  int64
	BestGameID string
	FastestWin time.Duration
	HasWin     bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordDeal notes that a new game has been dealt.
func (r *Recorder) RecordDeal() {
	r.gamesDealt++
}

// RecordWin notes a finished, won game with its final score, duration
// and move count. The game ID is kept alongside the best score so the
// game can be found in the debug log.
func (r *Recorder) RecordWin(gameID string, score int64, elapsed time.Duration, moves int) {
	r.gamesWon++
	r.totalMoves += moves

	if !r.hasWin || score > r.bestScore {
		r.bestScore = score
		r.bestGameID = gameID
	}
	if !r.hasWin || elapsed < r.fastestWin {
		r.fastestWin = elapsed
	}
	r.hasWin = true
}

// RecordAbandon notes a game left unfinished, keeping its moves in the
// session total.
func (r *Recorder) RecordAbandon(moves int) {
	r.totalMoves += moves
}

// Summary returns the current session record.
func (r *Recorder) Summary() Summary {
	winRate := 0.0
	if r.gamesDealt > 0 {
		winRate = float64(r.gamesWon) / float64(r.gamesDealt) * 100
	}

	return Summary{
		GamesDealt: r.gamesDealt,
		GamesWon:   r.gamesWon,
		WinRate:    winRate,
		TotalMoves: r.totalMoves,
		BestScore:  r.bestScore,
		BestGameID: r.bestGameID,
		FastestWin: r.fastestWin,
		HasWin:     r.hasWin,
	}
}
