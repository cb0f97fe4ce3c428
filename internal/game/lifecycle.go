package game

import (
	"math/rand/v2"
	"time"

	"github.com/palemoky/klondike/internal/game/card"
)

// Deal builds, shuffles and lays out a fresh game. The random source is
// supplied by the caller so a seed can reproduce the exact same deal.
//
// The shuffled pack is dealt into the seven columns, column A taking one
// card and column G seven, each column keeping all but its top card
// face-down. The next card opens the stock, the remaining 23 form the waste
// and the stack piles start empty.
func Deal(rng *rand.Rand) *State {
	pack := card.NewPack()
	rng.Shuffle(len(pack), func(i, j int) {
		pack[i], pack[j] = pack[j], pack[i]
	})

	s := newState()

	next := 0
	for i, name := range ColumnNames {
		column := s.Columns[name]
		column.Invisible = i
		column.Append(pack[next : next+i+1]...)
		next += i + 1
	}
	s.Stock.Append(pack[next])
	next++
	s.Waste.Append(pack[next:]...)

	return s
}

// elapsedSeconds returns the whole seconds played so far.
func elapsedSeconds(s *State) int64 {
	return int64(s.Elapsed().Seconds())
}

// ApplyTimePenalty charges the play time against the score: two points for
// every full ten seconds.
func ApplyTimePenalty(s *State) {
	s.TimeScore += elapsedSeconds(s) / 10 * -2
}

// ApplyBonusScore grants the win bonus. Games finished in 30 seconds or
// less earn nothing, longer games earn 700000 divided by the play time in
// seconds. Meant to be applied once, on a won game.
func ApplyBonusScore(s *State) {
	if elapsed := elapsedSeconds(s); elapsed > 30 {
		s.TimeScore += 700000 / elapsed
	}
}

// DetectWin flags the game as won once no column holds a face-down card and
// the stock and waste are both empty. Once set, the flag stays set.
func DetectWin(s *State) bool {
	invisible := 0
	for _, name := range ColumnNames {
		invisible += s.Columns[name].Invisible
	}
	if invisible == 0 && s.Stock.IsEmpty() && s.Waste.IsEmpty() {
		s.Won = true
	}
	return s.Won
}

// Finish stamps the end of the game and settles the time penalty and, on a
// won game, the bonus. Calling Finish again is a no-op.
func Finish(s *State) {
	if !s.EndTime.IsZero() {
		return
	}
	s.EndTime = time.Now()
	ApplyTimePenalty(s)
	if s.Won {
		ApplyBonusScore(s)
	}
}
