package sound

// Event names accepted by Play. Each one matches a file basename under
// assets/sounds, so dropping a deal.mp3 there is all it takes to give
// the deal a sound.
const (
	EventDeal  = "deal"
	EventMove  = "move"
	EventUndo  = "undo"
	EventCycle = "cycle"
	EventWin   = "win"
	EventError = "error"
)
