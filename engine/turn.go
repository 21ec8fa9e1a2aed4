package engine

// Player identifies one of the two seats; the label carries no rule asymmetry
type Player uint8

const (
	PlayerOne Player = iota
	PlayerTwo
)

// Other returns the opponent
func (p Player) Other() Player {
	return p ^ 1
}

// Index returns 0 for PlayerOne and 1 for PlayerTwo
func (p Player) Index() int {
	return int(p)
}

func (p Player) String() string {
	if p == PlayerTwo {
		return "Player 2"
	}
	return "Player 1"
}

// PlayerFromNumber maps the 1-based seat number used in config and UI
func PlayerFromNumber(n int) (Player, bool) {
	switch n {
	case 1:
		return PlayerOne, true
	case 2:
		return PlayerTwo, true
	default:
		return PlayerOne, false
	}
}

// TurnController tracks whose turn it is under strict alternation
type TurnController struct {
	current Player
}

// NewTurnController starts with first to move
func NewTurnController(first Player) *TurnController {
	return &TurnController{current: first}
}

// Current returns the player to move
func (tc *TurnController) Current() Player {
	return tc.current
}

// Advance passes the turn; call exactly once per performed elimination
func (tc *TurnController) Advance() {
	tc.current = tc.current.Other()
}

// Reset hands the first move to first
func (tc *TurnController) Reset(first Player) {
	tc.current = first
}
