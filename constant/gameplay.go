package constant

// Board
const (
	// GridSize is the board dimension N; the board is N x N cells
	GridSize = 8

	// DefaultFillProbability is the chance each cell starts occupied
	DefaultFillProbability = 0.8

	// MinEliminationSpan is the minimum width and height of an eliminable rectangle
	MinEliminationSpan = 2
)

// Players
const (
	// PlayerCount is fixed, turns strictly alternate
	PlayerCount = 2

	DefaultPlayerOneName = "Player 1"
	DefaultPlayerTwoName = "Player 2"
)
