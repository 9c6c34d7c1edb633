package domain

func Opponent(cell Cell) Cell {
	switch cell {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

// Label is the human-readable name front ends show for a player.
func Label(cell Cell) string {
	switch cell {
	case PlayerA:
		return "Black"
	case PlayerB:
		return "White"
	default:
		return ""
	}
}

func ParseSymbol(s string) (Cell, bool) {
	switch s {
	case "X", "x":
		return PlayerA, true
	case "O", "o":
		return PlayerB, true
	default:
		return Empty, false
	}
}
