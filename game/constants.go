package game

type BoardState int

const (
	InProgress BoardState = iota
	Won
	Lost
)

var boardStateNames = map[BoardState]string{
	InProgress: "in progress",
	Won:        "won",
	Lost:       "lost",
}

func (state BoardState) String() string {
	if name, ok := boardStateNames[state]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no further moves are accepted in this state
func (state BoardState) IsTerminal() bool {
	return state == Won || state == Lost
}
