package turtle

import "fmt"

// Kind identifies one of the four primitive turtle instructions.
type Kind int

const (
	Forward Kind = iota
	Back
	TurnLeft
	TurnRight
)

func (k Kind) String() string {
	switch k {
	case Forward:
		return "forward"
	case Back:
		return "back"
	case TurnLeft:
		return "left"
	case TurnRight:
		return "right"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Move is a single turtle instruction: a kind plus a magnitude.
// Amount is a length for Forward/Back and degrees for TurnLeft/TurnRight.
// Negative amounts are legal and interpreted literally.
type Move struct {
	Kind   Kind
	Amount float64
}

// Reverse swaps Forward with Back and TurnLeft with TurnRight.
// The magnitude is unchanged; applying Reverse twice is a no-op.
func (m *Move) Reverse() {
	switch m.Kind {
	case Forward:
		m.Kind = Back
	case Back:
		m.Kind = Forward
	case TurnLeft:
		m.Kind = TurnRight
	case TurnRight:
		m.Kind = TurnLeft
	}
}

// Dilate scales the magnitude by factor if the move carries a length.
// Turn moves are untouched. Any factor is accepted, including 0 and
// negative values.
func (m *Move) Dilate(factor float64) {
	if m.Kind == Forward || m.Kind == Back {
		m.Amount *= factor
	}
}

func (m Move) String() string {
	return fmt.Sprintf("%s %g", m.Kind, m.Amount)
}
