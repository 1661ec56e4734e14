package gallery

import "math"

type Command int

const (
	None Command = iota
	Next
	Previous
)

func (c Command) String() string {
	switch c {
	case Next:
		return "next"
	case Previous:
		return "previous"
	default:
		return "none"
	}
}

const DefaultSwipeThreshold = 50

// Drag is a completed pointer drag. Origin names the surface the press
// landed on.
type Drag struct {
	Origin string
	StartX float64
	EndX   float64
}

// SwipeInterpreter maps horizontal drags that started on Surface to
// navigation commands.
type SwipeInterpreter struct {
	Surface   string
	Threshold float64
}

func NewSwipeInterpreter(surface string, threshold float64) SwipeInterpreter {
	return SwipeInterpreter{Surface: surface, Threshold: threshold}
}

// Interpret returns Previous for a rightward drag and Next for a leftward one.
// The distance must strictly exceed Threshold.
func (s SwipeInterpreter) Interpret(d Drag) Command {
	if d.Origin != s.Surface {
		return None
	}

	dx := d.EndX - d.StartX
	if math.Abs(dx) <= s.Threshold {
		return None
	}
	if dx > 0 {
		return Previous
	}
	return Next
}
