package searcher

import "math"

// DefaultExploration is the UCT exploration constant c.
const DefaultExploration = math.Sqrt2

// Backpropagation rewards. A loss counts -1 rather than 0; move choice is by
// visit count so the convention only shows in reward diagnostics.
const (
	Win  = 1.0
	Draw = 0.0
	Loss = -Win
)

type uct struct {
	numerator float64
}

func newUCT(cSquared float64, n float64) *uct {
	if n == 0 {
		panic("cannot compute UCT: 0 parent visits")
	}
	return &uct{numerator: cSquared * math.Log(n)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("cannot compute UCT: 0 child visits")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

func reward(winner string, player string) float64 {
	switch winner {
	case "":
		return Draw
	case player:
		return Win
	default:
		return Loss
	}
}
