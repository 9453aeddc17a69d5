package engine

import (
	"strings"

	"tictac/game"

	"github.com/muesli/termenv"
)

var profile = termenv.ColorProfile()

// RenderBoard draws the board for terminal output, coloring X and O marks.
func RenderBoard(p game.Position) string {
	var b strings.Builder
	for _, r := range p.String() {
		switch r {
		case 'X':
			b.WriteString(termenv.String("X").Foreground(profile.Color("1")).String())
		case 'O':
			b.WriteString(termenv.String("O").Foreground(profile.Color("4")).String())
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
