package game

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	// Size is the board edge length.
	Size  = 3
	Cells = Size * Size

	emptyCell = byte('.')
)

var (
	// ErrIllegalMove reports a move outside LegalMoves. Play panics with it
	// since only a caller bug can produce one.
	ErrIllegalMove = errors.New("game: illegal move")
	// ErrNotTerminal reports an outcome query on an unfinished game.
	ErrNotTerminal = errors.New("game: game is not over")
)

// The eight winning lines: rows, columns, diagonals.
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Position is an immutable tic-tac-toe state. The zero value is not valid;
// use NewPosition or ParsePosition.
type Position struct {
	cells [Cells]byte
	turn  string
	won   string
}

// NewPosition returns the empty board with X to move.
func NewPosition() Position {
	p := Position{turn: PlayerX}
	for i := range p.cells {
		p.cells[i] = emptyCell
	}
	return p
}

// ParsePosition builds a position from a 9-character board string read left
// to right, top to bottom, e.g. "XX.OO....". The player to move is derived
// from the mark counts, X moving first.
func ParsePosition(board string) (Position, error) {
	if len(board) != Cells {
		return Position{}, fmt.Errorf("board must have %d cells, got %d", Cells, len(board))
	}

	p := Position{}
	xs, os := 0, 0
	for i := 0; i < Cells; i++ {
		switch board[i] {
		case 'X':
			xs++
		case 'O':
			os++
		case emptyCell:
		default:
			return Position{}, fmt.Errorf("invalid cell %q at index %d", board[i], i)
		}
		p.cells[i] = board[i]
	}
	if xs != os && xs != os+1 {
		return Position{}, fmt.Errorf("invalid mark counts: %d X vs %d O", xs, os)
	}

	if xs == os {
		p.turn = PlayerX
	} else {
		p.turn = PlayerO
	}
	p.won = findWinner(p.cells)
	return p, nil
}

// Opponent returns the other player.
func Opponent(player string) string {
	if player == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (p Position) Player() string {
	return p.turn
}

func (p Position) LegalMoves() []Move {
	if p.IsTerminal() {
		return nil
	}
	moves := make([]Move, 0, Cells)
	for i, cell := range p.cells {
		if cell == emptyCell {
			moves = append(moves, CellMove(i))
		}
	}
	return moves
}

func (p Position) Play(move Move) State {
	cell, ok := move.(CellMove)
	if !ok || cell < 0 || int(cell) >= Cells || p.cells[cell] != emptyCell || p.IsTerminal() {
		panic(fmt.Errorf("%w: %v on %q", ErrIllegalMove, move, p.board()))
	}

	next := p
	next.cells[cell] = p.turn[0]
	next.turn = Opponent(p.turn)
	next.won = findWinner(next.cells)
	return next
}

func (p Position) IsTerminal() bool {
	if p.won != "" {
		return true
	}
	for _, cell := range p.cells {
		if cell == emptyCell {
			return false
		}
	}
	return true
}

func (p Position) Winner() string {
	return p.won
}

// Outcome returns the game result, or ErrNotTerminal while the game is
// still in progress.
func (p Position) Outcome() (Outcome, error) {
	if !p.IsTerminal() {
		return Outcome{}, ErrNotTerminal
	}
	return Outcome{Winner: p.won}, nil
}

func (p Position) Hash() StateHash {
	h := fnv.New64a()
	h.Write(p.cells[:])
	h.Write([]byte(p.turn))
	return StateHash(h.Sum64())
}

func (p Position) String() string {
	var b strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		b.Write(p.cells[row*Size : (row+1)*Size])
	}
	return b.String()
}

func (p Position) board() string {
	return string(p.cells[:])
}

func findWinner(cells [Cells]byte) string {
	for _, line := range lines {
		mark := cells[line[0]]
		if mark != emptyCell && mark == cells[line[1]] && mark == cells[line[2]] {
			return string(mark)
		}
	}
	return ""
}
