package game

import "fmt"

// Move identifies a legal action. Implementations must be comparable, since
// moves key child lookups in the search tree.
type Move interface {
	String() string
}

// CellMove places the current player's mark on a board cell, indexed 0..8
// left to right, top to bottom.
type CellMove int

func (m CellMove) String() string {
	return fmt.Sprintf("%c%d", 'a'+int(m)%Size, int(m)/Size+1)
}
