package ir

import "fmt"

// Pos is the source position of the first byte of a positioned atom.
// Line and Col are 0-based, as are the tokenizer positions producing them.
type Pos struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Col    int `json:"col"`
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Offset, p.Line, p.Col)
}
