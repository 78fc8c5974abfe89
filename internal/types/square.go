//
// xqengine - Xiangqi search engine written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package types holds the primitive data types shared across the engine:
// squares, pieces, moves, values and scores. All of them are modelled as
// small integer types so the hot paths of move generation and search never
// allocate.
package types

import "fmt"

// Square is a 0x88-style square index: the low nibble is the column
// (0..8), the high nibble is the row (0..9). The 16-wide stride leaves
// unused slots off board which makes validity a pair of comparisons
// instead of a range check on both row and column separately.
type Square uint8

// board geometry
const (
	NumRows = 10
	NumCols = 9
	// SqInvalid is used as a sentinel for "no square" (e.g. absence of an
	// en-route blocking square). 0xFF is never a valid square.
	SqInvalid Square = 0xFF
)

// NewSquare builds a Square from a row/column pair.
func NewSquare(row, col int) Square {
	return Square((row << 4) | col)
}

// Row returns the row (rank) of the square, 0..9.
func (s Square) Row() int {
	return int(s >> 4)
}

// Col returns the column (file) of the square, 0..8.
func (s Square) Col() int {
	return int(s & 0x0F)
}

// IsValid reports whether the square lies on the 9x10 board.
func (s Square) IsValid() bool {
	return int(s&0x0F) < NumCols && int(s>>4) < NumRows
}

// String renders the square in "(rROW,cCOL)" form for debugging/logging.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("(r%d,c%d)", s.Row(), s.Col())
}
