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

package types

import "fmt"

// Value is a centipawn-ish score from the perspective of the side to
// move. Positive is good for the mover.
type Value int32

// Search-wide constants. The transposition table stores scores as a
// full Value.
const (
	ValueZero        Value = 0
	ValueDraw        Value = 0
	ValueMin         Value = -20000
	ValueMax         Value = 20000
	ValueCheckMate   Value = 20000
	ValueNA          Value = ValueMin - 1
	// ValueCheckMateThreshold: any value with |v| above this is "close
	// enough to mate" to be treated as a proven mate score by
	// IsCheckMateValue, which iterative deepening uses to stop early.
	ValueCheckMateThreshold Value = ValueCheckMate - 1000
)

// IsValid reports whether the value is a usable search value (i.e. not
// the ValueNA sentinel).
func (v Value) IsValid() bool {
	return v != ValueNA
}

// IsCheckMateValue reports whether the value represents a forced mate
// in some number of plies (as opposed to a material/positional score).
func (v Value) IsCheckMateValue() bool {
	return v > ValueCheckMateThreshold || v < -ValueCheckMateThreshold
}

func (v Value) String() string {
	if v >= 0 {
		return fmt.Sprintf("+%d", int(v))
	}
	return fmt.Sprintf("%d", int(v))
}

// PieceValue is the material value table from the evaluation spec.
var PieceValue = [TypeMask + 1]Value{
	NoPieceType: 0,
	King:        10000,
	Advisor:     220,
	Elephant:    220,
	Horse:       420,
	Rook:        950,
	Cannon:      450,
	Pawn:        100,
}

// ValueOf returns the material value of a piece type.
func (pt PieceType) ValueOf() Value {
	return PieceValue[pt]
}

// ValueType is the bound kind stored alongside a transposition table
// entry: EXACT (a proven score), LOWER (a fail-high / beta cut score,
// the real value is at least this), UPPER (a fail-low / alpha score,
// the real value is at most this).
type ValueType uint8

const (
	NoValueType ValueType = iota
	Exact
	Lower
	Upper
)

func (t ValueType) String() string {
	switch t {
	case Exact:
		return "EXACT"
	case Lower:
		return "LOWER"
	case Upper:
		return "UPPER"
	default:
		return "NONE"
	}
}
