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

// Move is a 16-bit packed move: the high byte is the from-square, the
// low byte is the to-square. There is no promotion or side information
// to encode - Xiangqi pieces never promote. MoveNone (0) is reserved
// for "no move"; square 0 is a valid from/to square so a real move can
// never collide with the zero value (from and to are never both 0 for
// an actual move).
type Move uint16

// MoveNone is the "no move" sentinel.
const MoveNone Move = 0

// NewMove packs a from/to square pair into a Move.
func NewMove(from, to Square) Move {
	return Move(from)<<8 | Move(to)
}

// From returns the origin square of the move.
func (m Move) From() Square {
	return Square(m >> 8)
}

// To returns the destination square of the move.
func (m Move) To() Square {
	return Square(m & 0xFF)
}

func (m Move) String() string {
	if m == MoveNone {
		return "no-move"
	}
	from, to := m.From(), m.To()
	return fmt.Sprintf("%d%d-%d%d", from.Col(), from.Row(), to.Col(), to.Row())
}
