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

// Package zobrist provides the incremental position-hashing table used by
// the transposition table and repetition bookkeeping. A Table is a
// Z[256][24] grid of random 32-bit keys (one per square/piece combination,
// most of the 24 rows per square going unused since piece codes only ever
// occupy 0x08..0x17) plus one side-to-move key.
package zobrist

import (
	"math/rand"
	"time"

	"github.com/frankkopp/xqengine/internal/types"
)

// Key is a Zobrist hash value.
type Key uint32

// pieceCodes is one past the highest piece code the engine ever encodes
// (Black Pawn = 0x10|0x07 = 0x17 = 23), so 24 rows cover every piece code.
const pieceCodes = 24

// Table holds the random keys for one Zobrist hashing scheme. A fresh
// Table (via New) gives the engine a different, but internally
// consistent, hashing scheme - reseeding it is how Engine.Reset varies
// move preference on otherwise symmetric positions.
type Table struct {
	squares [256][pieceCodes]Key
	side    Key
}

// New creates a Table filled with uniformly distributed 32-bit values
// from a fresh random source seeded with the current time.
func New() *Table {
	return NewSeeded(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSeeded creates a Table using the given random source, useful for
// deterministic tests.
func NewSeeded(r *rand.Rand) *Table {
	t := &Table{}
	for sq := 0; sq < 256; sq++ {
		for pc := 0; pc < pieceCodes; pc++ {
			t.squares[sq][pc] = Key(r.Uint32())
		}
	}
	t.side = Key(r.Uint32())
	return t
}

// PieceKey returns the key for a piece standing on a square.
func (t *Table) PieceKey(sq types.Square, p types.Piece) Key {
	return t.squares[sq][p]
}

// SideKey returns the key XORed into the hash whenever the side to move
// changes.
func (t *Table) SideKey() Key {
	return t.side
}
