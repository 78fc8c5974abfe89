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

// Package transpositiontable implements the engine's position cache: a
// fixed-size, power-of-two, open-addressed hash table mapping a
// Zobrist hash to the depth/score/bound/move last computed for it.
// Unlike a chess engine's table, there is no aging or generation
// counter - Xiangqi games in this engine are short searches against a
// single position at a time, and the design favours the simplicity of
// an always-replace policy over a depth-preferred one, per the
// prototype's own collision-is-harmless-noise contract.
package transpositiontable

import (
	"github.com/frankkopp/xqengine/internal/types"
	"github.com/frankkopp/xqengine/internal/zobrist"
)

// Bound mirrors types.ValueType, aliased here so callers of this
// package do not need to import types just to talk about bounds.
type Bound = types.ValueType

// Bound values.
const (
	BoundNone  = types.NoValueType
	BoundExact = types.Exact
	BoundLower = types.Lower
	BoundUpper = types.Upper
)

// Entry is one transposition table slot.
type Entry struct {
	Key   zobrist.Key
	Depth int8
	Score types.Value
	Bound Bound
	Move  types.Move
}

func (e *Entry) isEmpty() bool {
	return e.Bound == BoundNone
}

// Table is a fixed-size, power-of-two open-addressed transposition
// table. The low bits of the Zobrist key select the bucket, and the
// full 32-bit key kept in Entry.Key tells a bucket collision apart on
// Probe. Store always replaces the bucket's previous entry (per the
// design notes); a move taken from the table is re-validated for
// legality before it is ever trusted.
type Table struct {
	entries []Entry
	mask    uint64
}

// entrySize approximates sizeof(Entry) for sizing the table from a
// megabyte budget: 4(key as uint32)+1(depth)+4(score)+1(bound)+2(move), rounded up.
const entrySize = 16

// New creates a Table sized to hold roughly sizeMB megabytes of
// entries, rounded down to the nearest power of two slot count.
func New(sizeMB int) *Table {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	wanted := uint64(sizeMB) * 1024 * 1024 / entrySize
	size := uint64(1)
	for size*2 <= wanted {
		size *= 2
	}
	if size == 0 {
		size = 1
	}
	return &Table{
		entries: make([]Entry, size),
		mask:    size - 1,
	}
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.mask
}

// Probe looks up key. ok is false if the slot is empty or holds a
// different key (a collision evicted the entry this query wanted).
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	e := &t.entries[t.index(key)]
	if e.isEmpty() || e.Key != key {
		return Entry{}, false
	}
	return *e, true
}

// Store writes an entry for key, unconditionally replacing whatever
// was in the slot before (always-replace, per the design notes).
func (t *Table) Store(key zobrist.Key, depth int, score types.Value, bound Bound, move types.Move) {
	t.entries[t.index(key)] = Entry{
		Key:   key,
		Depth: int8(depth),
		Score: score,
		Bound: bound,
		Move:  move,
	}
}

// Clear empties every slot, used by Engine.Reset between games.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Len returns the number of slots in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
