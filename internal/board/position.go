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

// Package board holds the mutable Xiangqi position: the 256-entry 0x88
// board array, king locations, side to move and the Zobrist hash kept
// incrementally in sync with every make/undo. There is no promotion,
// castling or en-passant in Xiangqi, so unlike the make/undo pair of a
// western chess engine, UndoMove needs no history stack - a move plus
// the piece it captured is everything it needs to restore the exact
// prior state. The hash log a Position keeps serves repetition checks only.
package board

import (
	"strings"

	"github.com/frankkopp/xqengine/internal/types"
	"github.com/frankkopp/xqengine/internal/zobrist"
)

// Position is one Xiangqi board plus the bookkeeping the search needs:
// whose move it is, where both kings stand (checked constantly by the
// in-check / flying-general tests) and the running Zobrist hash.
type Position struct {
	squares  [256]types.Piece
	turn     types.Color
	kingSq   [types.ColorLength]types.Square
	zob      *zobrist.Table
	hash     zobrist.Key
	ply      int
	hashLog  []zobrist.Key // hash after each ply played so far, for repetition support

	// hasCheck caches the result of InCheck(turn) for the current
	// position. It is a tri-state: checkTBD until first queried, then
	// checkTrue/checkFalse. Every call to MakeMove/UndoMove/MakeNull/
	// UndoNull invalidates it back to checkTBD since whether the side to
	// move is in check can change on every ply.
	hasCheck int8
}

const (
	checkTBD int8 = iota
	checkTrue
	checkFalse
)

// NewPosition creates an empty position bound to the given Zobrist
// table. Callers must call LoadBoard before using it.
func NewPosition(zob *zobrist.Table) *Position {
	p := &Position{zob: zob}
	for i := range p.kingSq {
		p.kingSq[i] = types.SqInvalid
	}
	return p
}

// PieceAt returns the piece standing on sq (types.PieceNone if empty or
// off board).
func (p *Position) PieceAt(sq types.Square) types.Piece {
	return p.squares[sq]
}

// Turn returns the side to move.
func (p *Position) Turn() types.Color {
	return p.turn
}

// Hash returns the current Zobrist hash.
func (p *Position) Hash() zobrist.Key {
	return p.hash
}

// KingSquare returns the square of the king of the given color.
func (p *Position) KingSquare(c types.Color) types.Square {
	return p.kingSq[c]
}

// Ply returns the number of half-moves played since LoadBoard.
func (p *Position) Ply() int {
	return p.ply
}

// LoadBoard resets the position to the given 10-row x 9-column board
// (row 0 is Red's back rank, as in the starting array) with the given
// side to move, and recomputes the Zobrist hash from scratch.
func (p *Position) LoadBoard(rows [types.NumRows][types.NumCols]types.Piece, sideToMove types.Color) {
	for i := range p.squares {
		p.squares[i] = types.PieceNone
	}
	for i := range p.kingSq {
		p.kingSq[i] = types.SqInvalid
	}
	for r := 0; r < types.NumRows; r++ {
		for c := 0; c < types.NumCols; c++ {
			piece := rows[r][c]
			if piece.IsEmpty() {
				continue
			}
			sq := types.NewSquare(r, c)
			p.squares[sq] = piece
			if piece.TypeOf() == types.King {
				p.kingSq[piece.ColorOf()] = sq
			}
		}
	}
	p.turn = sideToMove
	p.ply = 0
	p.hashLog = p.hashLog[:0]
	p.recomputeHash()
	p.hasCheck = checkTBD
}

// RebindZobrist switches the position to a new Zobrist table and
// recomputes the hash under it, used by Engine.Reset to reseed the
// hashing scheme (and so vary move preference on symmetric choices)
// without disturbing the board itself.
func (p *Position) RebindZobrist(zob *zobrist.Table) {
	p.zob = zob
	p.recomputeHash()
}

func (p *Position) recomputeHash() {
	var h zobrist.Key
	for sq := types.Square(0); ; sq++ {
		if sq.IsValid() {
			if piece := p.squares[sq]; !piece.IsEmpty() {
				h ^= p.zob.PieceKey(sq, piece)
			}
		}
		if sq == 0xFF {
			break
		}
	}
	if p.turn == types.Black {
		h ^= p.zob.SideKey()
	}
	p.hash = h
}

// MakeMove plays m on the board and returns the piece it captured
// (types.PieceNone for a quiet move). The caller must hold onto that
// value and pass it back to UndoMove to reverse the move.
func (p *Position) MakeMove(m types.Move) types.Piece {
	from, to := m.From(), m.To()
	piece := p.squares[from]
	captured := p.squares[to]

	p.hash ^= p.zob.PieceKey(from, piece)
	if !captured.IsEmpty() {
		p.hash ^= p.zob.PieceKey(to, captured)
	}
	p.hash ^= p.zob.PieceKey(to, piece)

	p.squares[from] = types.PieceNone
	p.squares[to] = piece
	if piece.TypeOf() == types.King {
		p.kingSq[piece.ColorOf()] = to
	}

	p.turn = p.turn.Flip()
	p.hash ^= p.zob.SideKey()
	p.ply++
	p.hashLog = append(p.hashLog, p.hash)
	p.hasCheck = checkTBD

	return captured
}

// UndoMove reverses a move previously played with MakeMove. captured
// must be the exact value MakeMove returned for this move.
func (p *Position) UndoMove(m types.Move, captured types.Piece) {
	p.hashLog = p.hashLog[:len(p.hashLog)-1]
	p.ply--
	p.turn = p.turn.Flip()
	p.hash ^= p.zob.SideKey()

	from, to := m.From(), m.To()
	piece := p.squares[to]

	p.hash ^= p.zob.PieceKey(to, piece)
	if !captured.IsEmpty() {
		p.hash ^= p.zob.PieceKey(to, captured)
	}
	p.hash ^= p.zob.PieceKey(from, piece)

	p.squares[to] = captured
	p.squares[from] = piece
	if piece.TypeOf() == types.King {
		p.kingSq[piece.ColorOf()] = from
	}
	p.hasCheck = checkTBD
}

// MakeNullMove passes the move without touching the board, used by
// null-move pruning.
func (p *Position) MakeNullMove() {
	p.turn = p.turn.Flip()
	p.hash ^= p.zob.SideKey()
	p.ply++
	p.hashLog = append(p.hashLog, p.hash)
	p.hasCheck = checkTBD
}

// UndoNullMove reverses MakeNullMove.
func (p *Position) UndoNullMove() {
	p.hashLog = p.hashLog[:len(p.hashLog)-1]
	p.ply--
	p.turn = p.turn.Flip()
	p.hash ^= p.zob.SideKey()
	p.hasCheck = checkTBD
}

// SetCheckCache stores the result of an InCheck(Turn()) computation the
// caller already made, so repeated queries this ply are free. Clear
// this by playing/undoing a move (done automatically).
func (p *Position) SetCheckCache(inCheck bool) {
	if inCheck {
		p.hasCheck = checkTrue
	} else {
		p.hasCheck = checkFalse
	}
}

// CachedCheck returns the cached in-check state for the side to move:
// (value, true) if known, (false, false) if it still needs computing.
func (p *Position) CachedCheck() (bool, bool) {
	switch p.hasCheck {
	case checkTrue:
		return true, true
	case checkFalse:
		return false, true
	default:
		return false, false
	}
}

// IsRepetition reports whether the current hash has occurred at least
// n times (including the current one) in the hash log recorded since
// the last LoadBoard. Not used by the search by default (Xiangqi
// repetition rules are out of scope) but kept so a future ko/perpetual
// check rule has a ready-made signal to build on.
func (p *Position) IsRepetition(n int) bool {
	if len(p.hashLog) == 0 {
		return false
	}
	count := 0
	cur := p.hash
	for i := len(p.hashLog) - 1; i >= 0; i-- {
		if p.hashLog[i] == cur {
			count++
			if count >= n {
				return true
			}
		}
	}
	return false
}

// String renders the board as nine columns of ten rows using the same
// single-letter piece notation as types.Piece.Letter, red uppercase,
// black lowercase, row 9 (black's back rank) printed first.
func (p *Position) String() string {
	var b strings.Builder
	for r := types.NumRows - 1; r >= 0; r-- {
		for c := 0; c < types.NumCols; c++ {
			b.WriteString(p.squares[types.NewSquare(r, c)].Letter())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString(p.turn.String())
	b.WriteString(" to move\n")
	return b.String()
}
