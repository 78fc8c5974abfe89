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

// Package movegen generates pseudo-legal Xiangqi moves piece by piece
// and orders them for the search. Legality (does the move leave its
// own king in check) is left to the caller, which already has to make
// and unmake the move to run InCheck anyway - generating only
// pseudo-legal moves here avoids doing that work twice.
package movegen

import (
	"github.com/frankkopp/xqengine/internal/board"
	"github.com/frankkopp/xqengine/internal/types"
)

func inPalace(c types.Color, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	if c == types.Red {
		return row >= 0 && row <= 2
	}
	return row >= 7 && row <= 9
}

func onOwnSide(c types.Color, row int) bool {
	if c == types.Red {
		return row <= 4
	}
	return row >= 5
}

// GenerateMoves generates every pseudo-legal move for the side to move
// in pos. When capturesOnly is set only moves landing on an enemy
// piece are returned (used to drive quiescence search).
func GenerateMoves(pos *board.Position, capturesOnly bool) []types.Move {
	moves := make([]types.Move, 0, 48)
	side := pos.Turn()
	for r := 0; r < types.NumRows; r++ {
		for c := 0; c < types.NumCols; c++ {
			sq := types.NewSquare(r, c)
			p := pos.PieceAt(sq)
			if p.IsEmpty() || p.ColorOf() != side {
				continue
			}
			moves = genPieceMoves(pos, sq, p, moves, capturesOnly)
		}
	}
	return moves
}

func genPieceMoves(pos *board.Position, from types.Square, p types.Piece, moves []types.Move, capturesOnly bool) []types.Move {
	switch p.TypeOf() {
	case types.King:
		return genKingMoves(pos, from, p, moves, capturesOnly)
	case types.Advisor:
		return genAdvisorMoves(pos, from, p, moves, capturesOnly)
	case types.Elephant:
		return genElephantMoves(pos, from, p, moves, capturesOnly)
	case types.Horse:
		return genHorseMoves(pos, from, p, moves, capturesOnly)
	case types.Rook:
		return genSlideMoves(pos, from, p, moves, capturesOnly, false)
	case types.Cannon:
		return genSlideMoves(pos, from, p, moves, capturesOnly, true)
	case types.Pawn:
		return genPawnMoves(pos, from, p, moves, capturesOnly)
	default:
		return moves
	}
}

func tryAppend(pos *board.Position, from, to types.Square, p types.Piece, moves []types.Move, capturesOnly bool) []types.Move {
	target := pos.PieceAt(to)
	if !target.IsEmpty() {
		if target.ColorOf() == p.ColorOf() {
			return moves
		}
		return append(moves, types.NewMove(from, to))
	}
	if capturesOnly {
		return moves
	}
	return append(moves, types.NewMove(from, to))
}

var kingSteps = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func genKingMoves(pos *board.Position, from types.Square, p types.Piece, moves []types.Move, capturesOnly bool) []types.Move {
	row, col := from.Row(), from.Col()
	for _, s := range kingSteps {
		r, c := row+s[0], col+s[1]
		if !inPalace(p.ColorOf(), r, c) {
			continue
		}
		moves = tryAppend(pos, from, types.NewSquare(r, c), p, moves, capturesOnly)
	}
	return moves
}

var advisorSteps = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func genAdvisorMoves(pos *board.Position, from types.Square, p types.Piece, moves []types.Move, capturesOnly bool) []types.Move {
	row, col := from.Row(), from.Col()
	for _, s := range advisorSteps {
		r, c := row+s[0], col+s[1]
		if !inPalace(p.ColorOf(), r, c) {
			continue
		}
		moves = tryAppend(pos, from, types.NewSquare(r, c), p, moves, capturesOnly)
	}
	return moves
}

type elephantStep struct{ dr, dc, eyeDr, eyeDc int }

var elephantSteps = [4]elephantStep{
	{2, 2, 1, 1}, {2, -2, 1, -1}, {-2, 2, -1, 1}, {-2, -2, -1, -1},
}

func genElephantMoves(pos *board.Position, from types.Square, p types.Piece, moves []types.Move, capturesOnly bool) []types.Move {
	row, col := from.Row(), from.Col()
	for _, s := range elephantSteps {
		r, c := row+s.dr, col+s.dc
		if r < 0 || r >= types.NumRows || c < 0 || c >= types.NumCols {
			continue
		}
		if !onOwnSide(p.ColorOf(), r) {
			continue
		}
		eyeR, eyeC := row+s.eyeDr, col+s.eyeDc
		if !pos.PieceAt(types.NewSquare(eyeR, eyeC)).IsEmpty() {
			continue
		}
		moves = tryAppend(pos, from, types.NewSquare(r, c), p, moves, capturesOnly)
	}
	return moves
}

func genHorseMoves(pos *board.Position, from types.Square, p types.Piece, moves []types.Move, capturesOnly bool) []types.Move {
	row, col := from.Row(), from.Col()
	for _, o := range horseOffsets {
		r, c := row+o.dr, col+o.dc
		if r < 0 || r >= types.NumRows || c < 0 || c >= types.NumCols {
			continue
		}
		legR, legC := row+o.legDr, col+o.legDc
		if !pos.PieceAt(types.NewSquare(legR, legC)).IsEmpty() {
			continue
		}
		moves = tryAppend(pos, from, types.NewSquare(r, c), p, moves, capturesOnly)
	}
	return moves
}

// genSlideMoves generates rook and cannon moves. A rook slides in a
// straight line until blocked, capturing the blocker if it is an
// enemy. A cannon slides the same way for quiet moves but must jump
// exactly one piece (of either color) before it may capture, and can
// only capture the very next piece found past that screen.
func genSlideMoves(pos *board.Position, from types.Square, p types.Piece, moves []types.Move, capturesOnly bool, isCannon bool) []types.Move {
	row, col := from.Row(), from.Col()
	for _, d := range slideDirs {
		screenSeen := false
		for r, c := row+d[0], col+d[1]; r >= 0 && r < types.NumRows && c >= 0 && c < types.NumCols; r, c = r+d[0], c+d[1] {
			to := types.NewSquare(r, c)
			target := pos.PieceAt(to)
			if target.IsEmpty() {
				if isCannon {
					if !screenSeen && !capturesOnly {
						moves = append(moves, types.NewMove(from, to))
					}
				} else {
					if !capturesOnly {
						moves = append(moves, types.NewMove(from, to))
					}
				}
				continue
			}
			if !isCannon {
				if target.ColorOf() != p.ColorOf() {
					moves = append(moves, types.NewMove(from, to))
				}
				break
			}
			if !screenSeen {
				screenSeen = true
				continue
			}
			if target.ColorOf() != p.ColorOf() {
				moves = append(moves, types.NewMove(from, to))
			}
			break
		}
	}
	return moves
}

func genPawnMoves(pos *board.Position, from types.Square, p types.Piece, moves []types.Move, capturesOnly bool) []types.Move {
	row, col := from.Row(), from.Col()
	dr := forwardDirection(p.ColorOf())
	fr := row + dr
	if fr >= 0 && fr < types.NumRows {
		moves = tryAppend(pos, from, types.NewSquare(fr, col), p, moves, capturesOnly)
	}
	if hasCrossedRiver(p.ColorOf(), row) {
		for _, dc := range [2]int{1, -1} {
			c := col + dc
			if c < 0 || c >= types.NumCols {
				continue
			}
			moves = tryAppend(pos, from, types.NewSquare(row, c), p, moves, capturesOnly)
		}
	}
	return moves
}

// GenerateLegalMoves filters GenerateMoves down to moves that do not
// leave the mover's own king in check.
func GenerateLegalMoves(pos *board.Position, capturesOnly bool) []types.Move {
	pseudo := GenerateMoves(pos, capturesOnly)
	side := pos.Turn()
	legal := make([]types.Move, 0, len(pseudo))
	for _, m := range pseudo {
		captured := pos.MakeMove(m)
		if !InCheck(pos, side) {
			legal = append(legal, m)
		}
		pos.UndoMove(m, captured)
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one
// legal move, short-circuiting as soon as it finds one - used to tell
// checkmate/stalemate apart from an ordinary position without paying
// for a full legal move list.
func HasLegalMove(pos *board.Position) bool {
	pseudo := GenerateMoves(pos, false)
	side := pos.Turn()
	for _, m := range pseudo {
		captured := pos.MakeMove(m)
		stillInCheck := InCheck(pos, side)
		pos.UndoMove(m, captured)
		if !stillInCheck {
			return true
		}
	}
	return false
}
