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

package movegen

import (
	"github.com/frankkopp/xqengine/internal/board"
	"github.com/frankkopp/xqengine/internal/types"
)

// InCheck reports whether side's king is currently attacked. Rather
// than generating the opponent's full pseudo-legal move list and
// testing each one against the king square, it walks the small set of
// reverse attack rays a king can be hit from: the flying-general file,
// the four orthogonal slide rays (rook directly, cannon across a
// single screen), the eight horse leg-checked offsets and the up to
// three squares an enemy pawn can attack it from. This
// is the check the search calls after every single move it makes, so
// it is written to touch only the handful of squares that could
// possibly matter rather than the whole board.
func InCheck(pos *board.Position, side types.Color) bool {
	if cached, ok := pos.CachedCheck(); ok && side == pos.Turn() {
		return cached
	}
	result := computeInCheck(pos, side)
	if side == pos.Turn() {
		pos.SetCheckCache(result)
	}
	return result
}

func computeInCheck(pos *board.Position, side types.Color) bool {
	king := pos.KingSquare(side)
	enemy := side.Flip()

	if flyingGeneralCheck(pos, king) {
		return true
	}
	if slidingCheck(pos, king, enemy) {
		return true
	}
	if horseCheck(pos, king, enemy) {
		return true
	}
	if pawnCheck(pos, king, enemy, side) {
		return true
	}
	return false
}

// flyingGeneralCheck implements the rule that the two generals may
// never face each other on an open file: walk the king's column both
// ways and see whether the first piece encountered is the enemy king.
func flyingGeneralCheck(pos *board.Position, king types.Square) bool {
	row, col := king.Row(), king.Col()
	for _, dr := range [2]int{1, -1} {
		for r := row + dr; r >= 0 && r < types.NumRows; r += dr {
			p := pos.PieceAt(types.NewSquare(r, col))
			if p.IsEmpty() {
				continue
			}
			if p.TypeOf() == types.King {
				return true
			}
			break
		}
	}
	return false
}

var slideDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// slidingCheck covers rook (first piece on the ray is an enemy rook)
// and cannon (second piece on the ray, across exactly one screen, is
// an enemy cannon) attacks.
func slidingCheck(pos *board.Position, king types.Square, enemy types.Color) bool {
	row, col := king.Row(), king.Col()
	for _, d := range slideDirs {
		count := 0
		for r, c := row+d[0], col+d[1]; r >= 0 && r < types.NumRows && c >= 0 && c < types.NumCols; r, c = r+d[0], c+d[1] {
			p := pos.PieceAt(types.NewSquare(r, c))
			if p.IsEmpty() {
				continue
			}
			count++
			if count == 1 {
				if p.ColorOf() == enemy && p.TypeOf() == types.Rook {
					return true
				}
			} else {
				if p.ColorOf() == enemy && p.TypeOf() == types.Cannon {
					return true
				}
				break
			}
		}
	}
	return false
}

type horseOffset struct {
	dr, dc       int
	legDr, legDc int
}

var horseOffsets = [8]horseOffset{
	{2, 1, 1, 0}, {2, -1, 1, 0}, {-2, 1, -1, 0}, {-2, -1, -1, 0},
	{1, 2, 0, 1}, {-1, 2, 0, 1}, {1, -2, 0, -1}, {-1, -2, 0, -1},
}

// horseCheck looks for an enemy horse standing at one of the eight
// squares that could jump to king, with its leg square unblocked.
func horseCheck(pos *board.Position, king types.Square, enemy types.Color) bool {
	row, col := king.Row(), king.Col()
	for _, o := range horseOffsets {
		hr, hc := row-o.dr, col-o.dc
		if hr < 0 || hr >= types.NumRows || hc < 0 || hc >= types.NumCols {
			continue
		}
		from := types.NewSquare(hr, hc)
		p := pos.PieceAt(from)
		if p.IsEmpty() || p.ColorOf() != enemy || p.TypeOf() != types.Horse {
			continue
		}
		legR, legC := hr+o.legDr, hc+o.legDc
		if legR < 0 || legR >= types.NumRows || legC < 0 || legC >= types.NumCols {
			continue
		}
		if pos.PieceAt(types.NewSquare(legR, legC)).IsEmpty() {
			return true
		}
	}
	return false
}

// pawnCheck looks for an enemy pawn on one of the squares from which
// it could attack king: always the square directly behind king in the
// enemy's direction of travel, and - once the enemy pawn has crossed
// the river - the squares directly beside king too.
func pawnCheck(pos *board.Position, king types.Square, enemy types.Color, side types.Color) bool {
	row, col := king.Row(), king.Col()
	forwardDr := forwardDirection(enemy)

	fr := row - forwardDr
	if fr >= 0 && fr < types.NumRows {
		if isEnemyPawn(pos, types.NewSquare(fr, col), enemy) {
			return true
		}
	}
	for _, dc := range [2]int{1, -1} {
		c := col + dc
		if c < 0 || c >= types.NumCols {
			continue
		}
		sq := types.NewSquare(row, c)
		if !isEnemyPawn(pos, sq, enemy) {
			continue
		}
		if hasCrossedRiver(enemy, row) {
			return true
		}
	}
	_ = side
	return false
}

func isEnemyPawn(pos *board.Position, sq types.Square, enemy types.Color) bool {
	p := pos.PieceAt(sq)
	return !p.IsEmpty() && p.ColorOf() == enemy && p.TypeOf() == types.Pawn
}

// forwardDirection is the row delta a pawn of the given color advances
// by: Red moves towards increasing rows, Black towards decreasing
// rows.
func forwardDirection(c types.Color) int {
	if c == types.Red {
		return 1
	}
	return -1
}

// hasCrossedRiver reports whether a pawn of color c standing on the
// given row has crossed the river (rows 0..4 are Red's side, 5..9
// Black's).
func hasCrossedRiver(c types.Color, row int) bool {
	if c == types.Red {
		return row >= 5
	}
	return row < 5
}

// HasCrossedRiver is the exported form of hasCrossedRiver, reused by
// the evaluator so the river boundary is defined in exactly one place.
func HasCrossedRiver(c types.Color, row int) bool {
	return hasCrossedRiver(c, row)
}
