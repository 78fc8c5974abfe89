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

// Package evaluator contains the static evaluation function: material
// plus small piece-square adjustments, returned from the perspective
// of the side to move. There is no pawn structure, mobility or king
// safety evaluation here - Xiangqi's material values already dominate
// the score, and the search is what does the heavy lifting.
package evaluator

import (
	"github.com/frankkopp/xqengine/internal/board"
	"github.com/frankkopp/xqengine/internal/config"
	"github.com/frankkopp/xqengine/internal/movegen"
	"github.com/frankkopp/xqengine/internal/types"
)

const centralFile = 4

func isCentralThree(col int) bool {
	return col >= 3 && col <= 5
}

func isKingHome(c types.Color, row int) bool {
	if c == types.Red {
		return row <= 1
	}
	return row >= types.NumRows-2
}

// Evaluator evaluates a Position statically, with no search. It holds
// no per-position state - Evaluate is a pure function of the board -
// but is still a type (rather than a free function) so its call sites
// read the same way the rest of the engine's components do and so a
// future cache or config snapshot has somewhere to live.
type Evaluator struct{}

// NewEvaluator creates an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores pos from the perspective of the side to move:
// positive means the side to move stands better.
func (e *Evaluator) Evaluate(pos *board.Position) types.Value {
	var score int32
	for r := 0; r < types.NumRows; r++ {
		for c := 0; c < types.NumCols; c++ {
			sq := types.NewSquare(r, c)
			p := pos.PieceAt(sq)
			if p.IsEmpty() {
				continue
			}
			v := pieceScore(p, r, c)
			if p.ColorOf() == types.Red {
				score += v
			} else {
				score -= v
			}
		}
	}

	if config.Settings.Eval.UseTieBreakNoise {
		score += int32(pos.Hash())&0x1F - 16
	}

	if pos.Turn() == types.Black {
		score = -score
	}
	return types.Value(score)
}

func pieceScore(p types.Piece, row, col int) int32 {
	c := p.ColorOf()
	score := int32(p.TypeOf().ValueOf())

	switch p.TypeOf() {
	case types.Pawn:
		advanced := row
		if c == types.Black {
			advanced = types.NumRows - 1 - row
		}
		score += int32(advanced) * int32(config.Settings.Eval.PawnAdvanceBonus)
		if movegen.HasCrossedRiver(c, row) {
			score += int32(config.Settings.Eval.PawnCrossedBonus)
			if isCentralThree(col) {
				score += int32(config.Settings.Eval.PawnCentralBonus)
			}
		}
	case types.Horse:
		if col == centralFile {
			score += int32(config.Settings.Eval.HorseCentralBonus)
		}
		if movegen.HasCrossedRiver(c, row) {
			score += int32(config.Settings.Eval.HorseCrossedBonus)
		}
	case types.Cannon:
		if col == centralFile {
			score += int32(config.Settings.Eval.CannonCentralBonus)
		}
		if movegen.HasCrossedRiver(c, row) {
			score += int32(config.Settings.Eval.CannonCrossedBonus)
		}
	case types.Rook:
		if movegen.HasCrossedRiver(c, row) {
			score += int32(config.Settings.Eval.RookCrossedBonus)
		}
		if isCentralThree(col) {
			score += int32(config.Settings.Eval.RookCentralBonus)
		}
	case types.King:
		if isKingHome(c, row) {
			score += int32(config.Settings.Eval.KingHomeBonus)
		} else {
			score += int32(config.Settings.Eval.KingAwayFromHomeMalus)
		}
	}
	return score
}
