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
	"github.com/frankkopp/xqengine/internal/config"
	"github.com/frankkopp/xqengine/internal/history"
	"github.com/frankkopp/xqengine/internal/types"
)

// Ordering bonuses. These are spread far enough apart that a capture's
// MVV-LVA tiebreak can never cross into the next bracket up. A quiet
// move's history score is not capped, so a large enough history count
// can rank a quiet move above a killer.
const (
	scoreTT      int32 = 1_000_000
	scoreCapture int32 = 500_000
	scoreKiller0 int32 = 400_000
	scoreKiller1 int32 = 300_000
)

// ScoredMove pairs a move with its ordering score so the search can
// sort once and then walk the list without re-deriving priority.
type ScoredMove struct {
	Move  types.Move
	Score int32
}

// OrderMoves scores every move in moves for search ordering at the
// given ply: the transposition table's remembered best move first,
// then captures ranked by 16 x victim value minus attacker value (MVV-LVA),
// then the two killer moves recorded for this ply, then quiet moves by
// history score. It returns the moves selection-sorted best score
// first.
func OrderMoves(pos *board.Position, moves []types.Move, ttMove types.Move, ply int, hist *history.Tables) []ScoredMove {
	scored := make([]ScoredMove, len(moves))
	var killer0, killer1 types.Move
	if config.Settings.Search.UseKillers {
		killer0, killer1 = hist.Killers(ply)
	}
	side := pos.Turn()

	for i, m := range moves {
		scored[i] = ScoredMove{Move: m, Score: scoreMove(pos, m, ttMove, killer0, killer1, side, hist)}
	}

	selectionSortDescending(scored)
	return scored
}

// scoreMove follows the priority table: TT move, then captures ranked
// by victim value shifted above attacker value (MVV-LVA), then the two
// killer slots for this ply, then quiet moves by history score.
func scoreMove(pos *board.Position, m, ttMove, killer0, killer1 types.Move, side types.Color, hist *history.Tables) int32 {
	if m == ttMove {
		return scoreTT
	}
	victim := pos.PieceAt(m.To())
	if !victim.IsEmpty() {
		attacker := pos.PieceAt(m.From())
		return scoreCapture + int32(victim.TypeOf().ValueOf())<<4 - int32(attacker.TypeOf().ValueOf())
	}
	if m == killer0 {
		return scoreKiller0
	}
	if m == killer1 {
		return scoreKiller1
	}
	if !config.Settings.Search.UseHistory {
		return 0
	}
	return hist.History(side, m)
}

// selectionSortDescending sorts scored in place, highest score first.
// A selection sort is used deliberately instead of sort.Slice: move
// lists here are at most a few dozen entries, so the O(n^2) comparison
// count is cheaper than the allocation and interface-dispatch overhead
// of the standard sort package on the search's hottest path.
func selectionSortDescending(scored []ScoredMove) {
	for i := 0; i < len(scored)-1; i++ {
		best := i
		for j := i + 1; j < len(scored); j++ {
			if scored[j].Score > scored[best].Score {
				best = j
			}
		}
		if best != i {
			scored[i], scored[best] = scored[best], scored[i]
		}
	}
}
