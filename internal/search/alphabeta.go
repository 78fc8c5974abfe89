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

package search

import (
	"time"

	"github.com/frankkopp/xqengine/internal/board"
	"github.com/frankkopp/xqengine/internal/config"
	"github.com/frankkopp/xqengine/internal/movegen"
	"github.com/frankkopp/xqengine/internal/transpositiontable"
	"github.com/frankkopp/xqengine/internal/types"
)

// pollTimeout checks the wall-clock deadline every TimeCheckInterval
// nodes and latches s.aborted once it has passed. Checking by a node
// count rather than on every node keeps time.Now() off the hottest
// part of the search.
func (s *Search) pollTimeout() {
	if s.nodes%config.Settings.Search.TimeCheckInterval == 0 && time.Now().After(s.stopTime) {
		s.aborted = true
	}
}

// search is the negamax/PVS core of the engine. It returns
// a score in [-20000, 20000] from the perspective of the side to move
// at pos. isNull marks a recursive call made to probe a null-move
// reduction, which must not itself try another null move.
func (s *Search) search(pos *board.Position, depth int, alpha, beta types.Value, ply int, isNull bool) types.Value {
	s.nodes++
	s.pollTimeout()
	if s.aborted {
		return alpha
	}

	inCheck := movegen.InCheck(pos, pos.Turn())

	var ttMove types.Move
	if config.Settings.Search.UseTT {
		if entry, ok := s.tt.Probe(pos.Hash()); ok {
			ttMove = entry.Move
			if int(entry.Depth) >= depth && !inCheck {
				switch entry.Bound {
				case transpositiontable.BoundExact:
					s.statistics.TTHits++
					return entry.Score
				case transpositiontable.BoundLower:
					if entry.Score >= beta {
						s.statistics.TTCuts++
						return entry.Score
					}
				case transpositiontable.BoundUpper:
					if entry.Score <= alpha {
						s.statistics.TTCuts++
						return entry.Score
					}
				}
			}
		} else {
			s.statistics.TTMisses++
		}
	}

	if depth <= 0 {
		if !inCheck {
			return s.quiescence(pos, alpha, beta)
		}
		depth = 1 // extend one ply to resolve a check rather than score a stale position
	}

	if config.Settings.Search.UseNullMove && !isNull && !inCheck && depth >= config.Settings.Search.NmpMinDepth {
		pos.MakeNullMove()
		v := -s.search(pos, depth-1-config.Settings.Search.NmpReduction, -beta, -beta+1, ply+1, true)
		pos.UndoNullMove()
		if s.aborted {
			return alpha
		}
		if v >= beta {
			s.statistics.NullMoveCuts++
			return beta
		}
	}

	moves := movegen.GenerateMoves(pos, false)
	ordered := movegen.OrderMoves(pos, moves, ttMove, ply, s.hist)

	originalAlpha := alpha
	legal := 0
	bestScore := types.ValueMin
	bestMove := types.MoveNone
	bound := transpositiontable.BoundUpper
	side := pos.Turn()

	for i, sm := range ordered {
		m := sm.Move
		captured := pos.MakeMove(m)
		if movegen.InCheck(pos, side) {
			pos.UndoMove(m, captured)
			continue
		}
		legal++

		var sc types.Value
		switch {
		case i == 0:
			sc = -s.search(pos, depth-1, -beta, -alpha, ply+1, false)
		default:
			sc = s.searchLaterMove(pos, depth, alpha, beta, ply, legal, captured.IsEmpty(), inCheck)
		}

		pos.UndoMove(m, captured)
		if s.aborted {
			return alpha
		}

		if sc > bestScore {
			bestScore, bestMove = sc, m
		}
		if sc > alpha {
			alpha, bound = sc, transpositiontable.BoundExact
		}
		if alpha >= beta {
			bound = transpositiontable.BoundLower
			if captured.IsEmpty() {
				if config.Settings.Search.UseKillers {
					s.hist.StoreKiller(ply, m)
				}
				if config.Settings.Search.UseHistory {
					s.hist.AddCutoff(side, m, depth)
				}
			}
			break
		}
	}

	if legal == 0 {
		if inCheck {
			s.statistics.Mates++
			return types.Value(-20000 + ply)
		}
		s.statistics.Stalemates++
		return types.ValueZero
	}

	if config.Settings.Search.UseTT && bestMove != types.MoveNone {
		storedBound := bound
		if bestScore <= originalAlpha {
			storedBound = transpositiontable.BoundUpper
		}
		s.tt.Store(pos.Hash(), depth, bestScore, storedBound, bestMove)
	}

	return bestScore
}

// searchLaterMove handles every move after the first in a node's move loop: a
// late-move-reduced, null-window probe, reduction lifted and re-tried
// on the window if it raised alpha, then a full-window PVS re-search if
// that still landed strictly inside (alpha, beta). Pulled out of search
// to keep the main move loop's control flow readable.
func (s *Search) searchLaterMove(pos *board.Position, depth int, alpha, beta types.Value, ply, legal int, isQuiet, inCheck bool) types.Value {
	r := 0
	if config.Settings.Search.UseLmr &&
		depth >= config.Settings.Search.LmrMinDepth &&
		legal > config.Settings.Search.LmrMinLegalMoves &&
		isQuiet && !inCheck {
		r = 1
		s.statistics.LmrReductions++
	}

	if !config.Settings.Search.UsePVS {
		sc := -s.search(pos, depth-1-r, -beta, -alpha, ply+1, false)
		if sc > alpha && r > 0 {
			s.statistics.LmrResearches++
			sc = -s.search(pos, depth-1, -beta, -alpha, ply+1, false)
		}
		return sc
	}

	sc := -s.search(pos, depth-1-r, -alpha-1, -alpha, ply+1, false)
	if sc > alpha && r > 0 {
		s.statistics.LmrResearches++
		sc = -s.search(pos, depth-1, -alpha-1, -alpha, ply+1, false)
	}
	if sc > alpha && sc < beta {
		sc = -s.search(pos, depth-1, -beta, -alpha, ply+1, false)
	}
	return sc
}

// quiescence extends the search past the nominal horizon through
// captures only, stopping once the position is quiet. Termination is
// guaranteed because every recursive call strictly reduces the piece
// count on the board.
func (s *Search) quiescence(pos *board.Position, alpha, beta types.Value) types.Value {
	s.nodes++
	s.pollTimeout()
	if s.aborted {
		return alpha
	}

	standPat := s.eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	side := pos.Turn()
	captures := movegen.GenerateMoves(pos, true)
	ordered := movegen.OrderMoves(pos, captures, types.MoveNone, 0, s.hist)

	for _, sm := range ordered {
		m := sm.Move
		captured := pos.MakeMove(m)
		if movegen.InCheck(pos, side) {
			pos.UndoMove(m, captured)
			continue
		}
		sc := -s.quiescence(pos, -beta, -alpha)
		pos.UndoMove(m, captured)
		if s.aborted {
			return alpha
		}
		if sc >= beta {
			return beta
		}
		if sc > alpha {
			alpha = sc
		}
	}
	return alpha
}
