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

// Package search implements the engine's move search: iterative
// deepening over a negamax/PVS core with null-move pruning, late move
// reduction, aspiration windows, a transposition table and a
// quiescence extension. A Search owns the tables that persist across
// calls (transposition table, killer/history heuristics) so repeated
// queries against a slowly changing position keep benefiting from
// earlier work: tt and history stay alive between StartSearch calls
// within one game.
package search

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/semaphore"

	golog "github.com/op/go-logging"

	"github.com/frankkopp/xqengine/internal/board"
	"github.com/frankkopp/xqengine/internal/config"
	"github.com/frankkopp/xqengine/internal/evaluator"
	"github.com/frankkopp/xqengine/internal/history"
	"github.com/frankkopp/xqengine/internal/logging"
	"github.com/frankkopp/xqengine/internal/movegen"
	"github.com/frankkopp/xqengine/internal/transpositiontable"
	"github.com/frankkopp/xqengine/internal/types"
)

// Result bundles everything one search produces: the chosen move, the
// second move of the principal variation (kept under the name Reply
// since Xiangqi has no pondering concept but the line itself is a
// legitimate by-product), the score from the mover's perspective, the
// deepest fully completed depth and the node count.
type Result struct {
	BestMove types.Move
	Reply    types.Move
	Score    types.Value
	Depth    int
	Nodes    uint64
	Aborted  bool
}

// Search runs iterative-deepening alpha-beta searches against
// positions handed to it. Its transposition table and move-ordering
// heuristics persist across calls until NewGame resets them; only one
// search may be in flight at a time, enforced by isRunning.
type Search struct {
	log  *golog.Logger
	slog *golog.Logger

	tt   *transpositiontable.Table
	eval *evaluator.Evaluator
	hist *history.Tables

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	nodes    uint64
	stopTime time.Time
	aborted  bool

	statistics Statistics
	lastResult Result
}

// NewSearch creates a Search with a fresh transposition table and
// empty history/killer tables.
func NewSearch() *Search {
	return &Search{
		log:           logging.GetLog(),
		slog:          logging.GetSearchLog(),
		tt:            transpositiontable.New(config.Settings.Search.TTSize),
		eval:          evaluator.NewEvaluator(),
		hist:          history.NewTables(),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
	}
}

// NewGame clears the transposition table and move-ordering heuristics,
// waiting for any in-flight search to finish first. Called between games so a new
// game never benefits (or suffers) from the previous one's cached
// scores.
func (s *Search) NewGame() {
	s.WaitWhileSearching()
	s.tt.Clear()
	s.hist.Clear()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any in-flight search completes.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// LastResult returns the Result produced by the most recently completed
// search.
func (s *Search) LastResult() Result {
	return s.lastResult
}

// Statistics returns a snapshot of the most recently completed search's
// node and cutoff counters.
func (s *Search) Statistics() Statistics {
	return s.statistics
}

// StartSearch copies pos and runs the search on that copy in a
// goroutine, returning once the copy has been taken and the run has
// started. Call WaitWhileSearching (or IsSearching) to find out when it
// finishes and LastResult to read what it found. Running the search
// against a private copy means the caller's Position is never mutated
// by the search, and a caller that starts a second search before the
// first finishes blocks on isRunning inside run rather than racing it.
func (s *Search) StartSearch(pos board.Position, limits Limits) {
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	go s.run(pos, limits)
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.initSemaphore.Release(1)
}

func (s *Search) run(pos board.Position, limits Limits) {
	_ = s.isRunning.Acquire(context.Background(), 1)
	defer s.isRunning.Release(1)

	s.nodes = 0
	s.aborted = false
	s.statistics = Statistics{}
	started := time.Now()
	s.stopTime = started.Add(limits.MoveTime)

	s.initSemaphore.Release(1)

	s.lastResult = s.iterativeDeepening(&pos, limits)
	s.statistics.Nodes = s.nodes
	s.statistics.Depth = s.lastResult.Depth
	s.statistics.Elapsed = time.Since(started)
	s.lastResult.Nodes = s.nodes
}

// FindBestMove is the synchronous convenience form of
// StartSearch+WaitWhileSearching, used directly by tests and by any
// caller that has no use for the asynchronous form.
func (s *Search) FindBestMove(pos board.Position, limits Limits) Result {
	s.StartSearch(pos, limits)
	s.WaitWhileSearching()
	return s.LastResult()
}

// iterativeDeepening runs the aspiration-window depth loop: search one
// depth inside a window centred on the previous iteration's score,
// re-search the full window on a miss, and stop at maxDepth, the
// wall-clock deadline, or a proven mate score.
func (s *Search) iterativeDeepening(pos *board.Position, limits Limits) Result {
	alpha, beta := types.ValueMin, types.ValueMax
	var score types.Value
	depthReached := 0

	maxDepth := limits.MaxDepth
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	for depth := 1; depth <= maxDepth; depth++ {
		sc := s.search(pos, depth, alpha, beta, 0, false)
		if !s.aborted && config.Settings.Search.UseAspiration && (sc <= alpha || sc >= beta) {
			sc = s.search(pos, depth, types.ValueMin, types.ValueMax, 0, false)
		}
		if s.aborted {
			break
		}

		score = sc
		depthReached = depth
		margin := types.Value(config.Settings.Search.AspirationMargin)
		alpha, beta = sc-margin, sc+margin

		if s.slog != nil {
			s.slog.Debugf("depth=%d score=%s nodes=%d", depth, sc, s.nodes)
		}
		if sc.IsCheckMateValue() {
			break
		}
	}

	best, reply := s.rootPrincipalVariation(pos)
	if best == types.MoveNone {
		best = s.anyLegalMove(pos)
	}

	return Result{
		BestMove: best,
		Reply:    reply,
		Score:    score,
		Depth:    depthReached,
		Aborted:  s.aborted,
	}
}

// rootPrincipalVariation walks the transposition table two plies deep
// from pos to recover the move the last completed iteration settled on
// plus its expected reply.
func (s *Search) rootPrincipalVariation(pos *board.Position) (types.Move, types.Move) {
	entry, ok := s.tt.Probe(pos.Hash())
	if !ok || entry.Move == types.MoveNone {
		return types.MoveNone, types.MoveNone
	}
	best := entry.Move
	captured := pos.MakeMove(best)
	defer pos.UndoMove(best, captured)

	reply := types.MoveNone
	if e2, ok2 := s.tt.Probe(pos.Hash()); ok2 {
		reply = e2.Move
	}
	return best, reply
}

// anyLegalMove is the fallback used when iterative deepening completes
// without ever recording a best move: any legal move is acceptable,
// chosen at random among the candidates.
func (s *Search) anyLegalMove(pos *board.Position) types.Move {
	legal := movegen.GenerateLegalMoves(pos, false)
	if len(legal) == 0 {
		return types.MoveNone
	}
	return legal[rand.Intn(len(legal))]
}
