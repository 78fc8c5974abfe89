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

// Package engine is the external-facing façade the rest of the
// Xiangqi application talks to: NewEngine/Reset/LoadBoard/GetBestMove,
// everything in external board/coordinate conventions (row 0 is
// Black's back rank, row 9 is Red's, exactly as the UI's board model
// hands positions over). Internally it owns one board.Position bound
// to one reseedable zobrist.Table and one long-lived search.Search,
// the same way a UCI handler owns one position and one search for the
// lifetime of a game.
package engine

import (
	"github.com/frankkopp/xqengine/internal/board"
	"github.com/frankkopp/xqengine/internal/config"
	"github.com/frankkopp/xqengine/internal/movegen"
	"github.com/frankkopp/xqengine/internal/reason"
	"github.com/frankkopp/xqengine/internal/search"
	"github.com/frankkopp/xqengine/internal/types"
	"github.com/frankkopp/xqengine/internal/zobrist"
)

// PieceType is the external, UI-facing piece type enumeration
// (king, advisor, elephant, horse, rook, cannon, pawn).
type PieceType int

// External piece types.
const (
	NoPieceType PieceType = iota
	King
	Advisor
	Elephant
	Horse
	Rook
	Cannon
	Pawn
)

// Side is the external colour enumeration ({red, black}).
type Side int

// External sides.
const (
	RedSide Side = iota
	BlackSide
)

// SquareContent is one optional board cell: nil means empty, a
// non-nil pointer names the piece occupying it.
type SquareContent struct {
	Type PieceType
	Side Side
}

// Board is the 10-row x 9-column snapshot format: row 0 is Black's
// back rank, row 9 is Red's.
type Board [types.NumRows][types.NumCols]*SquareContent

// Difficulty selects one of the five named difficulty presets.
type Difficulty = search.Difficulty

// Difficulty levels, weakest to strongest.
const (
	Beginner     = search.Beginner
	Intermediate = search.Intermediate
	Expert       = search.Expert
	Master       = search.Master
	Grandmaster  = search.Grandmaster
)

// Language selects which of the two reasoning-string renderings
// GetBestMove uses.
type Language = reason.Language

// Supported reasoning languages.
const (
	English           = reason.English
	SimplifiedChinese = reason.SimplifiedChinese
)

// Coord is one external (row, col) board coordinate.
type Coord struct {
	Row int
	Col int
}

// MoveResult is one external move in (from, to) coordinate form.
type MoveResult struct {
	From Coord
	To   Coord
}

// Result is what GetBestMove returns: the chosen move (nil when the
// side to move has none, i.e. checkmate or stalemate), a short
// human-readable explanation and the search's evaluation of the
// resulting position from the mover's perspective.
type Result struct {
	Move      *MoveResult
	Reasoning string
	Score     int
}

// Engine is the one type external callers need: create it once with
// NewEngine, feed it positions with LoadBoard, and ask it for moves
// with GetBestMove. Its transposition table and move-ordering
// heuristics persist across calls until Reset.
type Engine struct {
	zob      *zobrist.Table
	pos      *board.Position
	searcher *search.Search
}

// NewEngine constructs an Engine with a freshly seeded Zobrist table,
// an empty transposition table and an empty board. Call LoadBoard
// before the first GetBestMove.
func NewEngine() *Engine {
	config.Setup()
	zob := zobrist.New()
	return &Engine{
		zob:      zob,
		pos:      board.NewPosition(zob),
		searcher: search.NewSearch(),
	}
}

// Reset clears the transposition table, killer table and history
// heuristic, and reseeds the Zobrist table so otherwise-symmetric
// choices vary from game to game.
func (e *Engine) Reset() {
	e.searcher.NewGame()
	e.zob = zobrist.New()
	e.pos.RebindZobrist(e.zob)
}

// LoadBoard replaces the engine's internal state with the given
// external board snapshot and side to move.
func (e *Engine) LoadBoard(b Board, side Side) {
	e.searcher.WaitWhileSearching()
	var rows [types.NumRows][types.NumCols]types.Piece
	for r := 0; r < types.NumRows; r++ {
		for c := 0; c < types.NumCols; c++ {
			sc := b[r][c]
			if sc == nil {
				continue
			}
			rows[externalToInternalRow(r)][c] = types.MakePiece(toInternalSide(sc.Side), toInternalType(sc.Type))
		}
	}
	e.pos.LoadBoard(rows, toInternalSide(side))
}

// GetBestMove runs a search at the given difficulty and returns the
// chosen move, a reasoning string in the requested language, and the
// evaluation score. It returns a Result with a nil Move when the side
// to move has no legal move at all (checkmate or stalemate - the
// caller tells them apart via the reasoning string).
func (e *Engine) GetBestMove(difficulty Difficulty, lang Language) *Result {
	if !movegen.HasLegalMove(e.pos) {
		return &Result{
			Reasoning: reason.RenderMate(lang, movegen.InCheck(e.pos, e.pos.Turn())),
		}
	}

	limits := search.LimitsFor(difficulty)
	res := e.searcher.FindBestMove(*e.pos, limits)

	if res.BestMove == types.MoveNone {
		return &Result{
			Reasoning: reason.RenderMate(lang, movegen.InCheck(e.pos, e.pos.Turn())),
		}
	}

	reasoning := reason.Render(lang, res.Depth, res.Nodes, res.Score)
	if res.Depth == 0 {
		reasoning = reason.RenderTimeout(lang)
	}

	return &Result{
		Move:      &MoveResult{From: externalCoord(res.BestMove.From()), To: externalCoord(res.BestMove.To())},
		Reasoning: reasoning,
		Score:     int(res.Score),
	}
}

// String renders the current position the way Position.String() does
// internally, for display/debugging only - there is no wire format
// for it to round-trip through.
func (e *Engine) String() string {
	return e.pos.String()
}

// externalToInternalRow flips between the external convention (row 0
// is Black's back rank) and the internal one board.Position and
// testpos use (row 0 is Red's back rank). The mapping is its own
// inverse, so the same function converts in both directions.
func externalToInternalRow(row int) int {
	return types.NumRows - 1 - row
}

func externalCoord(sq types.Square) Coord {
	return Coord{Row: externalToInternalRow(sq.Row()), Col: sq.Col()}
}

func toInternalSide(s Side) types.Color {
	if s == RedSide {
		return types.Red
	}
	return types.Black
}

func toInternalType(t PieceType) types.PieceType {
	switch t {
	case King:
		return types.King
	case Advisor:
		return types.Advisor
	case Elephant:
		return types.Elephant
	case Horse:
		return types.Horse
	case Rook:
		return types.Rook
	case Cannon:
		return types.Cannon
	case Pawn:
		return types.Pawn
	default:
		return types.NoPieceType
	}
}
