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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/xqengine/internal/board"
	"github.com/frankkopp/xqengine/internal/testpos"
	"github.com/frankkopp/xqengine/internal/types"
	"github.com/frankkopp/xqengine/internal/zobrist"
)

func newPos() *board.Position {
	return board.NewPosition(zobrist.New())
}

func containsMove(moves []types.Move, from, to types.Square) bool {
	target := types.NewMove(from, to)
	for _, m := range moves {
		if m == target {
			return true
		}
	}
	return false
}

func TestGenerateMoves_StartPositionCount(t *testing.T) {
	pos := newPos()
	pos.LoadBoard(testpos.StartBoard(), types.Red)
	moves := GenerateMoves(pos, false)
	// Red's opening move count is a well known Xiangqi constant.
	assert.Equal(t, 44, len(moves))
}

func TestCapturesOnly_IsSubsetAndAllCapture(t *testing.T) {
	rows := testpos.EmptyBoard()
	rows[0][4] = types.MakePiece(types.Red, types.King)
	rows[9][4] = types.MakePiece(types.Black, types.King)
	rows[5][0] = types.MakePiece(types.Red, types.Rook)
	rows[8][0] = types.MakePiece(types.Black, types.Rook)
	rows[5][3] = types.MakePiece(types.Black, types.Advisor)

	pos := newPos()
	pos.LoadBoard(rows, types.Red)

	all := GenerateMoves(pos, false)
	captures := GenerateMoves(pos, true)

	for _, c := range captures {
		assert.True(t, containsMove(all, c.From(), c.To()), "every capture must also be a pseudo-legal move")
		assert.False(t, pos.PieceAt(c.To()).IsEmpty(), "capturesOnly moves must land on an occupied square")
	}
	assert.Less(t, len(captures), len(all))
}

func TestHorseMoves_BlockedLeg(t *testing.T) {
	rows := testpos.EmptyBoard()
	rows[0][4] = types.MakePiece(types.Red, types.King)
	rows[9][4] = types.MakePiece(types.Black, types.King)
	rows[7][1] = types.MakePiece(types.Red, types.Horse)
	rows[8][1] = types.MakePiece(types.Red, types.Pawn) // blocks the (dr=2) leg square

	pos := newPos()
	pos.LoadBoard(rows, types.Red)
	moves := GenerateMoves(pos, false)

	// (9,0) and (9,2) both require the (8,1) leg to be empty.
	assert.False(t, containsMove(moves, types.NewSquare(7, 1), types.NewSquare(9, 0)))
	assert.False(t, containsMove(moves, types.NewSquare(7, 1), types.NewSquare(9, 2)))
	// the horizontal-leg jumps to row 6 are unaffected by the vertical blocker.
	assert.True(t, containsMove(moves, types.NewSquare(7, 1), types.NewSquare(6, 3)))
}

func TestElephantMoves_BlockedEyeAndRiver(t *testing.T) {
	rows := testpos.EmptyBoard()
	rows[0][4] = types.MakePiece(types.Red, types.King)
	rows[9][4] = types.MakePiece(types.Black, types.King)
	rows[2][2] = types.MakePiece(types.Red, types.Elephant)
	rows[3][3] = types.MakePiece(types.Red, types.Pawn) // blocks the eye towards (4,4)
	// a second elephant sitting right on the river bank: its eye squares
	// are all empty, isolating the river-crossing rule from eye-blocking.
	rows[4][6] = types.MakePiece(types.Red, types.Elephant)

	pos := newPos()
	pos.LoadBoard(rows, types.Red)
	moves := GenerateMoves(pos, false)

	assert.False(t, containsMove(moves, types.NewSquare(2, 2), types.NewSquare(4, 4)), "blocked eye must prevent the hop")
	assert.True(t, containsMove(moves, types.NewSquare(2, 2), types.NewSquare(0, 0)), "unblocked diagonal hop is legal")
	assert.True(t, containsMove(moves, types.NewSquare(2, 2), types.NewSquare(4, 0)), "a hop landing on row 4 is still on Red's own side")
	assert.False(t, containsMove(moves, types.NewSquare(4, 6), types.NewSquare(6, 4)), "elephant may never cross the river, even with an empty eye")
	assert.False(t, containsMove(moves, types.NewSquare(4, 6), types.NewSquare(6, 8)), "elephant may never cross the river, even with an empty eye")
}

func TestCannonMoves_ScreenRules(t *testing.T) {
	rows := testpos.EmptyBoard()
	rows[0][4] = types.MakePiece(types.Red, types.King)
	rows[9][4] = types.MakePiece(types.Black, types.King)
	rows[7][1] = types.MakePiece(types.Red, types.Cannon)
	rows[5][1] = types.MakePiece(types.Black, types.Advisor) // screen
	rows[3][1] = types.MakePiece(types.Black, types.Pawn)    // capturable beyond the screen

	pos := newPos()
	pos.LoadBoard(rows, types.Red)
	moves := GenerateMoves(pos, false)

	assert.True(t, containsMove(moves, types.NewSquare(7, 1), types.NewSquare(6, 1)), "quiet move before the screen is legal")
	assert.False(t, containsMove(moves, types.NewSquare(7, 1), types.NewSquare(5, 1)), "cannon cannot land on the screen")
	assert.False(t, containsMove(moves, types.NewSquare(7, 1), types.NewSquare(4, 1)), "cannon cannot make a quiet move past the screen")
	assert.True(t, containsMove(moves, types.NewSquare(7, 1), types.NewSquare(3, 1)), "cannon may capture the piece directly beyond the screen")

	captures := GenerateMoves(pos, true)
	assert.True(t, containsMove(captures, types.NewSquare(7, 1), types.NewSquare(3, 1)))
	assert.False(t, containsMove(captures, types.NewSquare(7, 1), types.NewSquare(5, 1)), "landing on the screen is never a capture either")
}

func TestPawnMoves_ForwardOnlyBeforeRiverSidewaysAfter(t *testing.T) {
	rows := testpos.EmptyBoard()
	rows[0][4] = types.MakePiece(types.Red, types.King)
	rows[9][4] = types.MakePiece(types.Black, types.King)
	rows[3][4] = types.MakePiece(types.Red, types.Pawn) // not yet crossed
	rows[6][0] = types.MakePiece(types.Red, types.Pawn) // crossed

	pos := newPos()
	pos.LoadBoard(rows, types.Red)
	moves := GenerateMoves(pos, false)

	beforeFrom := types.NewSquare(3, 4)
	assert.True(t, containsMove(moves, beforeFrom, types.NewSquare(4, 4)))
	assert.False(t, containsMove(moves, beforeFrom, types.NewSquare(3, 3)))
	assert.False(t, containsMove(moves, beforeFrom, types.NewSquare(3, 5)))
	assert.False(t, containsMove(moves, beforeFrom, types.NewSquare(2, 4)), "pawns never move backward")

	afterFrom := types.NewSquare(6, 0)
	assert.True(t, containsMove(moves, afterFrom, types.NewSquare(7, 0)))
	assert.True(t, containsMove(moves, afterFrom, types.NewSquare(6, 1)))
	assert.False(t, containsMove(moves, afterFrom, types.NewSquare(5, 0)), "pawns never move backward")
}

func TestKingAndAdvisor_ConfinedToPalace(t *testing.T) {
	rows := testpos.EmptyBoard()
	rows[0][3] = types.MakePiece(types.Red, types.King)
	rows[9][4] = types.MakePiece(types.Black, types.King)
	rows[0][4] = types.MakePiece(types.Red, types.Advisor)

	pos := newPos()
	pos.LoadBoard(rows, types.Red)
	moves := GenerateMoves(pos, false)

	assert.False(t, containsMove(moves, types.NewSquare(0, 3), types.NewSquare(0, 2)), "king may not leave the palace files")
	assert.True(t, containsMove(moves, types.NewSquare(0, 3), types.NewSquare(1, 3)))
	assert.False(t, containsMove(moves, types.NewSquare(0, 4), types.NewSquare(0, 6)), "advisor may not leave the palace")
}

func TestGenerateLegalMoves_FiltersSelfCheck(t *testing.T) {
	// Red rook pinned: moving the blocking rook off file 4 would expose
	// the Red king to the black rook on the same file.
	rows := testpos.EmptyBoard()
	rows[0][4] = types.MakePiece(types.Red, types.King)
	rows[3][4] = types.MakePiece(types.Red, types.Rook) // only blocker on file 4
	rows[9][4] = types.MakePiece(types.Black, types.King)
	rows[8][4] = types.MakePiece(types.Black, types.Rook)

	pos := newPos()
	pos.LoadBoard(rows, types.Red)

	pseudo := GenerateMoves(pos, false)
	legal := GenerateLegalMoves(pos, false)
	assert.Less(t, len(legal), len(pseudo), "moving the pinned rook off the file must be filtered out")

	for _, m := range legal {
		if m.From() == types.NewSquare(3, 4) {
			assert.Equal(t, 4, m.To().Col(), "the pinned rook may only move along the pinning file")
		}
	}
}

func TestHasLegalMove_Stalemate(t *testing.T) {
	// The lone Red king sits in a palace corner with exactly two
	// pseudo-legal destinations, (0,4) and (1,3), both captures. Each
	// capture walks the king onto a file a black rook commands once the
	// captured piece (which was screening that file) is gone, so both
	// are self-check and filtered: no legal move, and the position
	// itself is not currently check.
	rows := testpos.EmptyBoard()
	rows[0][3] = types.MakePiece(types.Red, types.King)
	rows[0][4] = types.MakePiece(types.Black, types.Advisor)
	rows[1][3] = types.MakePiece(types.Black, types.Horse)
	rows[5][3] = types.MakePiece(types.Black, types.Rook)
	rows[9][4] = types.MakePiece(types.Black, types.Rook)
	rows[9][8] = types.MakePiece(types.Black, types.King)

	pos := newPos()
	pos.LoadBoard(rows, types.Red)

	assert.False(t, InCheck(pos, types.Red), "the constructed position must not already be check")
	assert.False(t, HasLegalMove(pos), "the boxed-in king must have no legal move")
}
