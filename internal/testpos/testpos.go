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

// Package testpos builds board arrays for use in tests across the
// engine's packages: the standard opening array and small constructed
// positions for checkmate, stalemate and rule-edge-case scenarios.
// Rows follow the internal convention used by board.Position.LoadBoard
// - row 0 is Red's back rank, row 9 is Black's - not the external
// row-0-is-Black convention the engine facade presents to callers.
package testpos

import "github.com/frankkopp/xqengine/internal/types"

// EmptyBoard returns a board array with no pieces placed.
func EmptyBoard() [types.NumRows][types.NumCols]types.Piece {
	return [types.NumRows][types.NumCols]types.Piece{}
}

// StartBoard returns the standard Xiangqi opening array.
func StartBoard() [types.NumRows][types.NumCols]types.Piece {
	b := EmptyBoard()

	backRank := [types.NumCols]types.PieceType{
		types.Rook, types.Horse, types.Elephant, types.Advisor, types.King,
		types.Advisor, types.Elephant, types.Horse, types.Rook,
	}
	for c, pt := range backRank {
		b[0][c] = types.MakePiece(types.Red, pt)
		b[9][c] = types.MakePiece(types.Black, pt)
	}

	for _, c := range [2]int{1, 7} {
		b[2][c] = types.MakePiece(types.Red, types.Cannon)
		b[7][c] = types.MakePiece(types.Black, types.Cannon)
	}

	for _, c := range [5]int{0, 2, 4, 6, 8} {
		b[3][c] = types.MakePiece(types.Red, types.Pawn)
		b[6][c] = types.MakePiece(types.Black, types.Pawn)
	}

	return b
}
