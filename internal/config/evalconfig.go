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

package config

// evalConfiguration holds the tunable constants of the static
// evaluator. Values come directly from the evaluation design: material
// is fixed by the rules of the game, the positional bonuses are the
// tunable part.
type evalConfiguration struct {
	UseTieBreakNoise bool

	PawnAdvanceBonus      int16
	PawnCrossedBonus      int16
	PawnCentralBonus      int16
	HorseCentralBonus     int16
	HorseCrossedBonus     int16
	CannonCentralBonus    int16
	CannonCrossedBonus    int16
	RookCrossedBonus      int16
	RookCentralBonus      int16
	KingHomeBonus         int16
	KingAwayFromHomeMalus int16
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.UseTieBreakNoise = true

	Settings.Eval.PawnAdvanceBonus = 2
	Settings.Eval.PawnCrossedBonus = 30
	Settings.Eval.PawnCentralBonus = 20

	Settings.Eval.HorseCentralBonus = 15
	Settings.Eval.HorseCrossedBonus = 30

	Settings.Eval.CannonCentralBonus = 25
	Settings.Eval.CannonCrossedBonus = 15

	Settings.Eval.RookCrossedBonus = 20
	Settings.Eval.RookCentralBonus = 10

	Settings.Eval.KingHomeBonus = 10
	Settings.Eval.KingAwayFromHomeMalus = -20
}

// set defaults for configurations here in case a configuration is not
// available from the config file.
func setupEval() {
}
