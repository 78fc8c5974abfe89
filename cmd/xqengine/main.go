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

// Command xqengine is a tiny driver around the engine package: it
// loads a board (the standard opening array unless -board says
// otherwise), asks for one best move at the requested difficulty, and
// prints the move plus the reasoning string. It mirrors cmd/FrankyGo's
// shape (flag-based configuration, optional CPU profiling) without the
// UCI protocol loop, which has no Xiangqi equivalent in scope here.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/frankkopp/xqengine/engine"
	"github.com/frankkopp/xqengine/internal/config"
	"github.com/frankkopp/xqengine/internal/logging"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "info", "search log level\n(critical|error|warning|notice|info|debug)")
	difficulty := flag.String("difficulty", "intermediate", "beginner|intermediate|expert|master|grandmaster")
	depthOverride := flag.Int("depth", 0, "override the chosen difficulty's max depth (0 = use preset)")
	movetimeOverride := flag.Int("movetime", 0, "override the chosen difficulty's move time in ms (0 = use preset)")
	boardArg := flag.String("board", "standard", "board to load: only \"standard\" (the opening array) is built in")
	language := flag.String("lang", "en", "reasoning language: en|zh")
	doProfile := flag.Bool("profile", false, "enable CPU profiling, written to ./cpu.pprof")
	flag.Parse()

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	logging.GetLog()
	logging.GetSearchLog()

	diff, err := parseDifficulty(*difficulty)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyOverrides(diff, *depthOverride, *movetimeOverride)

	lang := engine.English
	if *language == "zh" {
		lang = engine.SimplifiedChinese
	}

	if *boardArg != "standard" {
		fmt.Fprintf(os.Stderr, "unknown -board value %q, only \"standard\" is built in\n", *boardArg)
		os.Exit(1)
	}

	e := engine.NewEngine()
	e.LoadBoard(standardBoard(), engine.RedSide)

	fmt.Print(e.String())

	result := e.GetBestMove(diff, lang)
	if result.Move == nil {
		fmt.Println(result.Reasoning)
		return
	}
	fmt.Printf("move: (%d,%d) -> (%d,%d)\n", result.Move.From.Row, result.Move.From.Col, result.Move.To.Row, result.Move.To.Col)
	fmt.Printf("score: %d\n", result.Score)
	fmt.Println(result.Reasoning)
}

func parseDifficulty(s string) (engine.Difficulty, error) {
	switch s {
	case "beginner":
		return engine.Beginner, nil
	case "intermediate":
		return engine.Intermediate, nil
	case "expert":
		return engine.Expert, nil
	case "master":
		return engine.Master, nil
	case "grandmaster":
		return engine.Grandmaster, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
}

// applyOverrides patches the config-driven difficulty ladder in place
// when the caller passed -depth/-movetime, the same way cmd/FrankyGo
// lets command line flags win over the config file and its defaults.
func applyOverrides(d engine.Difficulty, depth, movetimeMs int) {
	if depth <= 0 && movetimeMs <= 0 {
		return
	}
	preset := presetFor(d)
	if depth > 0 {
		preset.MaxDepth = depth
	}
	if movetimeMs > 0 {
		preset.MoveTimeMs = movetimeMs
	}
	setPresetFor(d, preset)
}

func presetFor(d engine.Difficulty) config.DifficultyPreset {
	switch d {
	case engine.Beginner:
		return config.Settings.Difficulty.Beginner
	case engine.Intermediate:
		return config.Settings.Difficulty.Intermediate
	case engine.Expert:
		return config.Settings.Difficulty.Expert
	case engine.Master:
		return config.Settings.Difficulty.Master
	default:
		return config.Settings.Difficulty.Grandmaster
	}
}

func setPresetFor(d engine.Difficulty, p config.DifficultyPreset) {
	switch d {
	case engine.Beginner:
		config.Settings.Difficulty.Beginner = p
	case engine.Intermediate:
		config.Settings.Difficulty.Intermediate = p
	case engine.Expert:
		config.Settings.Difficulty.Expert = p
	case engine.Master:
		config.Settings.Difficulty.Master = p
	default:
		config.Settings.Difficulty.Grandmaster = p
	}
}

// standardBoard builds the external-coordinate snapshot (row 0 =
// Black's back rank, row 9 = Red's) of the standard Xiangqi opening
// array.
func standardBoard() engine.Board {
	var b engine.Board
	backRank := [9]engine.PieceType{
		engine.Rook, engine.Horse, engine.Elephant, engine.Advisor, engine.King,
		engine.Advisor, engine.Elephant, engine.Horse, engine.Rook,
	}
	for c, pt := range backRank {
		b[0][c] = &engine.SquareContent{Type: pt, Side: engine.BlackSide}
		b[9][c] = &engine.SquareContent{Type: pt, Side: engine.RedSide}
	}
	for _, c := range [2]int{1, 7} {
		b[2][c] = &engine.SquareContent{Type: engine.Cannon, Side: engine.BlackSide}
		b[7][c] = &engine.SquareContent{Type: engine.Cannon, Side: engine.RedSide}
	}
	for _, c := range [5]int{0, 2, 4, 6, 8} {
		b[3][c] = &engine.SquareContent{Type: engine.Pawn, Side: engine.BlackSide}
		b[6][c] = &engine.SquareContent{Type: engine.Pawn, Side: engine.RedSide}
	}
	return b
}
