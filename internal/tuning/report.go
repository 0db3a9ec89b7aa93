// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tuning renders pkg/eval/classical's fixed weight table to an
// HTML chart for offline inspection — there is no live tuning loop to
// drive it (pkg/eval/classical.Terms is a fixed constant table, per
// spec §4.5), so unlike the teacher's scripts/tune this only plots
// what's already there.
package tuning

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/corvidchess/corvid/pkg/eval/classical"
	"github.com/corvidchess/corvid/pkg/piece"
)

// pieceNames indexes piece.Type the way classical.Terms.PieceSquare
// does, skipping piece.NoType at index 0.
var pieceNames = [piece.TypeN]string{
	piece.Pawn:   "Pawn",
	piece.Knight: "Knight",
	piece.Bishop: "Bishop",
	piece.Rook:   "Rook",
	piece.Queen:  "Queen",
	piece.King:   "King",
}

// WeightsBarChart renders classical.Terms.PieceSquare's middle-game
// values, one bar series per piece type averaged over its 64 squares,
// the same "weights at a glance" view the teacher's scripts/tune plots
// after a tuning run — here, over the fixed table instead of a
// converged one.
func WeightsBarChart() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Classical evaluation piece-square weights",
			Subtitle: "middle-game values, averaged per piece type",
		}),
	)

	var labels []string
	var values []opts.BarData
	for t := piece.Pawn; t <= piece.King; t++ {
		sum := 0
		for _, sq := range classical.Terms.PieceSquare[t] {
			sum += sq.MG()
		}
		labels = append(labels, pieceNames[t])
		values = append(values, opts.BarData{Value: sum / len(classical.Terms.PieceSquare[t])})
	}

	bar.SetXAxis(labels).AddSeries("Average PSQT (MG)", values)
	return bar
}

// RenderWeights writes WeightsBarChart's HTML page to w.
func RenderWeights(w io.Writer) error {
	return WeightsBarChart().Render(w)
}
