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

package classical

import (
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/square"
)

// Weights is the fixed parameter table spec §4.5 requires ("all term
// weights are fixed constants"): one package-level Terms value, no
// runtime loading or tuning. The teacher's classical/terms.go instead
// keeps these as tuner-facing fields addressed by FetchTerm(index) for
// scripts/tune's gradient descent — this module does not carry the
// tuner loop itself (see DESIGN.md), so Terms is just a plain struct
// of constants, and PieceSquare is generated once in init() rather
// than hand-transcribed, since this module has no tuned values to
// transcribe from.
type Weights struct {
	Mobility [piece.TypeN][]Score

	// one table, oriented to whichever side is being scored: a Them
	// piece's bonus for standing on s is PieceSquare[pt][s.Flip()],
	// since "good square" is always relative to the owner's own back
	// rank, and flipping is exactly how this module moves between the
	// two owners' frames of reference everywhere else.
	PieceSquare [piece.TypeN][square.N]Score

	StackedPawns [7]Score

	RookFullOpenFile Score
	RookSemiOpenFile Score
	RookBattery      Score
	RookTrappedByKing Score

	BishopPair       Score
	BishopSameColorAsPawns Score
	BishopTrapped    Score

	KnightOutpost Score
	KnightRim     Score

	PawnIsolated Score
	PawnDoubled  Score
	PawnBackward Score
	PawnChain    Score

	PassedPawn [8]Score // indexed by rank (relative to the pawn's owner)

	KingDefenders      [12]Score
	SafetyAttackValue  Score
	SafetyWeakSquares  Score
	SafetyNoEnemyQueens Score
	SafetyAdjustment   Score
	SafetySafeKnightCheck Score
	SafetySafeBishopCheck Score
	SafetySafeRookCheck   Score
	SafetySafeQueenCheck  Score
	CastledBonus       Score
	CastlingRightsBonus Score

	ThreatWeakPawn              Score
	ThreatMinorAttackedByPawn   Score
	ThreatMinorAttackedByMinor  Score
	ThreatMinorAttackedByMajor  Score
	ThreatRookAttackedByLesser  Score
	ThreatQueenAttackedByOne    Score
	ThreatHangingPerCentipawn   Score // scales Hanging's raw centipawn estimate
	ThreatByPawnPush            Score
}

// Terms is the one fixed weight table every classical evaluation term
// reads from.
var Terms Weights

func init() {
	Terms.Mobility[piece.Knight] = mobilityRamp(9, 4)
	Terms.Mobility[piece.Bishop] = mobilityRamp(14, 5)
	Terms.Mobility[piece.Rook] = mobilityRamp(15, 4)
	Terms.Mobility[piece.Queen] = mobilityRamp(28, 2)

	for t := piece.Pawn; t <= piece.King; t++ {
		for s := square.Square(0); s < square.N; s++ {
			Terms.PieceSquare[t][s] = pieceSquareValue(t, s)
		}
	}

	Terms.StackedPawns = [7]Score{0, 0, S(-5, -10), S(-15, -25), S(-30, -45), S(-45, -60), S(-60, -75)}

	Terms.RookFullOpenFile = S(25, 10)
	Terms.RookSemiOpenFile = S(12, 5)
	Terms.RookBattery = S(15, 20)
	Terms.RookTrappedByKing = S(-50, 0)

	Terms.BishopPair = S(30, 50)
	Terms.BishopSameColorAsPawns = S(-3, -5)
	Terms.BishopTrapped = S(-80, -80)

	Terms.KnightOutpost = S(20, 10)
	Terms.KnightRim = S(-10, -5)

	Terms.PawnIsolated = S(-10, -15)
	Terms.PawnDoubled = S(-10, -20)
	Terms.PawnBackward = S(-8, -12)
	Terms.PawnChain = S(5, 8)

	for r := square.Rank(0); r < 8; r++ {
		Terms.PassedPawn[r] = S(int(r)*int(r), int(r)*int(r)*2)
	}

	for n := 0; n < len(Terms.KingDefenders); n++ {
		Terms.KingDefenders[n] = S((n-3)*4, (n-3)*2)
	}
	Terms.SafetyAttackValue = S(-4, -1)
	Terms.SafetyWeakSquares = S(-8, -3)
	Terms.SafetyNoEnemyQueens = S(40, 10)
	Terms.SafetyAdjustment = S(20, 5)
	Terms.SafetySafeKnightCheck = S(-40, -10)
	Terms.SafetySafeBishopCheck = S(-25, -8)
	Terms.SafetySafeRookCheck = S(-45, -15)
	Terms.SafetySafeQueenCheck = S(-35, -20)
	Terms.CastledBonus = S(25, 0)
	Terms.CastlingRightsBonus = S(10, 0)

	Terms.ThreatWeakPawn = S(-10, -15)
	Terms.ThreatMinorAttackedByPawn = S(-45, -55)
	Terms.ThreatMinorAttackedByMinor = S(-25, -30)
	Terms.ThreatMinorAttackedByMajor = S(-20, -25)
	Terms.ThreatRookAttackedByLesser = S(-45, -50)
	Terms.ThreatQueenAttackedByOne = S(-40, -35)
	Terms.ThreatHangingPerCentipawn = S(1, 1)
	Terms.ThreatByPawnPush = S(15, 15)
}

// mobilityRamp builds a monotonically increasing bonus table with n
// entries, step centipawns apart in the middle game (and step/2 in the
// end game, since mobility matters relatively less once material and
// thus tactical potential drops).
func mobilityRamp(n, step int) []Score {
	table := make([]Score, n)
	for i := range table {
		table[i] = S((i-n/2)*step, (i-n/2)*step/2)
	}
	return table
}

// pieceSquareValue is a formulaic stand-in for a tuned PSQT: pawns and
// knights get a centralization + advancement bonus, bishops and queens
// a pure centralization bonus, rooks a small file-centralization
// bonus, and the king a centralization bonus in the end game only
// (offset by a safety bonus for being tucked in a corner in the middle
// game, since PieceSquare is the only per-square term the king gets
// here — shelter/storm beyond KingDefenders is out of scope, see
// DESIGN.md).
func pieceSquareValue(t piece.Type, s square.Square) Score {
	file, rank := int(s.File()), int(s.Rank())
	centerFile := min(file, 7-file)
	centerRank := min(rank, 7-rank)
	centralization := centerFile + centerRank

	switch t {
	case piece.Pawn:
		return S(rank*4, rank*8)
	case piece.Knight:
		return S(centralization*6+rank*2, centralization*6)
	case piece.Bishop:
		return S(centralization*4, centralization*3)
	case piece.Rook:
		return S(centerFile*2, 0)
	case piece.Queen:
		return S(centralization*3, centralization*3)
	case piece.King:
		return S((3-centralization)*10, centralization*8)
	default:
		return 0
	}
}
