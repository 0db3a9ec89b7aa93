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

// Package classical implements spec §4.5's fixed-weight evaluation:
// material plus a set of orthogonal positional terms, each a function
// of the position's bitboards, interpolated between middle-game and
// end-game values by a material-derived game phase. Grounded on the
// teacher's pkg/search/eval/classical package, collapsed from a
// White/Black double pass into a single Us/Them pass, since a Position
// here is always read as "Us to move" already.
package classical

import (
	"github.com/corvidchess/corvid/pkg/attacks"
	"github.com/corvidchess/corvid/pkg/bitboard"
	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/position"
	"github.com/corvidchess/corvid/pkg/square"
)

// Evaluator holds the scratch attack/area bitboards built once per
// Evaluate call and shared across every term, the same role the
// teacher's EfficientlyUpdatable struct plays (minus the incremental
// FillSquare/ClearSquare accumulation, which this module does not
// implement: every Evaluate call walks the position's bitboards fresh,
// traded for simplicity since this module's search does not yet carry
// an accumulator stack — see DESIGN.md).
type Evaluator struct {
	p *position.Position

	phase int

	occupied bitboard.Board

	kingArea      [piece.NColor]bitboard.Board
	pawnAttacks   [piece.NColor]bitboard.Board
	pawnAttacksBy2 [piece.NColor]bitboard.Board
	blockedPawns  [piece.NColor]bitboard.Board
	mobilityArea  [piece.NColor]bitboard.Board

	attacked        [piece.NColor]bitboard.Board
	attackedBy2     [piece.NColor]bitboard.Board
	attackedByType  [piece.NColor][piece.TypeN]bitboard.Board

	kingAttackersCount [piece.NColor]int
	kingAttacksCount   [piece.NColor]int
}

// Evaluate returns p's static evaluation in centipawns from the
// perspective of Us (the side to move), clamped well short of a mate
// score by construction: every term here is a bounded function of
// bitboard popcounts.
func Evaluate(p *position.Position) int {
	e := &Evaluator{p: p}
	e.initialize()

	score := e.evaluatePawns(piece.Us) - e.evaluatePawns(piece.Them)
	score += e.evaluatePieces(piece.Us) - e.evaluatePieces(piece.Them)
	score += e.evaluateKing(piece.Us) - e.evaluateKing(piece.Them)
	score += e.evaluateThreats(piece.Us) - e.evaluateThreats(piece.Them)
	score += e.evaluateMaterial(piece.Us) - e.evaluateMaterial(piece.Them)

	phase := e.phase
	if phase > MaxPhase {
		phase = MaxPhase
	}
	return lerp(score.EG(), score.MG(), phase, MaxPhase)
}

func (e *Evaluator) evaluateMaterial(us piece.Color) Score {
	score := 0
	for t := piece.Pawn; t <= piece.Queen; t++ {
		score += eval.Value[t] * e.p.Pieces(t, us).Count()
	}
	return S(score, score)
}

// psqt looks up the piece-square bonus for a piece of colour c on
// square s: Us reads the table directly, Them reads it mirrored, since
// "good square" is always relative to the piece's own back rank.
func psqt(t piece.Type, c piece.Color, s square.Square) Score {
	if c == piece.Them {
		s = s.Flip()
	}
	return Terms.PieceSquare[t][s]
}

func (e *Evaluator) initialize() {
	e.phase = 0
	e.occupied = e.p.Occupied()

	for _, c := range [2]piece.Color{piece.Us, piece.Them} {
		kingSq := e.p.Kings[c]
		e.kingArea[c] = attacks.King[kingSq] | bitboard.Squares[kingSq]

		pawns := e.p.Pawns(c)
		var advanced bitboard.Board
		if c == piece.Us {
			advanced = pawns.North()
		} else {
			advanced = pawns.South()
		}
		e.pawnAttacks[c] = advanced.East() | advanced.West()
		e.pawnAttacksBy2[c] = advanced.East() & advanced.West()

		if c == piece.Us {
			e.blockedPawns[c] = e.occupied.South() & pawns
		} else {
			e.blockedPawns[c] = e.occupied.North() & pawns
		}

		e.attackedByType[c][piece.King] = attacks.King[kingSq]
		e.attacked[c] = e.attackedByType[c][piece.King]
	}

	e.mobilityArea[piece.Us] = ^(e.pawnAttacks[piece.Them] | bitboard.Squares[e.p.Kings[piece.Us]] | e.blockedPawns[piece.Us])
	e.mobilityArea[piece.Them] = ^(e.pawnAttacks[piece.Us] | bitboard.Squares[e.p.Kings[piece.Them]] | e.blockedPawns[piece.Them])
}

func (e *Evaluator) evaluatePawns(us piece.Color) Score {
	pawns := e.p.Pawns(us)

	e.attackedBy2[us] |= e.pawnAttacks[us] & e.attacked[us]
	e.attacked[us] |= e.pawnAttacks[us]
	e.attackedByType[us][piece.Pawn] = e.pawnAttacks[us]

	var score Score

	for file := square.FileA; file <= square.FileH; file++ {
		n := (pawns & bitboard.Files[file]).Count()
		score += Terms.StackedPawns[n]
	}

	them := us.Other()
	enemyPawns := e.p.Pawns(them)

	for bb := pawns; bb != bitboard.Empty; {
		sq := bb.Pop()
		score += psqt(piece.Pawn, us, sq)

		file := sq.File()
		rank := sq.Rank()

		adjacentFiles := bitboard.Empty
		if file > square.FileA {
			adjacentFiles |= bitboard.Files[file-1]
		}
		if file < square.FileH {
			adjacentFiles |= bitboard.Files[file+1]
		}

		if pawns&adjacentFiles == bitboard.Empty {
			score += Terms.PawnIsolated
		} else {
			// a pawn defended by another pawn of the same colour is in
			// a chain, rewarded regardless of isolation above it
			var defenders bitboard.Board
			if us == piece.Us {
				defenders = bitboard.Squares[sq].South().East() | bitboard.Squares[sq].South().West()
			} else {
				defenders = bitboard.Squares[sq].North().East() | bitboard.Squares[sq].North().West()
			}
			if defenders&pawns != bitboard.Empty {
				score += Terms.PawnChain
			}
		}

		if (pawns&bitboard.Files[file])&^bitboard.Squares[sq] != bitboard.Empty {
			score += Terms.PawnDoubled
		}

		if isPassed(sq, us, enemyPawns) {
			relRank := int(rank)
			if us == piece.Them {
				relRank = 7 - relRank
			}
			score += Terms.PassedPawn[relRank]
		}
	}

	return score
}

// isPassed reports whether a pawn of colour us on s has no enemy pawn
// able to stop or capture it on its way to promotion: none on its own
// file or the two adjacent files, on any rank ahead of it.
func isPassed(s square.Square, us piece.Color, enemyPawns bitboard.Board) bool {
	file, rank := s.File(), s.Rank()

	var files bitboard.Board
	files |= bitboard.Files[file]
	if file > square.FileA {
		files |= bitboard.Files[file-1]
	}
	if file < square.FileH {
		files |= bitboard.Files[file+1]
	}

	var ahead bitboard.Board
	for r := square.Rank(0); r < 8; r++ {
		if (us == piece.Us && r > rank) || (us == piece.Them && r < rank) {
			ahead |= bitboard.Ranks[r]
		}
	}

	return enemyPawns&files&ahead == bitboard.Empty
}

func (e *Evaluator) evaluatePieces(us piece.Color) Score {
	them := us.Other()

	pieces := e.p.Pieces(piece.Knight, us) | e.p.Pieces(piece.Bishop, us) |
		e.p.Pieces(piece.Rook, us) | e.p.Pieces(piece.Queen, us)

	var score Score
	bishops := 0

	for bb := pieces; bb != bitboard.Empty; {
		sq := bb.Pop()
		t := e.p.PieceAt(sq).Type()

		score += psqt(t, us, sq)
		e.phase += phaseInc[t]

		blockers := e.occupied &^ bitboard.Squares[sq]
		var pieceAttacks bitboard.Board
		switch t {
		case piece.Knight:
			pieceAttacks = attacks.Knight[sq]
		case piece.Bishop:
			bishops++
			pieceAttacks = attacks.Bishop(sq, blockers)
			if isSameColorAsOwnPawns(sq, e.p.Pawns(us)) {
				score += Terms.BishopSameColorAsPawns
			}
			if isTrappedBishop(sq, us, e.occupied) {
				score += Terms.BishopTrapped
			}
		case piece.Rook:
			pieceAttacks = attacks.Rook(sq, blockers)
			file := bitboard.Files[sq.File()]
			switch {
			case e.p.PieceBB[piece.Pawn]&file == bitboard.Empty:
				score += Terms.RookFullOpenFile
			case e.p.Pawns(us)&file == bitboard.Empty:
				score += Terms.RookSemiOpenFile
			}
			if (e.p.Pieces(piece.Rook, us) &^ bitboard.Squares[sq] & attacks.Rook(sq, e.occupied)) != bitboard.Empty {
				score += Terms.RookBattery
			}
		case piece.Queen:
			pieceAttacks = attacks.Queen(sq, blockers)
		}

		e.attackedBy2[us] |= pieceAttacks & e.attacked[us]
		e.attacked[us] |= pieceAttacks
		e.attackedByType[us][t] |= pieceAttacks

		count := (pieceAttacks & e.mobilityArea[us]).Count()
		if table := Terms.Mobility[t]; len(table) > 0 {
			idx := count
			if idx >= len(table) {
				idx = len(table) - 1
			}
			score += table[idx]
		}

		kingAttacks := pieceAttacks & e.kingArea[them] &^ e.pawnAttacksBy2[them]
		if kingAttacks != bitboard.Empty {
			e.kingAttacksCount[them] += kingAttacks.Count()
			e.kingAttackersCount[them]++
		}

		if t == piece.Knight && isOutpost(sq, us, e.p.Pawns(them), e.pawnAttacks[us]) {
			score += Terms.KnightOutpost
		}
		if t == piece.Knight && (sq.File() == square.FileA || sq.File() == square.FileH) {
			score += Terms.KnightRim
		}
	}

	if bishops >= 2 {
		score += Terms.BishopPair
	}

	return score
}

// lightSquares is computed once rather than added to pkg/bitboard,
// since bishop-color checks are the only place this module needs it.
var lightSquares = func() bitboard.Board {
	var b bitboard.Board
	for s := square.Square(0); s < square.N; s++ {
		if (int(s.File())+int(s.Rank()))%2 == 0 {
			b.Set(s)
		}
	}
	return b
}()

func isSameColorAsOwnPawns(sq square.Square, pawns bitboard.Board) bool {
	light := lightSquares.IsSet(sq)
	lightPawns := pawns & lightSquares
	darkPawns := pawns &^ lightSquares
	if light {
		return lightPawns.Count() > darkPawns.Count()
	}
	return darkPawns.Count() > lightPawns.Count()
}

// isTrappedBishop matches a bishop on its own second-rank corner square
// (a2/h2 for Us, a7/h7 for Them) that attacks at most two squares.
// Whether an enemy pawn stands diagonally in front of it is not
// checked.
func isTrappedBishop(sq square.Square, us piece.Color, occupied bitboard.Board) bool {
	corners := bitboard.Squares[square.Make(square.FileA, square.Rank2)] |
		bitboard.Squares[square.Make(square.FileH, square.Rank2)]
	if us == piece.Them {
		corners = corners.Flip()
	}
	if !corners.IsSet(sq) {
		return false
	}
	return attacks.Bishop(sq, occupied).Count() <= 2
}

func isOutpost(sq square.Square, us piece.Color, enemyPawns, ownPawnAttacks bitboard.Board) bool {
	if !ownPawnAttacks.IsSet(sq) {
		return false
	}

	file := sq.File()
	var files bitboard.Board
	if file > square.FileA {
		files |= bitboard.Files[file-1]
	}
	if file < square.FileH {
		files |= bitboard.Files[file+1]
	}

	var ahead bitboard.Board
	for r := square.Rank(0); r < 8; r++ {
		if (us == piece.Us && r > sq.Rank()) || (us == piece.Them && r < sq.Rank()) {
			ahead |= bitboard.Ranks[r]
		}
	}

	return enemyPawns&files&ahead == bitboard.Empty
}

func (e *Evaluator) evaluateKing(us piece.Color) Score {
	them := us.Other()
	kingSq := e.p.Kings[us]

	var score Score
	score += psqt(piece.King, us, kingSq)

	defenders := (e.p.Pawns(us) | e.p.Pieces(piece.Knight, us) | e.p.Pieces(piece.Bishop, us)) & e.kingArea[us]
	n := defenders.Count()
	if n >= len(Terms.KingDefenders) {
		n = len(Terms.KingDefenders) - 1
	}
	score += Terms.KingDefenders[n]

	enemyQueens := e.p.Queens(them)
	if e.kingAttackersCount[us] >= 2-enemyQueens.Count() {
		weak := e.attacked[them] &^ e.attackedBy2[us] &
			(^e.attacked[us] | e.attackedByType[us][piece.Queen] | e.attackedByType[us][piece.King])

		areaSize := e.kingArea[us].Count()
		scaledAttacks := 0
		if areaSize > 0 {
			scaledAttacks = 9 * e.kingAttacksCount[us] / areaSize
		}

		safe := ^e.p.ColorBB[them] & (^e.attacked[us] | (weak & e.attackedBy2[them]))

		knightChecks := attacks.Knight[kingSq] & safe & e.attackedByType[them][piece.Knight]
		bishopThreats := attacks.Bishop(kingSq, e.occupied)
		rookThreats := attacks.Rook(kingSq, e.occupied)
		bishopChecks := bishopThreats & safe & e.attackedByType[them][piece.Bishop]
		rookChecks := rookThreats & safe & e.attackedByType[them][piece.Rook]
		queenChecks := (bishopThreats | rookThreats) & safe & e.attackedByType[them][piece.Queen]

		safety := Terms.SafetyAttackValue * Score(scaledAttacks)
		safety += Terms.SafetyWeakSquares * Score((weak & e.kingArea[us]).Count())
		safety += Terms.SafetySafeKnightCheck * Score(knightChecks.Count())
		safety += Terms.SafetySafeBishopCheck * Score(bishopChecks.Count())
		safety += Terms.SafetySafeRookCheck * Score(rookChecks.Count())
		safety += Terms.SafetySafeQueenCheck * Score(queenChecks.Count())
		if enemyQueens == bitboard.Empty {
			safety += Terms.SafetyNoEnemyQueens
		}
		safety += Terms.SafetyAdjustment

		score += safety
	}

	if e.p.CastlingRights == 0 {
		score += Terms.CastledBonus
	} else {
		score += Terms.CastlingRightsBonus
	}

	e.attackedBy2[us] |= attacks.King[kingSq] & e.attacked[us]
	e.attacked[us] |= attacks.King[kingSq]

	return score
}

func (e *Evaluator) evaluateThreats(us piece.Color) Score {
	them := us.Other()

	var score Score

	pawns := e.p.Pawns(us)
	knights := e.p.Pieces(piece.Knight, us)
	bishops := e.p.Pieces(piece.Bishop, us)
	rooks := e.p.Pieces(piece.Rook, us)
	queens := e.p.Queens(us)

	attacksByPawns := e.attackedByType[them][piece.Pawn]
	attacksByMinors := e.attackedByType[them][piece.Knight] | e.attackedByType[them][piece.Bishop]
	attacksByMajors := e.attackedByType[them][piece.Rook] | e.attackedByType[them][piece.Queen]

	poorlyDefended := (e.attacked[them] &^ e.attacked[us]) |
		(e.attackedBy2[them] &^ e.attackedBy2[us] &^ e.attackedByType[us][piece.Pawn])

	poorlySupportedPawns := pawns &^ attacksByPawns & poorlyDefended
	score += Score(poorlySupportedPawns.Count()) * Terms.ThreatWeakPawn

	minorsAttackedByPawns := (knights | bishops) & attacksByPawns
	score += Score(minorsAttackedByPawns.Count()) * Terms.ThreatMinorAttackedByPawn

	minorsAttackedByMinors := (knights | bishops) & attacksByMinors
	score += Score(minorsAttackedByMinors.Count()) * Terms.ThreatMinorAttackedByMinor

	minorsAttackedByMajors := (knights | bishops) & attacksByMajors
	score += Score(minorsAttackedByMajors.Count()) * Terms.ThreatMinorAttackedByMajor

	rooksAttackedByLesser := rooks & (attacksByPawns | attacksByMinors)
	score += Score(rooksAttackedByLesser.Count()) * Terms.ThreatRookAttackedByLesser

	attackedQueens := queens & e.attacked[them]
	score += Score(attackedQueens.Count()) * Terms.ThreatQueenAttackedByOne

	if us == piece.Us {
		// Hanging is only maintained for Us's own pieces (see
		// pkg/position/hanging.go); this is the "weighted
		// hanging-piece / attacker-value crossbar" spec §4.5 names.
		for bb := e.p.ColorBB[piece.Us] &^ e.p.Pieces(piece.King, piece.Us); bb != bitboard.Empty; {
			sq := bb.Pop()
			if loss := e.p.Hanging(sq); loss > 0 {
				score += Score(loss) * Terms.ThreatHangingPerCentipawn
			}
		}
	}

	var safePush, pushAttacks bitboard.Board
	if us == piece.Us {
		safePush = pawns.North() &^ e.occupied &^ attacksByPawns
		pushAttacks = safePush.NorthWest() | safePush.NorthEast()
	} else {
		safePush = pawns.South() &^ e.occupied &^ attacksByPawns
		pushAttacks = safePush.SouthWest() | safePush.SouthEast()
	}
	pushThreat := pushAttacks & e.p.ColorBB[them] &^ e.attackedByType[us][piece.Pawn]
	score += Score(pushThreat.Count()) * Terms.ThreatByPawnPush

	return score
}
