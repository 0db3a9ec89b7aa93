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

// Package tt implements the shared transposition table (spec §4.6): a
// lock-free hash table from position to cached search result, reused
// across sibling and transposed subtrees and, per the scheduling model
// the search driver admits, across search threads.
//
// Unlike the teacher's pkg/search/tt, whose Entry is a plain Go struct
// (Hash/Move/Value/Type/Depth/epoch as separate fields), every slot
// here is packed into one uint64 stored in an atomic.Uint64, so a
// lookup or store is always a single relaxed atomic word load/store:
// a racing reader only ever sees a fully-formed old value or a
// fully-formed new one, never a mix of the two (a torn read across a
// resize/clear is tolerated — it just yields a hash-upper mismatch and
// a miss, never a corrupt entry), exactly as spec §4.6 requires.
package tt

import (
	"math/bits"
	"sync/atomic"

	"github.com/corvidchess/corvid/pkg/eval"
	"github.com/corvidchess/corvid/pkg/move"
	"github.com/corvidchess/corvid/pkg/position"
	"github.com/corvidchess/corvid/pkg/square"
	"github.com/corvidchess/corvid/pkg/zobrist"
)

// BucketSize is the number of slots probed as a unit (reference
// value, per spec §4.6).
const BucketSize = 8

// EntrySize is the size in bytes of one packed slot.
const EntrySize = 8

// Bound classifies what kind of value a stored entry holds, the
// result of an alpha-beta search being a window rather than always an
// exact score.
type Bound uint8

const (
	NoBound    Bound = iota // slot is empty
	Exact                   // value is exact
	LowerBound              // value failed high: true score is ≥ value
	UpperBound              // value failed low: true score is ≤ value
)

// Entry is the unpacked view of one transposition table slot.
type Entry struct {
	Value Eval  // search value, in "plies from this node" form
	Depth int   // depth, in plies, this entry was searched to (0-127; packs into 7 bits)
	Bound Bound

	// From/To are the best move's squares; HasMove reports whether
	// they are meaningful at all (spec §4.6's "best-move hint (from/to
	// squares only)"). The promoted-to piece, if any, is not stored:
	// Hint re-derives a full move by matching (From, To) against the
	// current position's legal moves, and just takes the first match
	// on the rare from/to pair that several underpromotions share.
	HasMove bool
	From    square.Square
	To      square.Square

	// NoNullMove records that a null-move search failed at this node,
	// so a later null-move try at the same node can be skipped.
	NoNullMove bool

	hashUpper  uint32
	generation uint8
}

// Eval is a transposition table value: a search score with mate
// distance measured from the entry's own node rather than from the
// search root, so that the same entry is reusable at any depth from
// root it is transposed into. EvalFrom/Eval convert to and from the
// root-relative eval.Eval search uses everywhere else.
type Eval int16

// EvalFrom converts a root-relative score into the node-relative form
// stored in the table.
func EvalFrom(score eval.Eval, plies int) Eval {
	switch {
	case score > eval.WinInMaxPly:
		score += eval.Eval(plies)
	case score < eval.LoseInMaxPly:
		score -= eval.Eval(plies)
	}
	return Eval(score)
}

// Eval converts a node-relative stored score back into the
// root-relative form search uses, given the number of plies between
// the root and this node.
func (e Eval) Eval(plies int) eval.Eval {
	score := eval.Eval(e)
	switch {
	case score > eval.WinInMaxPly:
		score -= eval.Eval(plies)
	case score < eval.LoseInMaxPly:
		score += eval.Eval(plies)
	}
	return score
}

// NewTable allocates a transposition table sized to the largest power
// of two number of buckets whose byte size is at most mbs megabytes.
func NewTable(mbs int) *Table {
	buckets := prevPowerOfTwo(mbs * 1024 * 1024 / (BucketSize * EntrySize))
	return &Table{
		slots:   make([]atomic.Uint64, buckets*BucketSize),
		buckets: buckets,
	}
}

// Table is a lock-free, bucketed transposition table.
type Table struct {
	slots      []atomic.Uint64
	buckets    int
	generation atomic.Uint32
}

// Clear zeroes every slot and resets the generation counter.
func (tt *Table) Clear() {
	for i := range tt.slots {
		tt.slots[i].Store(0)
	}
	tt.generation.Store(0)
}

// NewGeneration advances the table's generation, reducing the
// protection of every entry already in the table: a search that
// starts now is more "current" than anything stored by a prior one.
func (tt *Table) NewGeneration() {
	tt.generation.Add(1)
}

// Resize reallocates the table to the largest power of two bucket
// count whose byte size is at most mbs megabytes. Unlike the
// teacher's Resize, the old contents are not copied forward: after a
// resize every entry's bucket index is computed differently, so a
// positionally-copied slot would either land in the wrong bucket or
// risk a coincidental hash-upper collision with unrelated data — a
// clean table is simpler and strictly safer than a half-valid one.
func (tt *Table) Resize(mbs int) {
	buckets := prevPowerOfTwo(mbs * 1024 * 1024 / (BucketSize * EntrySize))
	tt.slots = make([]atomic.Uint64, buckets*BucketSize)
	tt.buckets = buckets
	tt.generation.Store(0)
}

// Probe looks up the given position's hash in the table. The second
// return value reports whether the entry is usable; a false result
// (empty slot, or a bucket full of other positions) means the Entry
// must not be used for anything.
func (tt *Table) Probe(p *position.Position) (Entry, bool) {
	hash := p.Key0
	bucket := tt.bucketOf(hash)
	upper := hashUpper(hash)

	for i := 0; i < BucketSize; i++ {
		e := unpack(tt.slots[bucket+i].Load())
		if e.Bound != NoBound && e.hashUpper == upper {
			return e, true
		}
	}
	return Entry{}, false
}

// Hint reconstructs the entry's best-move hint as a full move legal in
// p, per spec §4.6's requirement that the hinted (from, to) be
// reverified rather than trusted blindly (the position that stored the
// hint, and p, agree on hash but could in principle still differ — a
// hash collision — and a stale hint is otherwise indistinguishable
// from a legal one).
func (e Entry) Hint(p *position.Position) (move.Move, bool) {
	if !e.HasMove {
		return move.Null, false
	}
	for _, m := range p.Generate() {
		if m.From() == e.From && m.To() == e.To {
			return m, true
		}
	}
	return move.Null, false
}

// Store records entry under position's hash. If the bucket already
// holds an entry for this exact position, it is updated in place
// (keeping its old move hint if the new entry has none); otherwise the
// slot in the bucket with the lowest protection score is overwritten.
func (tt *Table) Store(p *position.Position, entry Entry) {
	hash := p.Key0
	bucket := tt.bucketOf(hash)
	upper := hashUpper(hash)
	entry.hashUpper = upper
	gen := uint8(tt.generation.Load())
	entry.generation = gen

	worst := 0
	worstProtection := 0
	for i := 0; i < BucketSize; i++ {
		slot := &tt.slots[bucket+i]
		cur := unpack(slot.Load())

		if cur.Bound != NoBound && cur.hashUpper == upper {
			if !entry.HasMove && cur.HasMove {
				entry.HasMove, entry.From, entry.To = true, cur.From, cur.To
			}
			slot.Store(pack(entry))
			return
		}

		if score := protection(cur, gen); i == 0 || score < worstProtection {
			worst, worstProtection = i, score
		}
	}

	tt.slots[bucket+worst].Store(pack(entry))
}

// protection scores how strongly an existing entry resists eviction:
// deeper and fresher entries are worth more, with exact-value entries
// from the current generation the most protected and shallow,
// stale-generation bound entries the first to go, per spec §4.6.
func protection(e Entry, currentGen uint8) int {
	if e.Bound == NoBound {
		return -1 << 30 // an empty slot always loses to real data
	}
	behind := int(currentGen-e.generation) & generationMask
	score := e.Depth - 2*behind
	if e.Bound == Exact {
		score += 4
	}
	return score
}

func prevPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << (bits.Len(uint(n)) - 1)
}

func (tt *Table) bucketOf(hash zobrist.Key) int {
	return int(uint(hash)&uint(tt.buckets-1)) * BucketSize
}

// hashUpperBits is how many of the hash's high bits a slot stores to
// tell apart the positions sharing a bucket (the bucket itself is
// chosen by the low bits); the other constants are the widths of the
// remaining packed fields.
const (
	hashUpperBits  = 22
	hashUpperMask  = 1<<hashUpperBits - 1
	valueBits      = 16
	squareBits     = 6
	depthBits      = 7
	boundBits      = 2
	generationBits = 3
	generationMask = 1<<generationBits - 1
)

const (
	hashUpperShift  = 0
	valueShift      = hashUpperShift + hashUpperBits
	fromShift       = valueShift + valueBits
	toShift         = fromShift + squareBits
	depthShift      = toShift + squareBits
	boundShift      = depthShift + depthBits
	noNullMoveShift = boundShift + boundBits
	hasMoveShift    = noNullMoveShift + 1
	generationShift = hasMoveShift + 1
)

func hashUpper(hash zobrist.Key) uint32 {
	return uint32(hash>>(64-hashUpperBits)) & hashUpperMask
}

func pack(e Entry) uint64 {
	var w uint64
	w |= uint64(e.hashUpper) << hashUpperShift
	w |= uint64(uint16(e.Value)) << valueShift
	w |= uint64(e.From) << fromShift
	w |= uint64(e.To) << toShift
	w |= uint64(e.Depth&(1<<depthBits-1)) << depthShift
	w |= uint64(e.Bound) << boundShift
	w |= boolBit(e.NoNullMove) << noNullMoveShift
	w |= boolBit(e.HasMove) << hasMoveShift
	w |= uint64(e.generation&generationMask) << generationShift
	return w
}

func unpack(w uint64) Entry {
	return Entry{
		hashUpper:  uint32(w>>hashUpperShift) & hashUpperMask,
		Value:      Eval(int16(uint16(w >> valueShift))),
		From:       square.Square(w>>fromShift) & squareMask,
		To:         square.Square(w>>toShift) & squareMask,
		Depth:      int(w>>depthShift) & (1<<depthBits - 1),
		Bound:      Bound(w>>boundShift) & (1<<boundBits - 1),
		NoNullMove: w>>noNullMoveShift&1 != 0,
		HasMove:    w>>hasMoveShift&1 != 0,
		generation: uint8(w>>generationShift) & generationMask,
	}
}

const squareMask = 1<<squareBits - 1

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
