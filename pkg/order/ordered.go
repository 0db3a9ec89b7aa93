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

// Package order implements move ordering as a lazy priority iterator:
// PickNext performs one selection-sort pass per call instead of
// sorting the whole list up front, since alpha-beta usually cuts off
// long before most moves in a list are ever looked at.
package order

import "github.com/corvidchess/corvid/pkg/move"

// score is the set of numeric types a move score may be stored as.
type score interface {
	~int | ~int8 | ~int16 | ~int32 |
		~uint | ~uint8 | ~uint16 | ~uint32
}

// List is a lazily-sorted list of moves with per-move scores.
type List[T score] struct {
	entries []entry[T]
}

// NewList scores every move in moves using scorer and returns a List
// ready for repeated PickNext calls.
func NewList[T score](moves []move.Move, scorer func(move.Move) T) List[T] {
	entries := make([]entry[T], len(moves))
	for i, m := range moves {
		entries[i] = pack(m, scorer(m))
	}

	return List[T]{entries: entries}
}

// Len returns the number of moves remaining to be picked, including
// ones already picked (it is the total list length, not a cursor).
func (l *List[T]) Len() int {
	return len(l.entries)
}

// Add appends a move with an explicit score, used to inject the hash
// move or killers ahead of move generation scoring them naturally.
func (l *List[T]) Add(m move.Move, s T) {
	l.entries = append(l.entries, pack(m, s))
}

// PickNext finds the remaining move with the highest score starting
// at index, swaps it into index, and returns it. Callers iterate
// index from 0 to Len()-1, calling PickNext once per index; unlike a
// full sort, moves past a beta cutoff are never examined.
func (l *List[T]) PickNext(index int) move.Move {
	best := index
	bestScore := l.entries[index].score()

	for i := index + 1; i < len(l.entries); i++ {
		if s := l.entries[i].score(); s > bestScore {
			best = i
			bestScore = s
		}
	}

	l.entries[index], l.entries[best] = l.entries[best], l.entries[index]
	return l.entries[index].move()
}

// entry packs a move and its score into a single word: [score 32][move 32].
type entry[T score] uint64

func pack[T score](m move.Move, s T) entry[T] {
	return entry[T](uint64(s)<<32 | uint64(m))
}

func (e entry[T]) score() T {
	return T(e >> 32)
}

func (e entry[T]) move() move.Move {
	return move.Move(e & 0xFFFFFFFF)
}
