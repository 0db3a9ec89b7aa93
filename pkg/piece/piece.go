// Copyright © 2022 Rak Laptudirm <raklaptudirm@gmail.com>
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

// Package piece implements the chess piece and colour representation.
//
// A Piece is encoded as Type<<1 | Color, so every real piece code is
// even, and toggling the low bit (p^1) swaps a piece between the "us"
// and "them" colour without needing a separate colour field. This is
// what lets a side-relative position flip every piece on the board by
// XOR-ing the whole placement array with 1.
package piece

import "fmt"

// Color represents which side a Piece belongs to, relative to the
// position's own notion of "us" (Us) and "them" (Them).
type Color int

const (
	Us Color = iota
	Them

	NColor = 2
)

// Other returns the opposite colour.
func (c Color) Other() Color {
	return c ^ Them
}

func (c Color) String() string {
	switch c {
	case Us:
		return "us"
	case Them:
		return "them"
	default:
		panic("piece: invalid color")
	}
}

// Type represents the kind of a Piece, ignoring colour.
type Type int

const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	TypeN = 7
)

var typeLetters = [...]string{
	NoType: "", Pawn: "P", Knight: "N", Bishop: "B",
	Rook: "R", Queen: "Q", King: "K",
}

func (t Type) String() string {
	return typeLetters[t]
}

// Piece represents a coloured chess piece, encoded as Type<<1 | Color.
type Piece int

// N is the number of piece codes, including the empty code 0.
const N = 14

const None Piece = 0

// New builds the Piece of the given type and colour.
func New(t Type, c Color) Piece {
	return Piece(t)<<1 | Piece(c)
}

// NewFromString parses a Piece from a FEN-style letter, uppercase for
// Us and lowercase for Them.
func NewFromString(id string) Piece {
	switch id {
	case "P":
		return New(Pawn, Us)
	case "N":
		return New(Knight, Us)
	case "B":
		return New(Bishop, Us)
	case "R":
		return New(Rook, Us)
	case "Q":
		return New(Queen, Us)
	case "K":
		return New(King, Us)
	case "p":
		return New(Pawn, Them)
	case "n":
		return New(Knight, Them)
	case "b":
		return New(Bishop, Them)
	case "r":
		return New(Rook, Them)
	case "q":
		return New(Queen, Them)
	case "k":
		return New(King, Them)
	default:
		panic(fmt.Sprintf("piece.NewFromString: invalid piece id %q", id))
	}
}

// Type returns the piece's type.
func (p Piece) Type() Type {
	if p == None {
		return NoType
	}
	return Type(p >> 1)
}

// Color returns the piece's colour, relative to the owning position.
func (p Piece) Color() Color {
	if p == None {
		panic("piece.Color: color of empty piece")
	}
	return Color(p & 1)
}

// Flip toggles the colour of a Piece without changing its type. The
// empty piece is its own flip.
func (p Piece) Flip() Piece {
	if p == None {
		return None
	}
	return p ^ 1
}

// Is reports whether p is of the given type.
func (p Piece) Is(t Type) bool {
	return p.Type() == t
}

// IsColor reports whether p belongs to the given colour.
func (p Piece) IsColor(c Color) bool {
	return p != None && p.Color() == c
}

// Promotions lists the types a pawn may promote to, in descending
// order of typical usefulness.
var Promotions = []Type{Queen, Rook, Bishop, Knight}

var letters = [...]string{
	None:                           " ",
	Piece(Pawn)<<1 | Piece(Us):     "P",
	Piece(Knight)<<1 | Piece(Us):   "N",
	Piece(Bishop)<<1 | Piece(Us):   "B",
	Piece(Rook)<<1 | Piece(Us):     "R",
	Piece(Queen)<<1 | Piece(Us):    "Q",
	Piece(King)<<1 | Piece(Us):     "K",
	Piece(Pawn)<<1 | Piece(Them):   "p",
	Piece(Knight)<<1 | Piece(Them): "n",
	Piece(Bishop)<<1 | Piece(Them): "b",
	Piece(Rook)<<1 | Piece(Them):   "r",
	Piece(Queen)<<1 | Piece(Them):  "q",
	Piece(King)<<1 | Piece(Them):   "k",
}

func (p Piece) String() string {
	return letters[p]
}
