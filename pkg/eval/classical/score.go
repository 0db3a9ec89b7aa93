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

// S packs a middle-game and an end-game centipawn value into one Score.
func S(mg, eg int) Score {
	return Score(uint64(uint32(eg))<<32) + Score(uint32(mg))
}

// Score packs a middle-game and an end-game evaluation into a single
// int64, so every term only needs to be added up once instead of once
// per game phase.
type Score int64

// MG returns the middle-game value.
func (s Score) MG() int {
	return int(int32(uint32(uint64(s))))
}

// EG returns the end-game value, rounded the same way the teacher does
// so that a negative sum straddling the 32-bit boundary still carries
// correctly.
func (s Score) EG() int {
	return int(int32(uint32(uint64(s+(1<<31)) >> 32)))
}
