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

package display

import (
	"github.com/mitchellh/go-wordwrap"

	"github.com/corvidchess/corvid/pkg/search"
)

// ReportWidth is the column a deep iteration's "pv ..." tail wraps at;
// a forced-mate line can run to dozens of moves, unreadable as one
// terminal line.
const ReportWidth = 120

// Report renders a search.Report the way "d"'s board dump renders a
// Position: search.Report.String itself stays the protocol-neutral
// single-line form pkg/search's default report callback would print,
// and this wraps it for a human terminal reading it interactively.
func Report(r search.Report) string {
	return wordwrap.WrapString(r.String(), ReportWidth)
}
