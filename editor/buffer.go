//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"

	ved "github.com/vedit/ved/types"
)

// A Buffer represents a file being edited. It always contains at least
// one row; an empty document is a single empty row.
type Buffer struct {
	rows     []*Row
	fileName string
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = []*Row{NewRow("")}
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

// LoadBytes replaces the buffer contents with bytes split on newlines.
// Empty input loads as a single empty row, so the row count never
// reaches zero.
func (b *Buffer) LoadBytes(bytes []byte) {
	lines := strings.Split(string(bytes), "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

// Bytes joins the rows with newlines. Round-trips with LoadBytes.
func (b *Buffer) Bytes() []byte {
	var s strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(string(row.Text))
	}
	return []byte(s.String())
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

func (b *Buffer) GetRow(i int) string {
	if i < len(b.rows) {
		return b.rows[i].DisplayText()
	}
	return ""
}

func (b *Buffer) TextAfter(row, col int) string {
	if row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	if row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
	}
}

func (b *Buffer) DeleteRow(row int) {
	if row < len(b.rows) && len(b.rows) > 1 {
		b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	}
}

// draw text in an area defined by origin and size with a specified offset into the buffer
func (b *Buffer) Render(origin ved.Point, size ved.Size, offset ved.Size, display ved.Display) {
	for i := 0; i < size.Rows; i++ {
		var line string
		if i+offset.Rows < len(b.rows) {
			line = b.rows[i+offset.Rows].DisplayText()
			if offset.Cols < len([]rune(line)) {
				line = string([]rune(line)[offset.Cols:])
			} else {
				line = ""
			}
		} else {
			line = "~"
		}
		// draw the line, advancing by display width and truncating at
		// the right edge
		x := 0
		for _, c := range line {
			w := runewidth.RuneWidth(c)
			if x+w > size.Cols {
				break
			}
			display.SetCell(origin.Col+x, origin.Row+i, c)
			x += w
		}
	}
}
