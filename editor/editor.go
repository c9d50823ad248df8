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
	"errors"
	"io/fs"
	"os"

	ved "github.com/vedit/ved/types"
)

// The Editor manages the editing of text in a Buffer. The cursor column
// ranges from 0 to the row length inclusive, so characters can be
// appended past the last character of a row.
type Editor struct {
	Cursor ved.Point // cursor position
	Offset ved.Size  // display offset
	Buffer *Buffer   // buffer being edited
	size   ved.Size  // size of editing area
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	return e
}

// ReadFile loads a file into the buffer. A file that does not exist
// loads as an empty document bound to the path; it will be created on
// the first write.
func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		b = nil
	}
	e.Buffer.LoadBytes(b)
	e.Buffer.SetFileName(path)
	e.Cursor = ved.Point{}
	e.Offset = ved.Size{}
	return nil
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

// WriteFile saves the buffer. The file is opened for this write only
// and closed whether or not the write succeeds; the buffer is not
// modified.
func (e *Editor) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, werr := f.Write(e.Bytes())
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	return cerr
}

func (e *Editor) FileName() string {
	return e.Buffer.GetFileName()
}

// MoveCursor moves one position in a direction, clamping at the
// document edges: no wrapping at the ends of lines, and vertical moves
// clamp the column to the target row's length.
func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case ved.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		}
	case ved.MoveRight:
		if e.Cursor.Col < e.Buffer.GetRowLength(e.Cursor.Row) {
			e.Cursor.Col++
		}
	case ved.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case ved.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
		}
	}
	// don't go past the end of the current line
	if e.Cursor.Col > e.Buffer.GetRowLength(e.Cursor.Row) {
		e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
	}
}

// InsertChar inserts a character at the cursor and advances the cursor.
func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.InsertNewline()
		return
	}
	e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
}

// InsertNewline splits the current row at the cursor: text before the
// cursor stays, text from the cursor on becomes the row below, and the
// cursor lands at the start of that row.
func (e *Editor) InsertNewline() {
	newRow := e.Buffer.rows[e.Cursor.Row].Split(e.Cursor.Col)
	i := e.Cursor.Row + 1
	// grow the slice by one, shift the tail down, place the new row
	e.Buffer.rows = append(e.Buffer.rows, nil)
	copy(e.Buffer.rows[i+1:], e.Buffer.rows[i:])
	e.Buffer.rows[i] = newRow
	e.Cursor.Row++
	e.Cursor.Col = 0
}

// BackspaceChar deletes the character before the cursor and returns it.
// At column 0 it joins the current row onto the previous one, returning
// '\n' and leaving the cursor at the join point. At the very start of
// the document it does nothing and returns 0.
func (e *Editor) BackspaceChar() rune {
	if e.Cursor.Col > 0 {
		c := e.Buffer.rows[e.Cursor.Row].DeleteChar(e.Cursor.Col - 1)
		e.Cursor.Col--
		return c
	}
	if e.Cursor.Row > 0 {
		previous := e.Buffer.rows[e.Cursor.Row-1]
		joinCol := previous.Length()
		previous.Join(e.Buffer.rows[e.Cursor.Row])
		e.Buffer.DeleteRow(e.Cursor.Row)
		e.Cursor.Row--
		e.Cursor.Col = joinCol
		return '\n'
	}
	return 0
}

// Scroll adjusts the display offset so that the cursor is visible in
// the editing area.
func (e *Editor) Scroll() {
	if e.Cursor.Row < e.Offset.Rows {
		e.Offset.Rows = e.Cursor.Row
	}
	if e.Cursor.Row-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = e.Cursor.Row - e.size.Rows + 1
	}
	if e.Cursor.Col < e.Offset.Cols {
		e.Offset.Cols = e.Cursor.Col
	}
	if e.Cursor.Col-e.Offset.Cols >= e.size.Cols {
		e.Offset.Cols = e.Cursor.Col - e.size.Cols + 1
	}
}

func (e *Editor) GetCursor() ved.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor ved.Point) {
	e.Cursor = cursor
}

func (e *Editor) SetSize(s ved.Size) {
	e.size = s
}

func (e *Editor) GetOffset() ved.Size {
	return e.Offset
}

func (e *Editor) GetBuffer() ved.Buffer {
	return e.Buffer
}
