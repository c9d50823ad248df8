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
package types

// Editor modes
const (
	ModeNormal  = 0
	ModeInsert  = 1
	ModeCommand = 2
	ModeQuit    = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

// A Key identifies a non-character key reported by the terminal.
type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
)

// An Event is a decoded terminal event. For key events, exactly one of
// Key and Ch is nonzero: named keys arrive in Key, printable characters
// arrive in Ch.
type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetOffset() Size
	GetBuffer() Buffer
	FileName() string

	MoveCursor(direction int)
	InsertChar(c rune)
	InsertNewline()
	BackspaceChar() rune

	Scroll()
	ReadFile(path string) error
	WriteFile(path string) error
	Bytes() []byte
}

type Buffer interface {
	GetRowCount() int
	GetRowLength(i int) int
	GetRow(i int) string
	TextAfter(row, col int) string
	Render(origin Point, size Size, offset Size, display Display)
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetCommand() string
	GetMessage() string
}

// A Display draws single cells; the screen implements it so buffers can
// render without importing the terminal library.
type Display interface {
	SetCell(col int, row int, c rune)
}
