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
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	ved "github.com/vedit/ved/types"
)

// The Screen draws the state of an Editor and supplies decoded events.
type Screen struct {
	size   ved.Size // screen size
	gutter int      // width of the line number gutter
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e ved.Editor, c ved.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()

	// the bottom two rows are the info and message bars; the gutter
	// holds right-aligned line numbers
	numWidth := len(fmt.Sprintf("%d", e.GetBuffer().GetRowCount()))
	if numWidth < 4 {
		numWidth = 4
	}
	s.gutter = numWidth + 3

	editSize := ved.Size{Rows: s.size.Rows - 2, Cols: s.size.Cols - s.gutter}
	e.SetSize(editSize)
	e.Scroll()

	s.renderGutter(e, numWidth, editSize.Rows)
	bufferOrigin := ved.Point{Row: 0, Col: s.gutter}
	e.GetBuffer().Render(bufferOrigin, editSize, e.GetOffset(), s)

	s.renderInfoBar(e, c)
	s.renderMessageBar(e, c)

	termbox.SetCursor(s.cursorColumn(e), e.GetCursor().Row-e.GetOffset().Rows)
	termbox.Flush()
}

// SetCell implements ved.Display.
func (s *Screen) SetCell(col int, row int, c rune) {
	termbox.SetCell(col, row, c, termbox.ColorWhite, termbox.ColorBlack)
}

func (s *Screen) renderGutter(e ved.Editor, numWidth, visibleRows int) {
	offset := e.GetOffset().Rows
	for i := 0; i < visibleRows; i++ {
		if i+offset >= e.GetBuffer().GetRowCount() {
			break
		}
		text := fmt.Sprintf("%*d │ ", numWidth, i+offset+1)
		for x, ch := range []rune(text) {
			termbox.SetCell(x, i, ch, termbox.ColorBlue, termbox.ColorBlack)
		}
	}
}

// cursorColumn converts the cursor's rune column into a screen column,
// accounting for the gutter, the horizontal offset, and wide runes.
func (s *Screen) cursorColumn(e ved.Editor) int {
	cursor := e.GetCursor()
	offset := e.GetOffset()
	line := []rune(e.GetBuffer().GetRow(cursor.Row))
	col := cursor.Col
	if col > len(line) {
		col = len(line)
	}
	visible := ""
	if offset.Cols < col {
		visible = string(line[offset.Cols:col])
	}
	return s.gutter + runewidth.StringWidth(visible)
}

func (s *Screen) renderInfoBar(e ved.Editor, c ved.Commander) {
	finalText := fmt.Sprintf(" %d:%d ", e.GetCursor().Row+1, e.GetCursor().Col+1)
	text := " ved - " + e.FileName() + " -- " + modeName(c.GetMode()) + " --"
	for len(text) < s.size.Cols-len(finalText) {
		text = text + " "
	}
	text += finalText
	x := 0
	for _, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) renderMessageBar(e ved.Editor, c ved.Commander) {
	var line string
	if c.GetMode() == ved.ModeCommand {
		line = ":" + c.GetCommand()
	} else {
		line = c.GetMessage()
	}
	x := 0
	for _, ch := range line {
		if x >= s.size.Cols {
			break
		}
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
		x += runewidth.RuneWidth(ch)
	}
}

func modeName(mode int) string {
	switch mode {
	case ved.ModeNormal:
		return "NORMAL"
	case ved.ModeInsert:
		return "INSERT"
	case ved.ModeCommand:
		return "COMMAND"
	default:
		return ""
	}
}

func (s *Screen) GetNextEvent() *ved.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
		return &ved.Event{Type: ved.EventResize}
	}
	return &ved.Event{
		Type: ved.EventKey,
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) ved.Key {
	switch k {
	case termbox.KeyArrowUp:
		return ved.KeyArrowUp
	case termbox.KeyArrowDown:
		return ved.KeyArrowDown
	case termbox.KeyArrowLeft:
		return ved.KeyArrowLeft
	case termbox.KeyArrowRight:
		return ved.KeyArrowRight
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return ved.KeyBackspace
	case termbox.KeyEnter:
		return ved.KeyEnter
	case termbox.KeyEsc:
		return ved.KeyEsc
	case termbox.KeySpace:
		return ved.KeySpace
	case termbox.KeyTab:
		return ved.KeyTab
	default:
		return ved.KeyUnsupported
	}
}
